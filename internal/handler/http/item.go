// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/internal/validators"
	"github.com/MKhiriev/go-item-keeper/models"
)

const itemIDParam = "itemID"

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.ItemCreateRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, validators.NewBodyError(err))
		return
	}

	item, err := h.services.ItemService.Create(r.Context(), user, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("item_id", item.ID).Msg("item created")
	h.writeJSON(w, r, item, http.StatusOK)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	items, err := h.services.ItemService.List(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, items, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var req models.ItemUpdateRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		h.writeError(w, r, validators.NewBodyError(err))
		return
	}

	item, err := h.services.ItemService.Update(r.Context(), user, chi.URLParam(r, itemIDParam), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.services.ItemService.Delete(r.Context(), user, chi.URLParam(r, itemIDParam)); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteNoContent(w)
}
