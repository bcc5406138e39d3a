// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/internal/validators"
	"github.com/MKhiriev/go-item-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		h.writeError(w, r, validators.NewBodyError(err))
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", registeredUser.ID).Msg("user registered")
	h.writeToken(w, r, registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.DecodeJSON(r, &credentials); err != nil {
		h.writeError(w, r, validators.NewBodyError(err))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", foundUser.ID).Msg("user logged in")
	h.writeToken(w, r, foundUser)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.MessageResponse{
		Message: fmt.Sprintf("Welcome %s!", user.Username),
	}, http.StatusOK)
}

func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.NewTokenResponse(token), http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
