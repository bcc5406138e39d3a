// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-item-keeper/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
