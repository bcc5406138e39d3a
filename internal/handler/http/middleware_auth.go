// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/models"
)

// auth enforces bearer authentication on protected routes.
//
// The token is taken from the "Authorization" header, verified, and its
// subject is resolved to a stored user by direct key lookup. The user (id
// and username only) is stored in the request context under
// [utils.UserCtxKey]. A missing header, an invalid or expired token and a
// token whose user no longer exists all produce the same 401 response.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}

// getTokenFromAuthHeader extracts the token from a header of the form
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// currentUser returns the user stored by the auth middleware.
func currentUser(r *http.Request) (models.User, error) {
	u, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		return u, errMissingUser
	}
	return u, nil
}
