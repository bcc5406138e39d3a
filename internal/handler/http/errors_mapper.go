// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-item-keeper/internal/app"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/service"
	"github.com/MKhiriev/go-item-keeper/internal/store"
	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/internal/validators"
	"github.com/MKhiriev/go-item-keeper/models"
)

type errorStatus struct {
	target error
	status int
	detail string
}

// errorStatuses is scanned in order, so wrapping errors must precede the
// errors they wrap.
var errorStatuses = []errorStatus{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgCouldNotValidateCredentials},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgCouldNotValidateCredentials},
	{ErrEmptyToken, http.StatusUnauthorized, app.MsgCouldNotValidateCredentials},
	{errMissingUser, http.StatusUnauthorized, app.MsgCouldNotValidateCredentials},
	{service.ErrInvalidToken, http.StatusUnauthorized, app.MsgCouldNotValidateCredentials},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},

	{service.ErrUsernameAlreadyRegistered, http.StatusBadRequest, app.MsgUsernameAlreadyRegistered},

	{service.ErrNotAuthorizedToUpdate, http.StatusForbidden, app.MsgNotAuthorizedToUpdate},
	{service.ErrNotAuthorizedToDelete, http.StatusForbidden, app.MsgNotAuthorizedToDelete},
	{service.ErrNotItemOwner, http.StatusForbidden, app.MsgNotAuthorizedToAccess},

	{service.ErrItemNotFound, http.StatusNotFound, app.MsgItemNotFound},
	{service.ErrNoItemsFound, http.StatusNotFound, app.MsgNoItemsFound},
	{errRouteNotFound, http.StatusNotFound, app.MsgNotFound},
	{errMethodNotAllowed, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed},

	{service.ErrUpdatedItemMissing, http.StatusInternalServerError, app.MsgUpdatedItemMissing},
}

// translateError renders err as a status code and a response envelope
// without the request id.
func translateError(err error, debug bool) (int, models.ErrorResponse) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status, models.ErrorResponse{Detail: e.detail}
		}
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, models.ErrorResponse{Detail: validationErr.Fields}
	}

	var storeErr *store.StoreError
	if errors.As(err, &storeErr) {
		return http.StatusInternalServerError, models.ErrorResponse{
			Detail:       app.MsgStoreError,
			AWSErrorCode: storeErr.Code,
		}
	}

	if debug {
		return http.StatusInternalServerError, models.ErrorResponse{
			Detail: err.Error(),
			Type:   fmt.Sprintf("%T", rootCause(err)),
		}
	}
	return http.StatusInternalServerError, models.ErrorResponse{Detail: app.MsgInternalServerError}
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// writeError is the only place where failures are turned into responses.
// 4xx outcomes are logged as warnings, 5xx as errors.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, body := translateError(err, h.debug)
	body.RequestID = utils.GetRequestIDFromContext(r.Context())

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event = event.Err(err).
		Str("path", r.URL.Path).
		Int("status_code", status)
	if body.AWSErrorCode != "" {
		event = event.Str("aws_error_code", body.AWSErrorCode)
	}
	event.Msg("request failed")

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	if _, writeErr := utils.WriteJSON(w, body, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
