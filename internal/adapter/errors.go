// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrEmptyAddress = errors.New("empty address")
	ErrNoToken      = errors.New("no access token, register or login first")
)

// Errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")
)
