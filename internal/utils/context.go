// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"
	"encoding/hex"

	"github.com/MKhiriev/go-item-keeper/models"
	"github.com/google/uuid"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated user in the context.
// The stored value never carries the password digest.
var UserCtxKey = contextKey("user")

// RequestIDCtxKey is the key used to store the correlation id of the
// request being handled.
var RequestIDCtxKey = contextKey("requestID")

// WithUser returns a copy of ctx carrying the public part of user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user.Public())
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true: value is found and has the correct type
//   - ok == false: value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// WithRequestID returns a copy of ctx carrying the correlation id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, requestID)
}

// GetRequestIDFromContext retrieves the correlation id bound to ctx.
// It returns an empty string when none was bound.
func GetRequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(RequestIDCtxKey).(string)
	return requestID
}

// NewRequestID returns a new 128-bit random correlation id, hex encoded
// (32 characters, no dashes).
func NewRequestID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
