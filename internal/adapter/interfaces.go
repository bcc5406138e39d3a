// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the item keeper REST API on behalf of the
// command-line client.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrNotFound]
// for 404). The server's detail message and request id are kept in the
// error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-item-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client-side view of the REST API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Health checks that the server answers GET /health.
	Health(ctx context.Context) error

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, credentials models.Credentials) (models.TokenResponse, error)

	// Profile returns the server's greeting for the authenticated user.
	Profile(ctx context.Context) (string, error)

	CreateItem(ctx context.Context, req models.ItemCreateRequest) (models.Item, error)

	// ListItems returns the items of the authenticated user. An owner without
	// items gets an error matching [ErrNotFound].
	ListItems(ctx context.Context) ([]models.Item, error)

	UpdateItem(ctx context.Context, itemID string, req models.ItemUpdateRequest) (models.Item, error)

	DeleteItem(ctx context.Context, itemID string) error
}
