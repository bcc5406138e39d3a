// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-item-keeper/models"
)

// AuthService registers and authenticates users and issues access tokens.
type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate verifies tokenString and loads the user it was issued to.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// ItemService manages items on behalf of their owner.
type ItemService interface {
	Create(ctx context.Context, owner models.User, req models.ItemCreateRequest) (models.Item, error)
	List(ctx context.Context, owner models.User) ([]models.Item, error)
	Update(ctx context.Context, owner models.User, itemID string, req models.ItemUpdateRequest) (models.Item, error)
	Delete(ctx context.Context, owner models.User, itemID string) error
}

// IDGenerator produces identifiers for new users and items.
type IDGenerator interface {
	Generate() string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ItemServiceWrapper defines middleware composition for ItemService.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}
