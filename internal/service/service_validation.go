// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-item-keeper/internal/validators"
	"github.com/MKhiriev/go-item-keeper/models"
)

// AuthValidationService checks credentials before they reach the wrapped
// AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, err
	}
	return v.inner.Register(ctx, credentials)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, err
	}
	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return v.inner.Authenticate(ctx, tokenString)
}

// ItemValidationService checks item payloads before they reach the wrapped
// ItemService.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService(validator validators.Validator) ItemServiceWrapper {
	return &ItemValidationService{validator: validator}
}

func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.inner = inner
	return v
}

func (v *ItemValidationService) Create(ctx context.Context, owner models.User, req models.ItemCreateRequest) (models.Item, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Item{}, err
	}
	return v.inner.Create(ctx, owner, req)
}

func (v *ItemValidationService) List(ctx context.Context, owner models.User) ([]models.Item, error) {
	return v.inner.List(ctx, owner)
}

func (v *ItemValidationService) Update(ctx context.Context, owner models.User, itemID string, req models.ItemUpdateRequest) (models.Item, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Item{}, err
	}
	return v.inner.Update(ctx, owner, itemID, req)
}

func (v *ItemValidationService) Delete(ctx context.Context, owner models.User, itemID string) error {
	return v.inner.Delete(ctx, owner, itemID)
}
