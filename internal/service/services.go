// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-item-keeper/internal/config"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/store"
	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/internal/validators"
)

type Services struct {
	AuthService AuthService
	ItemService ItemService
}

// NewServices wires the business services on top of storages. Both services
// are wrapped with request validation.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	ids := utils.NewUUIDGenerator()
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserRepository, ids, cfg, logger)),
		ItemService: NewItemValidationService(validator).
			Wrap(NewItemService(storages.ItemRepository, ids, logger)),
	}
}
