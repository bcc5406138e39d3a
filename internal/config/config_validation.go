// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-item-keeper/internal/utils"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if _, err := utils.SigningMethod(cfg.App.TokenSigningAlgorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must not be negative", ErrInvalidAppConfigs)
	}
	if cost := cfg.App.PasswordHashCost; cost != 0 && (cost < bcrypt.MinCost || cost > bcrypt.MaxCost) {
		return fmt.Errorf("%w: password hash cost %d is outside [%d, %d]",
			ErrInvalidAppConfigs, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs)
	}

	switch cfg.Storage.Driver {
	case DriverMemory:
	case DriverDynamoDB:
		db := cfg.Storage.DynamoDB
		if db.Region == "" || db.UsersTable == "" || db.ItemsTable == "" ||
			db.UsernameIndex == "" || db.OwnerIndex == "" {
			return fmt.Errorf("%w: region, tables and indexes are required", ErrInvalidStorageConfigs)
		}
		if (db.AccessKeyID == "") != (db.SecretAccessKey == "") {
			return fmt.Errorf("%w: access key id and secret must be set together", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidAdapterConfigs)
	}
	if cfg.RequestTimeout <= 0 || cfg.RequestTimeout > 10*time.Minute {
		return fmt.Errorf("%w: request timeout must be in (0, 10m]", ErrInvalidAdapterConfigs)
	}

	return nil
}
