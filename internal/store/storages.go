// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-keeper/internal/config"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
)

// Storages groups the repositories used by the service layer.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
}

// NewStorages creates the repositories for the configured driver.
//
// The "dynamodb" driver talks to the configured tables; it neither creates
// tables nor checks that they exist. The "memory" driver keeps everything in
// process and loses it on exit.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	var users, items Table
	db := cfg.DynamoDB

	switch cfg.Driver {
	case config.DriverDynamoDB:
		client, err := NewDynamoDBClient(ctx, db)
		if err != nil {
			return nil, fmt.Errorf("error creating dynamodb client: %w", err)
		}
		users = NewDynamoTable(client, db.UsersTable)
		items = NewDynamoTable(client, db.ItemsTable)
	case config.DriverMemory:
		users = NewMemoryTable(db.UsersTable)
		items = NewMemoryTable(db.ItemsTable)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	logger.Info().
		Str("driver", cfg.Driver).
		Str("users_table", db.UsersTable).
		Str("items_table", db.ItemsTable).
		Msg("storages initialized")

	return &Storages{
		UserRepository: NewUserRepository(users, db.UsernameIndex, logger),
		ItemRepository: NewItemRepository(items, db.OwnerIndex, logger),
	}, nil
}
