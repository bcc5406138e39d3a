// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-item-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Table is a single key-value table keyed by the string attribute "id".
//
// Records are marshalled with the attributevalue codec, so out parameters
// must be pointers to structs (or to slices of structs for QueryByIndex)
// carrying `dynamodbav` tags. Every provider failure is returned as a
// [*StoreError].
type Table interface {
	// Name returns the table name.
	Name() string

	// GetByKey loads the record with the given id into out.
	// It reports false when no such record exists.
	GetByKey(ctx context.Context, id string, out any) (bool, error)

	// PutNew writes record unconditionally. Uniqueness of secondary
	// attributes must be checked by the caller.
	PutNew(ctx context.Context, record any) error

	// QueryByIndex appends to out every record whose attribute equals value,
	// read through the named secondary index. Index reads are eventually
	// consistent.
	QueryByIndex(ctx context.Context, indexName, attribute, value string, out any) error

	// UpdateFields sets the given attributes on an existing record and loads
	// the updated record into out. It reports false, without creating
	// anything, when no record with id exists.
	UpdateFields(ctx context.Context, id string, fields map[string]any, out any) (bool, error)

	// DeleteByKey removes the record with id. Deleting an absent record is
	// not an error.
	DeleteByKey(ctx context.Context, id string) error
}

// UserRepository persists [models.User] records.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	Create(ctx context.Context, user models.User) (models.User, error)
}

// ItemRepository persists [models.Item] records.
type ItemRepository interface {
	GetByID(ctx context.Context, id string) (models.Item, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Item, error)
	Create(ctx context.Context, item models.Item) (models.Item, error)
	Update(ctx context.Context, id string, fields map[string]any) (models.Item, error)
	Delete(ctx context.Context, id string) error
}
