// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/models"
)

type itemRepository struct {
	table      Table
	ownerIndex string
	logger     *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] on top of the items table.
// ownerIndex names the secondary index keyed by the "owner_id" attribute.
func NewItemRepository(table Table, ownerIndex string, logger *logger.Logger) ItemRepository {
	logger.Debug().Str("table", table.Name()).Msg("creating item repository")
	return &itemRepository{
		table:      table,
		ownerIndex: ownerIndex,
		logger:     logger,
	}
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (models.Item, error) {
	var item models.Item
	found, err := r.table.GetByKey(ctx, id, &item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.GetByID").Msg("error getting item")
		return models.Item{}, err
	}
	if !found {
		return models.Item{}, ErrItemNotFound
	}

	return item, nil
}

// ListByOwner returns all items of ownerID. An owner without items yields an
// empty slice and no error.
func (r *itemRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Item, error) {
	items := make([]models.Item, 0)
	if err := r.table.QueryByIndex(ctx, r.ownerIndex, "owner_id", ownerID, &items); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.ListByOwner").Msg("error querying items")
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	if err := r.table.PutNew(ctx, item); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.Create").Msg("error saving item")
		return models.Item{}, err
	}

	return item, nil
}

// Update overwrites the given attributes and returns the stored record.
// [ErrItemNotFound] is returned when the item no longer exists.
func (r *itemRepository) Update(ctx context.Context, id string, fields map[string]any) (models.Item, error) {
	var item models.Item
	found, err := r.table.UpdateFields(ctx, id, fields, &item)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.Update").Msg("error updating item")
		return models.Item{}, err
	}
	if !found {
		return models.Item{}, ErrItemNotFound
	}

	return item, nil
}

func (r *itemRepository) Delete(ctx context.Context, id string) error {
	if err := r.table.DeleteByKey(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*itemRepository.Delete").Msg("error deleting item")
		return err
	}

	return nil
}
