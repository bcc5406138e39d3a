// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/store"
	"github.com/MKhiriev/go-item-keeper/models"
)

type itemService struct {
	itemRepository store.ItemRepository
	ids            IDGenerator
	logger         *logger.Logger
}

// NewItemService constructs an ItemService on top of itemRepository.
func NewItemService(itemRepository store.ItemRepository, ids IDGenerator, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		ids:            ids,
		logger:         logger,
	}
}

// Create stores a new item owned by owner.
func (s *itemService) Create(ctx context.Context, owner models.User, req models.ItemCreateRequest) (models.Item, error) {
	if owner.ID == "" {
		return models.Item{}, ErrUserMissingID
	}

	item := models.Item{
		ID:      s.ids.Generate(),
		OwnerID: owner.ID,
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	created, err := s.itemRepository.Create(ctx, item)
	if err != nil {
		return models.Item{}, fmt.Errorf("item creation failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("item_id", created.ID).Msg("item created")
	return created, nil
}

// List returns the items of owner. An owner with no items gets
// ErrNoItemsFound rather than an empty list.
func (s *itemService) List(ctx context.Context, owner models.User) ([]models.Item, error) {
	items, err := s.itemRepository.ListByOwner(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("item listing failed: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNoItemsFound
	}

	return items, nil
}

// Update replaces name and description of an item owned by owner. Fields
// absent from req are stored as empty strings.
func (s *itemService) Update(ctx context.Context, owner models.User, itemID string, req models.ItemUpdateRequest) (models.Item, error) {
	if _, err := s.ownedItem(ctx, owner, itemID, ErrNotAuthorizedToUpdate); err != nil {
		return models.Item{}, err
	}

	updated, err := s.itemRepository.Update(ctx, itemID, req.Fields())
	if errors.Is(err, store.ErrItemNotFound) {
		logger.FromContext(ctx).Error().Str("item_id", itemID).Msg("item vanished during update")
		return models.Item{}, ErrUpdatedItemMissing
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("item update failed: %w", err)
	}

	return updated, nil
}

// Delete removes an item owned by owner.
func (s *itemService) Delete(ctx context.Context, owner models.User, itemID string) error {
	if _, err := s.ownedItem(ctx, owner, itemID, ErrNotAuthorizedToDelete); err != nil {
		return err
	}

	if err := s.itemRepository.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("item deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("item_id", itemID).Msg("item deleted")
	return nil
}

// ownedItem loads itemID and checks that owner owns it, returning forbidden
// otherwise.
func (s *itemService) ownedItem(ctx context.Context, owner models.User, itemID string, forbidden error) (models.Item, error) {
	item, err := s.itemRepository.GetByID(ctx, itemID)
	if errors.Is(err, store.ErrItemNotFound) {
		return models.Item{}, ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("item lookup failed: %w", err)
	}

	if item.OwnerID != owner.ID {
		logger.FromContext(ctx).Warn().
			Str("item_id", itemID).
			Str("user_id", owner.ID).
			Msg("item belongs to another user")
		return models.Item{}, forbidden
	}

	return item, nil
}
