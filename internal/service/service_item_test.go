// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/mock"
	"github.com/MKhiriev/go-item-keeper/internal/store"
	"github.com/MKhiriev/go-item-keeper/models"
)

func strPtr(s string) *string { return &s }

var (
	john = models.User{ID: "u1", Username: "John"}
	jane = models.User{ID: "u2", Username: "Jane"}
)

func newItemService(t *testing.T, ids ...string) (*mock.MockItemRepository, ItemService) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	return repo, NewItemService(repo, &fixedIDs{ids: ids}, logger.Nop())
}

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("owned by caller", func(t *testing.T) {
		repo, svc := newItemService(t, "i1")
		want := models.Item{ID: "i1", OwnerID: "u1", Name: "Test item", Description: "Test description"}
		repo.EXPECT().Create(ctx, want).Return(want, nil)

		item, err := svc.Create(ctx, john, models.ItemCreateRequest{
			Name:        strPtr("Test item"),
			Description: strPtr("Test description"),
		})
		require.NoError(t, err)
		assert.Equal(t, want, item)
	})

	t.Run("user without id", func(t *testing.T) {
		_, svc := newItemService(t)
		_, err := svc.Create(ctx, models.User{Username: "ghost"}, models.ItemCreateRequest{})
		assert.ErrorIs(t, err, ErrUserMissingID)
	})
}

func TestItemService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("items of owner", func(t *testing.T) {
		repo, svc := newItemService(t)
		items := []models.Item{{ID: "i1", OwnerID: "u1"}}
		repo.EXPECT().ListByOwner(ctx, "u1").Return(items, nil)

		got, err := svc.List(ctx, john)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	// Current behaviour: an owner without items is reported as not found
	// instead of receiving an empty list.
	t.Run("empty listing is reported as not found", func(t *testing.T) {
		repo, svc := newItemService(t)
		repo.EXPECT().ListByOwner(ctx, "u1").Return([]models.Item{}, nil)

		_, err := svc.List(ctx, john)
		assert.ErrorIs(t, err, ErrNoItemsFound)
	})

	t.Run("store failure", func(t *testing.T) {
		repo, svc := newItemService(t)
		storeErr := &store.StoreError{Op: "query", Code: "ThrottlingException"}
		repo.EXPECT().ListByOwner(ctx, "u1").Return(nil, storeErr)

		_, err := svc.List(ctx, john)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()
	owned := models.Item{ID: "i1", OwnerID: "u1", Name: "a", Description: "b"}
	req := models.ItemUpdateRequest{Name: strPtr("Updated Item")}

	t.Run("owner replaces all fields", func(t *testing.T) {
		repo, svc := newItemService(t)
		updated := models.Item{ID: "i1", OwnerID: "u1", Name: "Updated Item"}
		gomock.InOrder(
			repo.EXPECT().GetByID(ctx, "i1").Return(owned, nil),
			repo.EXPECT().Update(ctx, "i1", map[string]any{"name": "Updated Item", "description": ""}).Return(updated, nil),
		)

		item, err := svc.Update(ctx, john, "i1", req)
		require.NoError(t, err)
		assert.Equal(t, updated, item)
	})

	t.Run("absent item", func(t *testing.T) {
		repo, svc := newItemService(t)
		repo.EXPECT().GetByID(ctx, "i9").Return(models.Item{}, store.ErrItemNotFound)

		_, err := svc.Update(ctx, john, "i9", req)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("other owner is refused without writing", func(t *testing.T) {
		repo, svc := newItemService(t)
		repo.EXPECT().GetByID(ctx, "i1").Return(owned, nil)

		_, err := svc.Update(ctx, jane, "i1", req)
		assert.ErrorIs(t, err, ErrNotAuthorizedToUpdate)
		assert.ErrorIs(t, err, ErrNotItemOwner)
	})

	t.Run("item vanished before update", func(t *testing.T) {
		repo, svc := newItemService(t)
		repo.EXPECT().GetByID(ctx, "i1").Return(owned, nil)
		repo.EXPECT().Update(ctx, "i1", gomock.Any()).Return(models.Item{}, store.ErrItemNotFound)

		_, err := svc.Update(ctx, john, "i1", req)
		assert.ErrorIs(t, err, ErrUpdatedItemMissing)
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()
	owned := models.Item{ID: "i1", OwnerID: "u1"}

	t.Run("owner deletes", func(t *testing.T) {
		repo, svc := newItemService(t)
		repo.EXPECT().GetByID(ctx, "i1").Return(owned, nil)
		repo.EXPECT().Delete(ctx, "i1").Return(nil)

		assert.NoError(t, svc.Delete(ctx, john, "i1"))
	})

	t.Run("other owner is refused", func(t *testing.T) {
		repo, svc := newItemService(t)
		repo.EXPECT().GetByID(ctx, "i1").Return(owned, nil)

		err := svc.Delete(ctx, jane, "i1")
		assert.ErrorIs(t, err, ErrNotAuthorizedToDelete)
	})

	t.Run("second delete is not found", func(t *testing.T) {
		repo, svc := newItemService(t)
		gomock.InOrder(
			repo.EXPECT().GetByID(ctx, "i1").Return(owned, nil),
			repo.EXPECT().Delete(ctx, "i1").Return(nil),
			repo.EXPECT().GetByID(ctx, "i1").Return(models.Item{}, store.ErrItemNotFound),
		)

		require.NoError(t, svc.Delete(ctx, john, "i1"))
		assert.ErrorIs(t, svc.Delete(ctx, john, "i1"), ErrItemNotFound)
	})
}
