// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Business rule violations, rendered to clients by the HTTP error translator.
var (
	ErrUsernameAlreadyRegistered = errors.New("username already registered")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrInvalidToken              = errors.New("could not validate credentials")

	ErrItemNotFound = errors.New("item not found")
	// ErrNoItemsFound is returned by listing when the owner has no items.
	ErrNoItemsFound = errors.New("no items found for this owner")

	// ErrNotItemOwner is matched by both ownership errors below.
	ErrNotItemOwner          = errors.New("not the owner of the item")
	ErrNotAuthorizedToUpdate = fmt.Errorf("%w: update refused", ErrNotItemOwner)
	ErrNotAuthorizedToDelete = fmt.Errorf("%w: delete refused", ErrNotItemOwner)

	// ErrUpdatedItemMissing is returned when an item disappears between the
	// ownership check and the update.
	ErrUpdatedItemMissing = errors.New("failed to retrieve updated item")
)

// Internal failures.
var (
	ErrUserMissingID       = errors.New("user has no id")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrPasswordHashing     = errors.New("password hashing failed")
)
