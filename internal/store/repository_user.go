// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/models"
)

// userRepository is the [Table]-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] so
// store failures are logged with the request id.
type userRepository struct {
	table         Table
	usernameIndex string
	logger        *logger.Logger
}

// NewUserRepository constructs a [UserRepository] on top of the users table.
// usernameIndex names the secondary index keyed by the "username" attribute.
func NewUserRepository(table Table, usernameIndex string, logger *logger.Logger) UserRepository {
	logger.Debug().Str("table", table.Name()).Msg("creating user repository")
	return &userRepository{
		table:         table,
		usernameIndex: usernameIndex,
		logger:        logger,
	}
}

// GetByID returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	var user models.User
	found, err := r.table.GetByKey(ctx, id, &user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetByID").Msg("error getting user")
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// FindByUsername looks the user up through the username index.
//
// The index is eventually consistent, so a user created moments ago may not
// be visible yet. When several records share the username (see the
// registration race documented on the auth service) the first one wins.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var users []models.User
	if err := r.table.QueryByIndex(ctx, r.usernameIndex, "username", username, &users); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindByUsername").Msg("error querying users")
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, ErrUserNotFound
	}

	return users[0], nil
}

// Create persists user as a new record. The caller assigns the id.
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	if err := r.table.PutNew(ctx, user); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.Create").Msg("error saving user")
		return models.User{}, err
	}

	return user, nil
}
