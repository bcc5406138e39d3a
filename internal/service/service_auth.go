// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-item-keeper/internal/config"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/store"
	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and access token
// lifecycle using a UserRepository for persistence and bcrypt over an HMAC
// pepper for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// ids generates the id of every registered user.
	ids IDGenerator

	// passwordHashKey is the HMAC pepper applied before bcrypt. Must match
	// the value used at registration time.
	passwordHashKey string

	// passwordHashCost is the bcrypt work factor for new digests.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenSigningAlgorithm is HS256, HS384 or HS512.
	tokenSigningAlgorithm string

	// tokenDuration controls how long a newly issued token remains valid.
	// Zero issues tokens without expiry.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, ids IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:        userRepository,
		ids:                   ids,
		passwordHashKey:       cfg.PasswordHashKey,
		passwordHashCost:      cfg.PasswordHashCost,
		tokenSignKey:          cfg.TokenSignKey,
		tokenSigningAlgorithm: cfg.TokenSigningAlgorithm,
		tokenDuration:         cfg.TokenDuration,
		logger:                logger,
	}
}

// Register creates a new user account.
//
// Uniqueness is checked with a lookup on the username index before the
// insert. The two steps are not atomic: concurrent registrations of the same
// username can both pass the check.
//
// Returns the persisted user or:
//   - ErrUsernameAlreadyRegistered if the username is taken.
//   - A wrapped storage error if a repository call fails.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindByUsername(ctx, credentials.Username)
	switch {
	case err == nil:
		log.Warn().Str("username", credentials.Username).Msg("username already registered")
		return models.User{}, ErrUsernameAlreadyRegistered
	case !errors.Is(err, store.ErrUserNotFound):
		return models.User{}, fmt.Errorf("username lookup failed: %w", err)
	}

	digest, err := utils.HashPassword(credentials.Password, a.passwordHashKey, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	user := models.User{
		ID:             a.ids.Generate(),
		Username:       credentials.Username,
		HashedPassword: digest,
	}

	registeredUser, err := a.userRepository.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials so
// callers cannot tell which check failed.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("username", credentials.Username).Msg("login for unknown username")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(credentials.Password, foundUser.HashedPassword, a.passwordHashKey) {
		log.Warn().Str("user_id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed token whose subject is the user's id.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if user.ID == "" {
		return models.Token{}, ErrUserMissingID
	}

	token, err := utils.GenerateJWTToken(user.ID, a.tokenDuration, a.tokenSigningAlgorithm, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw token string.
//
// Any validation failure (expired, bad signature, wrong algorithm, malformed,
// no subject) is normalised to ErrInvalidToken so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenSigningAlgorithm)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

// Authenticate resolves tokenString to the user it was issued to. A token
// naming a user that no longer exists is rejected with ErrInvalidToken;
// storage failures are returned as they are.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	userID, err := token.UserID()
	if err != nil {
		return models.User{}, ErrInvalidToken
	}

	user, err := a.userRepository.GetByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		logger.FromContext(ctx).Warn().Str("user_id", userID).Msg("token references unknown user")
		return models.User{}, ErrInvalidToken
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user.Public(), nil
}
