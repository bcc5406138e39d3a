// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-item-keeper/internal/config"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/mock"
	"github.com/MKhiriev/go-item-keeper/internal/store"
	"github.com/MKhiriev/go-item-keeper/internal/utils"
	"github.com/MKhiriev/go-item-keeper/models"
)

type fixedIDs struct{ ids []string }

func (f *fixedIDs) Generate() string {
	id := f.ids[0]
	f.ids = f.ids[1:]
	return id
}

var testAppConfig = config.App{
	TokenSignKey:          "sign-key",
	TokenSigningAlgorithm: "HS256",
	TokenDuration:         time.Hour,
	PasswordHashKey:       "pepper",
	PasswordHashCost:      bcrypt.MinCost,
}

func newAuthService(t *testing.T, ids ...string) (*mock.MockUserRepository, AuthService) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return repo, NewAuthService(repo, &fixedIDs{ids: ids}, testAppConfig, logger.Nop())
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	creds := models.Credentials{Username: "John", Password: "password123"}

	t.Run("new user", func(t *testing.T) {
		repo, svc := newAuthService(t, "u1")
		repo.EXPECT().FindByUsername(ctx, "John").Return(models.User{}, store.ErrUserNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			return u, nil
		})

		user, err := svc.Register(ctx, creds)
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "John", user.Username)
		assert.NotEqual(t, creds.Password, user.HashedPassword)
		assert.True(t, utils.VerifyPassword(creds.Password, user.HashedPassword, testAppConfig.PasswordHashKey))
	})

	t.Run("username taken", func(t *testing.T) {
		repo, svc := newAuthService(t)
		repo.EXPECT().FindByUsername(ctx, "John").Return(models.User{ID: "u0", Username: "John"}, nil)

		_, err := svc.Register(ctx, creds)
		assert.ErrorIs(t, err, ErrUsernameAlreadyRegistered)
	})

	t.Run("lookup failure", func(t *testing.T) {
		repo, svc := newAuthService(t)
		storeErr := &store.StoreError{Op: "query", Code: "ThrottlingException"}
		repo.EXPECT().FindByUsername(ctx, "John").Return(models.User{}, storeErr)

		_, err := svc.Register(ctx, creds)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("create failure", func(t *testing.T) {
		repo, svc := newAuthService(t, "u1")
		storeErr := &store.StoreError{Op: "put", Code: "InternalServerError"}
		repo.EXPECT().FindByUsername(ctx, "John").Return(models.User{}, store.ErrUserNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).Return(models.User{}, storeErr)

		_, err := svc.Register(ctx, creds)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	digest, err := utils.HashPassword("password123", testAppConfig.PasswordHashKey, bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{ID: "u1", Username: "John", HashedPassword: digest}

	t.Run("correct password", func(t *testing.T) {
		repo, svc := newAuthService(t)
		repo.EXPECT().FindByUsername(ctx, "John").Return(stored, nil)

		user, err := svc.Login(ctx, models.Credentials{Username: "John", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		repo, svc := newAuthService(t)
		repo.EXPECT().FindByUsername(ctx, "John").Return(stored, nil)
		repo.EXPECT().FindByUsername(ctx, "Nobody").Return(models.User{}, store.ErrUserNotFound)

		_, wrongPassword := svc.Login(ctx, models.Credentials{Username: "John", Password: "password124"})
		_, unknownUser := svc.Login(ctx, models.Credentials{Username: "Nobody", Password: "password123"})

		assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	})

	t.Run("store failure", func(t *testing.T) {
		repo, svc := newAuthService(t)
		storeErr := &store.StoreError{Op: "query", Code: "ThrottlingException"}
		repo.EXPECT().FindByUsername(ctx, "John").Return(models.User{}, storeErr)

		_, err := svc.Login(ctx, models.Credentials{Username: "John", Password: "password123"})
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Tokens(t *testing.T) {
	ctx := context.Background()
	_, svc := newAuthService(t)

	token, err := svc.CreateToken(ctx, models.User{ID: "u1"})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())
	require.NotNil(t, token.ExpiresAtTime())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	sub, err := parsed.UserID()
	require.NoError(t, err)
	assert.Equal(t, "u1", sub)

	_, err = svc.CreateToken(ctx, models.User{})
	assert.ErrorIs(t, err, ErrUserMissingID)

	for _, bad := range []string{"", "garbage", token.String() + "x"} {
		_, err = svc.ParseToken(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidToken, bad)
	}

	otherKey := NewAuthService(nil, nil, config.App{TokenSignKey: "other", TokenSigningAlgorithm: "HS256"}, logger.Nop())
	_, err = otherKey.ParseToken(ctx, token.String())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}).SignedString([]byte(testAppConfig.TokenSignKey))
	require.NoError(t, err)

	_, svc := newAuthService(t)
	_, err = svc.ParseToken(ctx, expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("known user without digest", func(t *testing.T) {
		repo, svc := newAuthService(t)
		token, err := svc.CreateToken(ctx, models.User{ID: "u1"})
		require.NoError(t, err)
		repo.EXPECT().GetByID(ctx, "u1").Return(models.User{ID: "u1", Username: "John", HashedPassword: "digest"}, nil)

		user, err := svc.Authenticate(ctx, token.String())
		require.NoError(t, err)
		assert.Equal(t, models.User{ID: "u1", Username: "John"}, user)
	})

	t.Run("vanished user", func(t *testing.T) {
		repo, svc := newAuthService(t)
		token, err := svc.CreateToken(ctx, models.User{ID: "u1"})
		require.NoError(t, err)
		repo.EXPECT().GetByID(ctx, "u1").Return(models.User{}, store.ErrUserNotFound)

		_, err = svc.Authenticate(ctx, token.String())
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("invalid token skips lookup", func(t *testing.T) {
		_, svc := newAuthService(t)
		_, err := svc.Authenticate(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("store failure", func(t *testing.T) {
		repo, svc := newAuthService(t)
		token, err := svc.CreateToken(ctx, models.User{ID: "u1"})
		require.NoError(t, err)
		storeErr := &store.StoreError{Op: "get", Code: "ThrottlingException"}
		repo.EXPECT().GetByID(ctx, "u1").Return(models.User{}, storeErr)

		_, err = svc.Authenticate(ctx, token.String())
		assert.ErrorIs(t, err, storeErr)
	})
}
