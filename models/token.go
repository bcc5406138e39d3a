// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the token_type reported to clients.
const TokenTypeBearer = "bearer"

// Token is the claim set of an access token together with its compact
// serialized form.
//
// Only the "sub" (user ID) and the optional "exp" claims are ever populated;
// tokens are not persisted and cannot be revoked before they expire.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token
	// (header.payload.signature). Excluded from the claim set.
	SignedString string `json:"-"`
}

// UserID returns the subject of the token.
func (t *Token) UserID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty subject")
	}
	return sub, nil
}

// ExpiresAtTime returns the expiry as *time.Time or nil when the token
// never expires.
func (t *Token) ExpiresAtTime() *time.Time {
	if t.ExpiresAt == nil {
		return nil
	}
	exp := t.ExpiresAt.Time
	return &exp
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// TokenResponse is returned by the register and login endpoints.
type TokenResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// NewTokenResponse builds the client-facing view of token.
func NewTokenResponse(token Token) TokenResponse {
	return TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   token.ExpiresAtTime(),
	}
}
