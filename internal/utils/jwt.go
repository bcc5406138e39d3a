// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-item-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultSigningAlgorithm is used when no algorithm is configured.
const DefaultSigningAlgorithm = "HS256"

// ErrUnsupportedSigningAlgorithm is returned for any algorithm that is not
// one of the symmetric HMAC algorithms HS256, HS384 or HS512.
var ErrUnsupportedSigningAlgorithm = errors.New("unsupported token signing algorithm")

// SigningMethod resolves a symmetric signing method by its JWA name.
func SigningMethod(algorithm string) (jwt.SigningMethod, error) {
	switch algorithm {
	case "", jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSigningAlgorithm, algorithm)
	}
}

// GenerateJWTToken creates a signed JWT token for the given subject.
//
// The token includes the following claims:
//   - Subject   (sub): the user ID
//   - ExpiresAt (exp): the current time plus tokenDuration, only when
//     tokenDuration is positive; otherwise the token never expires
//
// Parameters:
//
//	subject          - ID of the user the token is issued for
//	tokenDuration    - how long the token remains valid, 0 for no expiry
//	signingAlgorithm - HS256, HS384 or HS512
//	signKey          - secret key used to sign the token
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(user.ID, 30*time.Minute, "HS256", "secret")
func GenerateJWTToken(subject string, tokenDuration time.Duration, signingAlgorithm, signKey string) (models.Token, error) {
	if subject == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method, err := SigningMethod(signingAlgorithm)
	if err != nil {
		return models.Token{}, err
	}

	claims := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(tokenDuration))
	}

	tokenString, err := jwt.NewWithClaims(method, &claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	claims.SignedString = tokenString
	return claims, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Algorithm check: only signingAlgorithm is accepted
//   - Expiration (exp) claim check when the claim is present
//   - Subject (sub) claim presence
//
// Callers must not reveal to clients which of these checks failed.
func ValidateAndParseJWTToken(tokenString, signKey, signingAlgorithm string) (models.Token, error) {
	method, err := SigningMethod(signingAlgorithm)
	if err != nil {
		return models.Token{}, err
	}

	var claims models.Token
	_, err = jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{method.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if _, err = claims.UserID(); err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	claims.SignedString = tokenString
	return claims, nil
}
