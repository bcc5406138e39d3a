// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a salted one-way digest of plain.
//
// The password is first keyed with HMAC-SHA256 using pepperKey and hex
// encoded, which keeps the bcrypt input at a fixed 64 bytes (below the
// 72-byte bcrypt limit) for every accepted password length. The result is
// then hashed with bcrypt using the given cost. The digest embeds its own
// salt, so it alone is enough to verify the password later.
//
// Example usage:
//
//	digest, err := utils.HashPassword("password123", "pepper", bcrypt.DefaultCost)
func HashPassword(plain, pepperKey string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(HashString(plain, pepperKey)), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether plain matches digest. It never returns an
// error: a malformed digest is treated as a mismatch.
func VerifyPassword(plain, digest, pepperKey string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(HashString(plain, pepperKey))) == nil
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
