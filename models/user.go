// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the opaque unique identifier generated at registration.
	// It is the partition key of the users table and the "sub" claim of
	// every issued token.
	ID string `json:"id" dynamodbav:"id"`

	// Username is the unique login name (3..50 characters).
	// Uniqueness is checked through the username secondary index.
	Username string `json:"username" dynamodbav:"username"`

	// HashedPassword is the bcrypt digest of the password.
	// It is never serialized to JSON so it cannot leak into responses or logs.
	HashedPassword string `json:"-" dynamodbav:"hashed_password"`
}

// TableName returns the default name of the key-value table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of the user stripped of the password digest.
// It is the representation attached to the request context after
// authentication.
func (u User) Public() User {
	return User{ID: u.ID, Username: u.Username}
}

// Credentials is the payload of the register and login endpoints.
type Credentials struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}
