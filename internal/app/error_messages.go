// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into the
// `detail` field of API error responses. The client-facing wording lives in
// one place so handlers and middlewares stay consistent.
package app

const (
	// MsgCouldNotValidateCredentials is returned for every authentication
	// failure on protected routes: missing header, bad or expired token, or
	// a token whose user no longer exists.
	MsgCouldNotValidateCredentials = "Could not validate credentials"

	// MsgInvalidCredentials is returned by login for an unknown username and
	// for a wrong password alike.
	MsgInvalidCredentials = "Invalid credentials"

	MsgUsernameAlreadyRegistered = "Username already registered"

	MsgNotAuthorizedToUpdate = "Not authorized to update this item"
	MsgNotAuthorizedToDelete = "Not authorized to delete this item"
	MsgNotAuthorizedToAccess = "Not authorized to access this item"

	MsgItemNotFound = "Item not found"

	// MsgNoItemsFound is returned when listing finds nothing for the owner.
	MsgNoItemsFound = "No items found for this owner"

	MsgUpdatedItemMissing = "Failed to retrieve updated item"

	// MsgStoreError replaces the provider message of store failures; the
	// provider code travels separately in `aws_error_code`.
	MsgStoreError = "DynamoDB error"

	MsgInternalServerError = "Internal Server Error"
	MsgNotFound            = "Not Found"
	MsgMethodNotAllowed    = "Method Not Allowed"
)
