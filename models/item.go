// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Item is an ownership-scoped record. OwnerID references the User that
// created it and is never reassigned.
type Item struct {
	ID          string `json:"id" dynamodbav:"id"`
	OwnerID     string `json:"owner_id" dynamodbav:"owner_id"`
	Name        string `json:"name" dynamodbav:"name"`
	Description string `json:"description" dynamodbav:"description"`
}

// TableName returns the default name of the key-value table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

// ItemCreateRequest is the payload of POST /item/create/.
// Both fields must be present, empty strings are accepted.
type ItemCreateRequest struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

// ItemUpdateRequest is the payload of PUT /item/update/{id}.
// The update replaces every mutable field: an omitted field is stored empty.
type ItemUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Fields returns the full set of mutable attributes for a replace-update.
func (r ItemUpdateRequest) Fields() map[string]any {
	return map[string]any{
		"name":        valueOrEmpty(r.Name),
		"description": valueOrEmpty(r.Description),
	}
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
