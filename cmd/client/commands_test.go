// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-item-keeper/internal/adapter"
	"github.com/MKhiriev/go-item-keeper/internal/mock"
	"github.com/MKhiriev/go-item-keeper/models"
)

func strPtr(s string) *string { return &s }

func TestRun_Auth(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)

	creds := models.Credentials{Username: "John", Password: "password123"}
	a.EXPECT().Register(ctx, creds).Return(models.TokenResponse{AccessToken: "tok-1"}, nil)
	a.EXPECT().Login(ctx, creds).Return(models.TokenResponse{AccessToken: "tok-2"}, nil)
	a.EXPECT().Profile(ctx).Return("Welcome John!", nil)

	var out bytes.Buffer
	require.NoError(t, run(ctx, a, []string{"register", "John", "password123"}, &out))
	require.NoError(t, run(ctx, a, []string{"login", "John", "password123"}, &out))
	require.NoError(t, run(ctx, a, []string{"profile"}, &out))

	assert.Equal(t, "tok-1\ntok-2\nWelcome John!\n", out.String())
}

func TestRun_ItemCommands(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	item := models.Item{ID: "i1", OwnerID: "u1", Name: "Test item", Description: "Test description"}

	gomock.InOrder(
		a.EXPECT().CreateItem(ctx, models.ItemCreateRequest{
			Name:        strPtr("Test item"),
			Description: strPtr("Test description"),
		}).Return(item, nil),
		a.EXPECT().UpdateItem(ctx, "i1", models.ItemUpdateRequest{Name: strPtr("Updated Item")}).
			Return(models.Item{ID: "i1", OwnerID: "u1", Name: "Updated Item"}, nil),
		a.EXPECT().ListItems(ctx).Return([]models.Item{item}, nil),
		a.EXPECT().DeleteItem(ctx, "i1").Return(nil),
	)

	var out bytes.Buffer
	require.NoError(t, run(ctx, a, []string{"item", "create", "-name", "Test item", "-description", "Test description"}, &out))
	var created models.Item
	require.NoError(t, json.Unmarshal(out.Bytes(), &created))
	assert.Equal(t, item, created)

	out.Reset()
	require.NoError(t, run(ctx, a, []string{"item", "update", "i1", "-name", "Updated Item"}, &out))
	assert.Contains(t, out.String(), `"name": "Updated Item"`)

	out.Reset()
	require.NoError(t, run(ctx, a, []string{"item", "list"}, &out))
	var items []models.Item
	require.NoError(t, json.Unmarshal(out.Bytes(), &items))
	assert.Equal(t, []models.Item{item}, items)

	out.Reset()
	require.NoError(t, run(ctx, a, []string{"item", "delete", "i1"}, &out))
	assert.Equal(t, "deleted i1\n", out.String())
}

func TestRun_EmptyListPrintsEmptyArray(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	a.EXPECT().ListItems(ctx).Return(nil, fmt.Errorf("%w: No items found for this owner", adapter.ErrNotFound))

	var out bytes.Buffer
	require.NoError(t, run(ctx, a, []string{"item", "list"}, &out))
	assert.Equal(t, "[]\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		args  []string
		setup func(a *mock.MockServerAdapter)
		want  error
	}{
		{name: "no command", args: nil, want: errUsage},
		{name: "unknown command", args: []string{"frobnicate"}, want: errUsage},
		{name: "register needs two args", args: []string{"register", "John"}, want: errUsage},
		{name: "delete needs id", args: []string{"item", "delete"}, want: errUsage},
		{name: "unknown flag", args: []string{"item", "create", "-colour", "red"}, want: errUsage},
		{
			name: "server error is returned",
			args: []string{"item", "delete", "i9"},
			setup: func(a *mock.MockServerAdapter) {
				a.EXPECT().DeleteItem(ctx, "i9").Return(adapter.ErrForbidden)
			},
			want: adapter.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mock.NewMockServerAdapter(gomock.NewController(t))
			if tt.setup != nil {
				tt.setup(a)
			}

			err := run(ctx, a, tt.args, &bytes.Buffer{})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
