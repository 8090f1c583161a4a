// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func Test_buildUpdateUserQuery(t *testing.T) {
	tests := []struct {
		name       string
		update     func() models.ProfileUpdate
		wantErr    error
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:    "error: empty update",
			update:  func() models.ProfileUpdate { return models.ProfileUpdate{UserID: 1} },
			wantErr: ErrNothingToUpdate,
		},
		{
			name: "success: single field",
			update: func() models.ProfileUpdate {
				return models.ProfileUpdate{UserID: 7, FirstName: strPtr("Alice")}
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				require.Contains(t, q, "update users set first_name = $1")
				require.Contains(t, q, "where user_id = $2")
				require.Contains(t, q, "returning user_id")
				require.Equal(t, []any{"Alice", int64(7)}, args)
			},
		},
		{
			name: "success: all fields including hash",
			update: func() models.ProfileUpdate {
				u := models.ProfileUpdate{
					UserID:    3,
					FirstName: strPtr("A"),
					LastName:  strPtr("B"),
					Email:     strPtr("a@b.c"),
				}
				u.SetPasswordHash("hash")
				return u
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				for _, col := range []string{"first_name", "last_name", "email", "password_hash"} {
					require.Contains(t, q, col+" = $")
				}
				require.Contains(t, query, "$5")
				require.Equal(t, []any{"A", "B", "a@b.c", "hash", int64(3)}, args)
			},
		},
		{
			name: "success: plain new password is never written",
			update: func() models.ProfileUpdate {
				return models.ProfileUpdate{UserID: 3, LastName: strPtr("B"), NewPassword: strPtr("secret")}
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.NotContains(t, strings.ToLower(query), "password_hash =")
				assert.NotContains(t, args, "secret")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateUserQuery(tt.update())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildUpdatePostQuery(t *testing.T) {
	_, _, err := buildUpdatePostQuery(models.PostUpdate{PostID: 1})
	require.ErrorIs(t, err, ErrNothingToUpdate)

	query, args, err := buildUpdatePostQuery(models.PostUpdate{
		PostID:    9,
		Title:     strPtr("New title"),
		ImagePath: strPtr("/uploads/x.png"),
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update posts set updated_at = now()")
	require.Contains(t, q, "title = $1")
	require.Contains(t, q, "image_path = $2")
	require.Contains(t, q, "where post_id = $3")
	require.NotContains(t, q, "category")
	require.Equal(t, []any{"New title", "/uploads/x.png", int64(9)}, args)
}

func Test_buildListPostsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.PostFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "no filter",
			filter: models.PostFilter{},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				require.Contains(t, q, "from posts p join users u on u.user_id = p.author_id")
				require.Contains(t, q, "order by p.created_at desc")
				require.NotContains(t, q, "where")
				require.NotContains(t, q, "limit")
				require.Empty(t, args)
			},
		},
		{
			name:   "category and author",
			filter: models.PostFilter{Category: "go", AuthorID: 4, Limit: 10},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				require.Contains(t, q, "p.category = $1")
				require.Contains(t, q, "p.author_id = $2")
				require.Contains(t, q, "limit 10")
				require.Equal(t, []any{"go", int64(4)}, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListPostsQuery(tt.filter)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}
