// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndCompare(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.HashPassword("P@ssw0rd!")
	require.NoError(t, err)
	assert.NotEqual(t, "P@ssw0rd!", hash)

	assert.NoError(t, ComparePassword(hash, "P@ssw0rd!"))
	assert.ErrorIs(t, ComparePassword(hash, "wrong"), ErrPasswordMismatch)
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.HashPassword("same")
	require.NoError(t, err)
	second, err := h.HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewHasher_FallsBackToDefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewHasher(12).cost)
}

func TestComparePassword_CorruptHash(t *testing.T) {
	err := ComparePassword("not-a-bcrypt-hash", "secret")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
