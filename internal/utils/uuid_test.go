package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, first, second)
}

func TestUUIDGenerator_ObjectName(t *testing.T) {
	g := NewUUIDGenerator()

	name := g.ObjectName("Avatar.PNG")
	assert.True(t, strings.HasSuffix(name, ".png"))

	_, err := uuid.Parse(strings.TrimSuffix(name, ".png"))
	assert.NoError(t, err)

	assert.Len(t, g.ObjectName("noext"), 36)
}
