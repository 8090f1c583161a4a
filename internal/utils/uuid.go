package utils

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers for uploaded objects and
// request traces.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ObjectName returns a fresh object name that keeps the lower-cased extension
// of the uploaded file name.
func (g *UUIDGenerator) ObjectName(originalName string) string {
	return g.Generate() + strings.ToLower(filepath.Ext(originalName))
}
