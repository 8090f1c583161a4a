package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password  string
		wantScore int
		wantLabel string
		strong    bool
	}{
		{"", 0, "Weak", false},
		{"abc", 1, "Weak", false},
		{"abcdefgh", 2, "Fair", false},
		{"Abcdefgh", 3, "Good", false},
		{"Abcdefg1", 4, "Strong", true},
		{"Abcdef1!", 5, "Very Strong", true},
		{"A1!", 3, "Good", false},
		{"пароль12", 3, "Good", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			got := PasswordStrength(tt.password)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.strong, got.Strong())
		})
	}
}

func TestPasswordStrength_SpacesAreNotSymbols(t *testing.T) {
	assert.Equal(t, 2, PasswordStrength("abcd efg").Score)
}
