// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "unicode"

// MaxPasswordScore is the highest score [PasswordStrength] can return.
const MaxPasswordScore = 5

// Strength is the result of scoring a candidate password.
type Strength struct {
	// Score counts the satisfied rules: length of at least 8, an upper-case
	// letter, a lower-case letter, a digit and a symbol.
	Score int
	Label string
}

// Strong reports whether the password is good enough to show as acceptable.
func (s Strength) Strong() bool {
	return s.Score >= 4
}

// PasswordStrength scores password with one point per satisfied rule.
func PasswordStrength(password string) Strength {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	length := 0
	for _, r := range password {
		length++
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsSpace(r):
			hasSymbol = true
		}
	}

	score := 0
	for _, ok := range []bool{length >= 8, hasUpper, hasLower, hasDigit, hasSymbol} {
		if ok {
			score++
		}
	}

	return Strength{Score: score, Label: strengthLabel(score)}
}

func strengthLabel(score int) string {
	switch {
	case score <= 1:
		return "Weak"
	case score == 2:
		return "Fair"
	case score == 3:
		return "Good"
	case score == 4:
		return "Strong"
	default:
		return "Very Strong"
	}
}
