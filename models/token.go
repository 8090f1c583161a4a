package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed bearer JWT.
//
// It embeds [jwt.RegisteredClaims] so that it can be passed directly to
// [jwt.ParseWithClaims]. SignedString is the compact form handed to the client;
// UserID is the parsed "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Credentials is the login body. Identity is matched against both the
// username and the email column.
type Credentials struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

// TokenValidation is the body of POST /auth/validate-token.
type TokenValidation struct {
	Valid bool            `json:"valid"`
	User  *UserProjection `json:"user,omitempty"`
}
