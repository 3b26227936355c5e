package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT used between sync clients and the blob server.
//
// The "sub" claim names the account whose blobs the bearer may read and
// write. Every device of the same reader shares one account.
type Token struct {
	// Token is the parsed JWT. Excluded from JSON serialization because only
	// the compact string form is meaningful outside the process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// Account is a cached copy of the subject claim.
	Account string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
