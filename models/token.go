package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT together with the owner it was issued for.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) that is returned to clients. UserID is the
// parsed "sub" claim.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
