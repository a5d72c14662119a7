package adapter

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIdentity is the routing identity embedded in an access token. The
// token itself is opaque to the client; only the subject and email claims are
// read, to know which account the token belongs to.
type TokenIdentity struct {
	UserID string
	Email  string
}

type accessTokenClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// ParseTokenIdentity extracts the user id (sub) and email claims from an
// access token without verifying its signature. The server is the sole
// verifier of its own tokens; the client only needs to know which local
// account the token addresses.
func ParseTokenIdentity(token string) (TokenIdentity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return TokenIdentity{}, ErrInvalidToken
	}

	claims := &accessTokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return TokenIdentity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return TokenIdentity{}, fmt.Errorf("%w: missing subject claim", ErrInvalidToken)
	}

	return TokenIdentity{UserID: claims.Subject, Email: claims.Email}, nil
}
