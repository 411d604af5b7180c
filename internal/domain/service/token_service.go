// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the identity payload signed into session tokens. It is the
// credential record minus the password hash: the hash must never reach a token.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for minting and verifying session tokens.
type TokenService interface {
	// Sign mints a token for the identity with a fresh full-length expiry.
	Sign(userID int64, email string) (string, error)

	// Verify checks signature and expiry, returning the embedded claims.
	Verify(token string) (*Claims, error)

	// VerifyLoose checks the signature but ignores expiry. This is the
	// sliding-session path: an expired-but-authentic token may be re-signed.
	VerifyLoose(token string) (*Claims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
