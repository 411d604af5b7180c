// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"hrcore/config"
	"hrcore/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live granted on every sign or re-sign.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.JWT),
		ttl:    cfg.Session.TTL,
	}, nil
}

// Sign mints a session token carrying the user identity, valid for a full TTL.
func (s *jwtService) Sign(userID int64, email string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			// A unique token id keeps re-signs distinct even when they land
			// in the same second as the token they replace.
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify checks signature and expiry, returning the embedded claims.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, jwt.NewParser())
}

// VerifyLoose checks the signature but accepts expired tokens. It backs the
// sliding-session refresh: an authentic but stale token is still good enough
// to mint a fresh one.
func (s *jwtService) VerifyLoose(tokenString string) (*service.Claims, error) {
	return s.parse(tokenString, jwt.NewParser(jwt.WithoutClaimsValidation()))
}

// TTL returns the lifetime granted to freshly signed tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

func (s *jwtService) parse(tokenString string, parser *jwt.Parser) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	return claims, nil
}
