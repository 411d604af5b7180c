// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// LoginInput defines the credentials required to open a session.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SessionOutput returns a freshly signed session token. ExpiresIn is the
// token lifetime in seconds, which doubles as the cookie max-age.
type SessionOutput struct {
	Token     string
	ExpiresIn int
}

// AuthUsecase defines the authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login validates the credentials and mints a session token. Wrong email
	// and wrong password fail identically.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// Refresh re-signs an authentic token regardless of its expiry, granting
	// a full fresh lifetime. The token must carry a valid signature.
	Refresh(ctx context.Context, token string) (*SessionOutput, error)

	// GoogleAuthURL returns the federated-login redirect URL for a state.
	GoogleAuthURL(state string) string

	// GoogleCallback completes the federated login: it exchanges the code,
	// looks the profile's email up and provisions a new employee when the
	// email is unknown, then mints a session token.
	GoogleCallback(ctx context.Context, state, code string) (*SessionOutput, error)
}
