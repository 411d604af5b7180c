package service

import "context"

// OAuthProfile is the subset of a federated identity profile the system needs.
type OAuthProfile struct {
	ProviderUserID string
	Email          string
	Name           string
}

// OAuthService abstracts the redirect-based federated login flow.
type OAuthService interface {
	// BuildAuthorizationURL returns the provider URL to redirect the browser
	// to, carrying the given anti-CSRF state.
	BuildAuthorizationURL(state string) string

	// ValidateState consumes a previously issued state parameter.
	ValidateState(state string) bool

	// ExchangeCode trades the callback authorization code for the provider
	// profile of the authenticated user.
	ExchangeCode(ctx context.Context, code string) (*OAuthProfile, error)
}
