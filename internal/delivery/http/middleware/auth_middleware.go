// Package middleware contains the HTTP middleware chain: request id, session
// authentication, sliding refresh, role checks and error rendering.
package middleware

import (
	deliverycontext "hrcore/internal/delivery/context"
	"hrcore/internal/delivery/http/cookie"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards routes with the session cookie and role checks.
type AuthMiddleware struct {
	tokenSvc     service.TokenService
	roleResolver service.RoleResolver
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, roleResolver service.RoleResolver) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, roleResolver: roleResolver}
}

// Authenticate validates the session cookie strictly (signature and expiry)
// and stores the claims on the context for handlers and role checks.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := cookie.Read(c)
		if token == "" {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.Verify(token)
		if err != nil {
			return domainerrors.ErrTokenInvalid
		}

		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireRoles allows the request through when the caller currently holds one
// of the named roles. The role is read from the store on every check, never
// from the token, so a revoked role locks the user out immediately. An empty
// allow-list lets everything through; any lookup error denies.
func (m *AuthMiddleware) RequireRoles(names ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(names) == 0 {
				return next(c)
			}

			claims := deliverycontext.GetClaims(c)
			if claims == nil {
				return domainerrors.ErrUnauthorized
			}

			for _, name := range names {
				role, err := m.roleResolver.CurrentRole(c.Request().Context(), claims.UserID)
				if err != nil {
					return domainerrors.ErrForbidden
				}
				if role.Name == name {
					deliverycontext.SetRole(c, role.Name)

					return next(c)
				}
			}

			return domainerrors.ErrForbidden
		}
	}
}
