package middleware

import (
	"time"

	"hrcore/config"
	"hrcore/internal/delivery/http/cookie"
	"hrcore/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RefreshMiddleware keeps sessions alive: every request carrying an authentic
// session cookie gets it rewritten with a fresh full-lifetime token, even if
// the old one already expired. It never rejects a request; bad or missing
// cookies are left for the access guard to judge.
type RefreshMiddleware struct {
	tokenSvc service.TokenService
	secure   bool
}

// NewRefreshMiddleware is the constructor for RefreshMiddleware.
func NewRefreshMiddleware(tokenSvc service.TokenService, cfg *config.Config) *RefreshMiddleware {
	return &RefreshMiddleware{tokenSvc: tokenSvc, secure: cfg.Session.CookieSecure}
}

// Slide is the middleware function.
func (m *RefreshMiddleware) Slide(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := cookie.Read(c)
		if token == "" {
			return next(c)
		}

		claims, err := m.tokenSvc.VerifyLoose(token)
		if err != nil {
			return next(c)
		}

		fresh, err := m.tokenSvc.Sign(claims.UserID, claims.Email)
		if err != nil {
			return next(c)
		}

		cookie.Write(c, fresh, int(m.tokenSvc.TTL()/time.Second), m.secure)

		return next(c)
	}
}
