package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrcore/config"
	deliverycontext "hrcore/internal/delivery/context"
	"hrcore/internal/delivery/http/cookie"
	"hrcore/internal/domain/entity"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/domain/service"
	"hrcore/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	claims    *service.Claims
	verifyErr error
	looseErr  error
	signed    string
	signErr   error
}

func (s *stubTokenService) Sign(int64, string) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}

	return s.signed, nil
}

func (s *stubTokenService) Verify(string) (*service.Claims, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}

	return s.claims, nil
}

func (s *stubTokenService) VerifyLoose(string) (*service.Claims, error) {
	if s.looseErr != nil {
		return nil, s.looseErr
	}

	return s.claims, nil
}

func (s *stubTokenService) TTL() time.Duration {
	return time.Hour
}

type stubRoleResolver struct {
	role  *entity.Role
	err   error
	calls int
}

func (s *stubRoleResolver) CurrentRole(context.Context, int64) (*entity.Role, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	return s.role, nil
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, withCookie bool, prime func(echo.Context)) (echo.Context, error) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: "session-token"})
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())
	if prime != nil {
		prime(c)
	}

	handler := mw(func(c echo.Context) error { return nil })

	return c, handler(c)
}

func TestAuthenticate_SetsClaims(t *testing.T) {
	tokenSvc := &stubTokenService{claims: &service.Claims{UserID: 7, Email: "ana@example.com"}}
	mw := NewAuthMiddleware(tokenSvc, &stubRoleResolver{})

	c, err := runMiddleware(t, mw.Authenticate, true, nil)

	require.NoError(t, err)
	claims := deliverycontext.GetClaims(c)
	require.NotNil(t, claims)
	assert.Equal(t, int64(7), claims.UserID)
}

func TestAuthenticate_MissingCookie(t *testing.T) {
	mw := NewAuthMiddleware(&stubTokenService{}, &stubRoleResolver{})

	_, err := runMiddleware(t, mw.Authenticate, false, nil)

	assert.Equal(t, domainerrors.ErrUnauthorized, err)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	tokenSvc := &stubTokenService{verifyErr: errors.New("token expired")}
	mw := NewAuthMiddleware(tokenSvc, &stubRoleResolver{})

	_, err := runMiddleware(t, mw.Authenticate, true, nil)

	assert.Equal(t, domainerrors.ErrTokenInvalid, err)
}

func primeClaims(c echo.Context) {
	deliverycontext.SetClaims(c, &service.Claims{UserID: 7, Email: "ana@example.com"})
}

func TestRequireRoles_MatchingRoleStamped(t *testing.T) {
	resolver := &stubRoleResolver{role: &entity.Role{RoleID: 2, Name: entity.RoleNameAdministrative}}
	mw := NewAuthMiddleware(&stubTokenService{}, resolver)

	c, err := runMiddleware(t, mw.RequireRoles(entity.RoleNameAdministrative), true, primeClaims)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleNameAdministrative, deliverycontext.GetRole(c))
}

func TestRequireRoles_CurrentRoleNotAllowed(t *testing.T) {
	resolver := &stubRoleResolver{role: &entity.Role{RoleID: 3, Name: entity.RoleNameRecruiter}}
	mw := NewAuthMiddleware(&stubTokenService{}, resolver)

	_, err := runMiddleware(t, mw.RequireRoles(entity.RoleNameAdministrator), true, primeClaims)

	assert.Equal(t, domainerrors.ErrForbidden, err)
}

func TestRequireRoles_ResolverErrorDenies(t *testing.T) {
	resolver := &stubRoleResolver{err: errors.New("db down")}
	mw := NewAuthMiddleware(&stubTokenService{}, resolver)

	_, err := runMiddleware(t, mw.RequireRoles(entity.RoleNameAdministrator), true, primeClaims)

	assert.Equal(t, domainerrors.ErrForbidden, err)
}

func TestRequireRoles_MissingIdentityDenies(t *testing.T) {
	mw := NewAuthMiddleware(&stubTokenService{}, &stubRoleResolver{})

	_, err := runMiddleware(t, mw.RequireRoles(entity.RoleNameAdministrator), true, nil)

	assert.Equal(t, domainerrors.ErrUnauthorized, err)
}

func TestRequireRoles_EmptyAllowListAllows(t *testing.T) {
	resolver := &stubRoleResolver{}
	mw := NewAuthMiddleware(&stubTokenService{}, resolver)

	_, err := runMiddleware(t, mw.RequireRoles(), true, nil)

	require.NoError(t, err)
	assert.Zero(t, resolver.calls)
}

func TestSlide_RewritesCookie(t *testing.T) {
	tokenSvc := &stubTokenService{
		claims: &service.Claims{UserID: 7, Email: "ana@example.com"},
		signed: "fresh-token",
	}
	mw := NewRefreshMiddleware(tokenSvc, &config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: "stale-token"})
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := mw.Slide(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "fresh-token", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestSlide_BadSignatureNeverRejects(t *testing.T) {
	tokenSvc := &stubTokenService{looseErr: errors.New("bad signature")}
	mw := NewRefreshMiddleware(tokenSvc, &config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: "forged"})
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	err := mw.Slide(func(echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSlide_NoCookiePassesThrough(t *testing.T) {
	mw := NewRefreshMiddleware(&stubTokenService{}, &config.Config{})

	_, err := runMiddleware(t, mw.Slide, false, nil)

	require.NoError(t, err)
}
