package handler

import (
	"net/http"

	"hrcore/config"
	deliverycontext "hrcore/internal/delivery/context"
	"hrcore/internal/delivery/http/cookie"
	"hrcore/internal/delivery/http/response"
	domainerrors "hrcore/internal/domain/errors"
	"hrcore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for session endpoints.
type AuthHandler struct {
	uc           usecase.AuthUsecase
	cookieSecure bool
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{uc: uc, cookieSecure: cfg.Session.CookieSecure}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Login opens a session. The token is returned in the body and set as the
// session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	session, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	cookie.Write(c, session.Token, session.ExpiresIn, h.cookieSecure)

	return response.Success(c, http.StatusOK, tokenResponse{AccessToken: session.Token}, "")
}

// Refresh re-signs the session cookie with a fresh full lifetime.
func (h *AuthHandler) Refresh(c echo.Context) error {
	token := cookie.Read(c)
	if token == "" {
		return domainerrors.ErrUnauthorized
	}

	session, err := h.uc.Refresh(c.Request().Context(), token)
	if err != nil {
		return err
	}

	cookie.Write(c, session.Token, session.ExpiresIn, h.cookieSecure)

	return response.Success(c, http.StatusOK, tokenResponse{AccessToken: session.Token}, "")
}

// Me returns the identity bound to the session.
func (h *AuthHandler) Me(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return domainerrors.ErrUnauthorized
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"userId": claims.UserID,
		"email":  claims.Email,
		"role":   deliverycontext.GetRole(c),
	}, "")
}

// GoogleLogin redirects the browser to the provider consent screen.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	state := uuid.NewString()

	return c.Redirect(http.StatusTemporaryRedirect, h.uc.GoogleAuthURL(state))
}

// GoogleRedirect completes the federated login callback.
func (h *AuthHandler) GoogleRedirect(c echo.Context) error {
	state := c.QueryParam("state")
	code := c.QueryParam("code")
	if state == "" || code == "" {
		return domainerrors.ErrUnauthorized
	}

	session, err := h.uc.GoogleCallback(c.Request().Context(), state, code)
	if err != nil {
		return err
	}

	cookie.Write(c, session.Token, session.ExpiresIn, h.cookieSecure)

	return response.Success(c, http.StatusOK, tokenResponse{AccessToken: session.Token}, "")
}
