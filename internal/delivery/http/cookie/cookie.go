// Package cookie writes and reads the session cookie.
package cookie

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Name matches what the frontend expects; the token travels in this cookie,
// not in an Authorization header.
const Name = "Authorization"

// Write sets a fresh session cookie. maxAge is the token lifetime in seconds.
func Write(c echo.Context, token string, maxAge int, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     Name,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read returns the session token, or empty string when the cookie is absent.
func Read(c echo.Context) string {
	ck, err := c.Cookie(Name)
	if err != nil {
		return ""
	}

	return ck.Value
}

// Clear expires the session cookie.
func Clear(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
