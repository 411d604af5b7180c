package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestWrite_SetsHardenedCookie(t *testing.T) {
	c, rec := newTestContext(t)

	Write(c, "token-123", 3600, true)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	ck := cookies[0]
	assert.Equal(t, Name, ck.Name)
	assert.Equal(t, "token-123", ck.Value)
	assert.Equal(t, 3600, ck.MaxAge)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
}

func TestRead(t *testing.T) {
	c, _ := newTestContext(t, &http.Cookie{Name: Name, Value: "token-123"})
	assert.Equal(t, "token-123", Read(c))

	empty, _ := newTestContext(t)
	assert.Empty(t, Read(empty))
}

func TestClear_ExpiresCookie(t *testing.T) {
	c, rec := newTestContext(t)

	Clear(c, false)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
