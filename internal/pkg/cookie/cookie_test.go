//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-reservation/internal/pkg/config"
	"restaurant-reservation/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	cookie.SetAccessToken(c, config.CookieConfig{Secure: true, SameSite: "Strict"}, "tok", time.Hour)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	got := cookies[0]
	assert.Equal(t, cookie.AccessTokenCookieName, got.Name)
	assert.Equal(t, "tok", got.Value)
	assert.Equal(t, 3600, got.MaxAge)
	assert.True(t, got.HttpOnly)
	assert.True(t, got.Secure)
	assert.Equal(t, http.SameSiteStrictMode, got.SameSite)
}

func TestGetAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reads the cookie", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "abc"})
		assert.Equal(t, "abc", cookie.GetAccessToken(c))
	})

	t.Run("empty when absent", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, cookie.GetAccessToken(c))
	})
}
