//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"seat-redeem/internal/handler/dto/request"
	"seat-redeem/internal/pkg/cookie"
	"seat-redeem/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const LoginURL = "/api/admin/login"

// LoginAdmin signs in through the API and returns the session cookie value.
func LoginAdmin(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, LoginURL,
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}
