//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"seat-redeem/internal/handler/httperr"
	"seat-redeem/internal/handler/middleware"
	"seat-redeem/internal/pkg/config"
	"seat-redeem/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandling(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.GET("/coded", func(c *gin.Context) {
		httperr.AbortWithCode(c, http.StatusConflict, errors.New("dup"), "voucher_code_taken", "Voucher code already exists", nil)
	})
	r.GET("/bare", func(c *gin.Context) { _ = c.Error(errors.New("unmapped")) })

	t.Run("panic becomes 500", func(t *testing.T) {
		w := httptest.Perform(t, r, http.MethodGet, "/panic", nil)
		httptest.AssertErrorCode(t, w, http.StatusInternalServerError, "internal")
	})

	t.Run("coded error keeps its code", func(t *testing.T) {
		w := httptest.Perform(t, r, http.MethodGet, "/coded", nil)
		httptest.AssertErrorCode(t, w, http.StatusConflict, "voucher_code_taken")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already exists")
	})

	t.Run("private error falls back to 500", func(t *testing.T) {
		w := httptest.Perform(t, r, http.MethodGet, "/bare", nil)
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}

func TestCORSExposesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.NewTestConfig().CORS))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.Perform(t, r, http.MethodGet, "/ping", nil, httptest.WithHeader("Origin", "http://localhost:3000"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Request-Id")
}
