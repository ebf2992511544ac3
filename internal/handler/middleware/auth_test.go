//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"seat-redeem/internal/domain/user"
	"seat-redeem/internal/handler/middleware"
	"seat-redeem/internal/pkg/cookie"
	"seat-redeem/internal/pkg/jwt"
	"seat-redeem/internal/usecase"
	"seat-redeem/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router     *gin.Engine
	jwtService *jwt.Service
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.jwtService = jwt.NewService("middleware-secret", time.Hour)

	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwtService))
	s.router.GET("/api/admin/ping", mw.RequireAuth(), mw.RequireAdmin(), func(c *gin.Context) {
		subject, _ := middleware.GetSubject(c)
		c.JSON(http.StatusOK, gin.H{"subject": subject})
	})
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) token(secretSvc *jwt.Service) string {
	tok, _, err := secretSvc.GenerateToken("admin", user.RoleAdmin)
	s.Require().NoError(err)
	return tok
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("bearer header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/ping", nil, s.token(s.jwtService))

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("admin", body["subject"])
	})

	s.Run("session cookie", func() {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: s.token(s.jwtService)}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/api/admin/ping", nil, cookies, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/ping", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("token signed with another key", func() {
		other := jwt.NewService("someone-else", time.Hour)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/ping", nil, s.token(other))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("expired token", func() {
		expired := jwt.NewService("middleware-secret", -time.Minute)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/admin/ping", nil, s.token(expired))
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
