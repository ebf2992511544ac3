//go:build unit

package grantclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"seat-redeem/internal/domain/grant"
	"seat-redeem/internal/infra/grantclient"
	"seat-redeem/internal/pkg/clock"
	"seat-redeem/internal/pkg/config"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newClient(t *testing.T, handler http.HandlerFunc) *grantclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.NewTestConfig()
	cfg.Grant.BaseURL = srv.URL + "/"
	cfg.Grant.Timeout = 500 * time.Millisecond
	return grantclient.NewClient(cfg, clock.NewMockClock(now))
}

func providerToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.RegisteredClaims{
		ExpiresAt: gojwt.NewNumericDate(exp),
	}).SignedString([]byte("provider-side-key"))
	require.NoError(t, err)
	return tok
}

func TestSendGrantRequestShape(t *testing.T) {
	var (
		gotPath string
		gotAuth string
		gotBody map[string]any
	)
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	})

	res := c.SendGrant(context.Background(), "opaque-secret", "acct/42", "member@example.com")

	assert.True(t, res.Success)
	assert.Equal(t, "/accounts/acct%2F42/invites", gotPath)
	assert.Equal(t, "Bearer opaque-secret", gotAuth)
	assert.Equal(t, []any{"member@example.com"}, gotBody["email_addresses"])
	assert.Equal(t, "standard-user", gotBody["role"])
	assert.Equal(t, true, gotBody["resend_emails"])
}

func TestSendGrantClassification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantCode   string
		wantDetail string
	}{
		{name: "created", status: http.StatusCreated, wantCode: ""},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"detail":"token revoked"}`, wantCode: grant.CodeTokenInvalidated, wantDetail: "token revoked"},
		{name: "deactivated account", status: http.StatusForbidden, body: `{"detail":{"code":"account_deactivated"}}`, wantCode: grant.CodeAccountDeactivated, wantDetail: "account_deactivated"},
		{name: "forbidden otherwise", status: http.StatusForbidden, body: `{"error":"seat limit"}`, wantCode: grant.CodeRejected, wantDetail: "seat limit"},
		{name: "rate limited", status: http.StatusTooManyRequests, wantCode: grant.CodeRateLimited, wantDetail: "rate limited"},
		{name: "upstream error", status: http.StatusBadGateway, body: "bad gateway", wantCode: grant.CodeUpstream, wantDetail: "bad gateway"},
		{name: "bad request", status: http.StatusBadRequest, body: `{"detail":{"message":"invalid email"}}`, wantCode: grant.CodeRejected, wantDetail: "invalid email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			res := c.SendGrant(context.Background(), "opaque-secret", "acct-1", "member@example.com")

			assert.Equal(t, tt.wantCode == "", res.Success)
			assert.Equal(t, tt.wantCode, res.ErrorCode)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, res.Detail)
			}
		})
	}
}

func TestSendGrantFatalityFollowsCode(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	res := c.SendGrant(context.Background(), "opaque-secret", "acct-1", "member@example.com")
	assert.True(t, res.IsFatal())
}

func TestSendGrantExpiredProviderToken(t *testing.T) {
	called := false
	c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	res := c.SendGrant(context.Background(), providerToken(t, now.Add(-time.Minute)), "acct-1", "member@example.com")
	assert.False(t, called, "expired token must not reach the provider")
	assert.Equal(t, grant.CodeTokenInvalidated, res.ErrorCode)

	res = c.SendGrant(context.Background(), providerToken(t, now.Add(time.Hour)), "acct-1", "member@example.com")
	assert.True(t, called)
	assert.True(t, res.Success)
}

func TestSendGrantNetworkFailures(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(2 * time.Second):
			case <-r.Context().Done():
			}
		})
		res := c.SendGrant(context.Background(), "opaque-secret", "acct-1", "member@example.com")
		assert.Equal(t, grant.CodeNetwork, res.ErrorCode)
		assert.False(t, res.IsFatal())
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		cfg := config.NewTestConfig()
		cfg.Grant.BaseURL = srv.URL
		c := grantclient.NewClient(cfg, clock.NewMockClock(now))

		res := c.SendGrant(context.Background(), "opaque-secret", "acct-1", "member@example.com")
		assert.Equal(t, grant.CodeNetwork, res.ErrorCode)
	})
}
