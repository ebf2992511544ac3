package grantclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"seat-redeem/internal/domain/grant"
	"seat-redeem/internal/pkg/clock"
	"seat-redeem/internal/pkg/config"
	"seat-redeem/internal/pkg/jwt"
)

const maxErrorBody = 4 << 10

type inviteRequest struct {
	EmailAddresses []string `json:"email_addresses"`
	Role           string   `json:"role"`
	ResendEmails   bool     `json:"resend_emails"`
}

type errorBody struct {
	Detail any `json:"detail"`
	Error  any `json:"error"`
}

// Client sends seat invitations to the provider's workspace API.
type Client struct {
	baseURL    string
	roleName   string
	httpClient *http.Client
	clock      clock.Clock
}

func NewClient(cfg config.Config, clk clock.Clock) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.Grant.BaseURL, "/"),
		roleName:   cfg.Grant.RoleName,
		httpClient: &http.Client{Timeout: cfg.Grant.Timeout},
		clock:      clk,
	}
}

// SendGrant never returns an error; every outcome is folded into a grant.Result.
func (c *Client) SendGrant(ctx context.Context, secret, externalAccountID, email string) grant.Result {
	if exp, err := jwt.UnverifiedExpiry(secret); err == nil && !c.clock.Now().Before(exp) {
		return grant.Failed(grant.CodeTokenInvalidated, "access token expired at "+exp.UTC().Format(time.RFC3339))
	}

	payload, err := json.Marshal(inviteRequest{
		EmailAddresses: []string{email},
		Role:           c.roleName,
		ResendEmails:   true,
	})
	if err != nil {
		return grant.Failed(grant.CodeRejected, err.Error())
	}

	endpoint := fmt.Sprintf("%s/accounts/%s/invites", c.baseURL, url.PathEscape(externalAccountID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return grant.Failed(grant.CodeRejected, err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+secret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return grant.Failed(grant.CodeNetwork, networkDetail(err))
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	result := classify(resp.StatusCode, body)
	if !result.Success {
		slog.Warn("grant request failed",
			"external_account_id", externalAccountID,
			"status", resp.StatusCode,
			"error_code", result.ErrorCode)
	}
	return result
}

func classify(status int, body []byte) grant.Result {
	switch {
	case status >= 200 && status < 300:
		return grant.Succeeded()
	case status == http.StatusUnauthorized:
		return grant.Failed(grant.CodeTokenInvalidated, detail(body, "unauthorized"))
	case status == http.StatusForbidden:
		d := detail(body, "forbidden")
		if strings.Contains(strings.ToLower(d), "deactivated") || bytes.Contains(bytes.ToLower(body), []byte("account_deactivated")) {
			return grant.Failed(grant.CodeAccountDeactivated, d)
		}
		return grant.Failed(grant.CodeRejected, d)
	case status == http.StatusTooManyRequests:
		return grant.Failed(grant.CodeRateLimited, detail(body, "rate limited"))
	case status >= 500:
		return grant.Failed(grant.CodeUpstream, detail(body, http.StatusText(status)))
	default:
		return grant.Failed(grant.CodeRejected, detail(body, http.StatusText(status)))
	}
}

func detail(body []byte, fallback string) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		for _, v := range []any{eb.Detail, eb.Error} {
			if s := stringify(v); s != "" {
				return s
			}
		}
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return fallback
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		for _, k := range []string{"code", "message"} {
			if s, ok := t[k].(string); ok && s != "" {
				return s
			}
		}
	}
	raw, _ := json.Marshal(v)
	return string(raw)
}

func networkDetail(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	return err.Error()
}
