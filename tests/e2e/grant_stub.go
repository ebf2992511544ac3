//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

type GrantCall struct {
	AccountID string
	Token     string
	Emails    []string
}

type stubResponse struct {
	status int
	body   string
}

// GrantStub stands in for the provider's invite endpoint. Accounts answer
// 200 unless a response was queued for them; the last queued response repeats.
type GrantStub struct {
	server *httptest.Server

	mu        sync.Mutex
	responses map[string][]stubResponse
	calls     []GrantCall
}

func NewGrantStub() *GrantStub {
	g := &GrantStub{responses: map[string][]stubResponse{}}
	g.server = httptest.NewServer(http.HandlerFunc(g.serve))
	return g
}

func (g *GrantStub) URL() string { return g.server.URL }

func (g *GrantStub) Close() { g.server.Close() }

func (g *GrantStub) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.responses = map[string][]stubResponse{}
	g.calls = nil
}

func (g *GrantStub) Respond(accountID string, status int, body string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.responses[accountID] = append(g.responses[accountID], stubResponse{status: status, body: body})
}

func (g *GrantStub) Calls() []GrantCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]GrantCall(nil), g.calls...)
}

func (g *GrantStub) serve(w http.ResponseWriter, r *http.Request) {
	// /accounts/{id}/invites
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if r.Method != http.MethodPost || len(parts) != 3 || parts[0] != "accounts" || parts[2] != "invites" {
		http.NotFound(w, r)
		return
	}
	accountID := parts[1]

	var body struct {
		EmailAddresses []string `json:"email_addresses"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	g.mu.Lock()
	g.calls = append(g.calls, GrantCall{
		AccountID: accountID,
		Token:     strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "),
		Emails:    body.EmailAddresses,
	})
	resp := stubResponse{status: http.StatusOK, body: `{"ok":true}`}
	if queue := g.responses[accountID]; len(queue) > 0 {
		resp = queue[0]
		if len(queue) > 1 {
			g.responses[accountID] = queue[1:]
		}
	}
	g.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}
