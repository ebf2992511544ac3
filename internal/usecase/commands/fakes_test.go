//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"seat-redeem/internal/domain/grant"
)

type grantCall struct {
	AccountID string
	Email     string
}

// scriptedGrants answers per external account. Without a script the grant succeeds.
type scriptedGrants struct {
	mu      sync.Mutex
	calls   []grantCall
	scripts map[string][]grant.Result
	hook    func(ctx context.Context, call grantCall)
}

func newScriptedGrants() *scriptedGrants {
	return &scriptedGrants{scripts: map[string][]grant.Result{}}
}

// script queues results for accountID; the last one repeats.
func (g *scriptedGrants) script(accountID string, results ...grant.Result) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scripts[accountID] = results
}

func (g *scriptedGrants) SendGrant(ctx context.Context, _ string, accountID, email string) grant.Result {
	call := grantCall{AccountID: accountID, Email: email}

	g.mu.Lock()
	g.calls = append(g.calls, call)
	hook := g.hook
	var out grant.Result
	queue := g.scripts[accountID]
	switch len(queue) {
	case 0:
		out = grant.Succeeded()
	case 1:
		out = queue[0]
	default:
		out = queue[0]
		g.scripts[accountID] = queue[1:]
	}
	g.mu.Unlock()

	if hook != nil {
		hook(ctx, call)
	}
	return out
}

func (g *scriptedGrants) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func (g *scriptedGrants) accounts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, 0, len(g.calls))
	for _, c := range g.calls {
		out = append(out, c.AccountID)
	}
	return out
}

var errBadCredential = errors.New("bad credential")

// plainDecrypter treats the stored blob as the secret; "corrupt" fails.
type plainDecrypter struct{}

func (plainDecrypter) DecryptCredential(blob []byte) (string, error) {
	if string(blob) == "corrupt" {
		return "", errBadCredential
	}
	return string(blob), nil
}

type recordedEvent struct {
	Topic   string
	Payload []byte
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Topic: topic, Payload: payload})
	return nil
}

func (p *recordingPublisher) topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Topic)
	}
	return out
}

type countingCache struct {
	mu    sync.Mutex
	bumps int
}

func (c *countingCache) Get(context.Context, string) ([]byte, bool) { return nil, false }

func (c *countingCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (c *countingCache) Incr(context.Context, string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bumps++
	return int64(c.bumps), nil
}
