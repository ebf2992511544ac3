package shared

import (
	"context"
	"strconv"
	"time"
)

// Event topics published by the redemption flow.
const (
	TopicRedemptionGranted = "redemption.granted"
	TopicRedemptionFailed  = "redemption.failed"
	TopicResourceDisabled  = "resource.disabled"
)

// The available-resource listing is cached per generation. A write bumps
// AvailableResourcesGenKey, so an entry built from rows read before the bump
// lands under a key no reader asks for again.
const AvailableResourcesGenKey = "resources:available:gen"

func AvailableResourcesKey(gen int64) string {
	return "resources:available:" + strconv.FormatInt(gen, 10)
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// Cache is a best-effort byte cache; a miss and an error look the same to callers.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Incr atomically adds one to the integer stored at key, starting from zero.
	Incr(ctx context.Context, key string) (int64, error)
}

type RedemptionEvent struct {
	SagaID            string    `json:"saga_id"`
	Code              string    `json:"code"`
	Email             string    `json:"email"`
	ResourceID        int64     `json:"resource_id,omitempty"`
	ExternalAccountID string    `json:"external_account_id,omitempty"`
	Warranty          bool      `json:"warranty,omitempty"`
	FailureCode       string    `json:"failure_code,omitempty"`
	Reason            string    `json:"reason,omitempty"`
	Attempts          int       `json:"attempts"`
	OccurredAt        time.Time `json:"occurred_at"`
}

type ResourceDisabledEvent struct {
	SagaID     string    `json:"saga_id"`
	ResourceID int64     `json:"resource_id"`
	ErrorCode  string    `json:"error_code"`
	OccurredAt time.Time `json:"occurred_at"`
}
