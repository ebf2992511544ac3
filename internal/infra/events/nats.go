package events

import (
	"context"
	"log/slog"

	"seat-redeem/internal/pkg/config"
	"seat-redeem/internal/usecase/shared"

	"github.com/nats-io/nats.go"
)

type NATSPublisher struct {
	nc     *nats.Conn
	prefix string
}

func NewNATSPublisher(nc *nats.Conn, prefix string) *NATSPublisher {
	return &NATSPublisher{nc: nc, prefix: prefix}
}

// Publish is fire-and-forget; the connection buffers and flushes on its own.
func (p *NATSPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.nc.Publish(p.subject(topic), payload)
}

func (p *NATSPublisher) subject(topic string) string {
	if p.prefix == "" {
		return topic
	}
	return p.prefix + "." + topic
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, []byte) error { return nil }

func NewNoopPublisher() shared.EventPublisher {
	return noopPublisher{}
}

// Connect returns a disabled publisher when no URL is configured.
func Connect(cfg config.NATSConfig) (shared.EventPublisher, func(), error) {
	if cfg.URL == "" {
		slog.Info("nats not configured, redemption events disabled")
		return NewNoopPublisher(), func() {}, nil
	}

	nc, err := nats.Connect(cfg.URL, nats.Name("seat-redeem"))
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := nc.Drain(); err != nil {
			slog.Warn("failed to drain nats connection", "error", err)
		}
	}
	return NewNATSPublisher(nc, cfg.SubjectPrefix), cleanup, nil
}
