package bootstrap

import (
	"context"

	"seat-redeem/internal/infra/cache"
	"seat-redeem/internal/infra/events"
	"seat-redeem/internal/pkg/config"
	"seat-redeem/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewCache,
		NewEventPublisher,
	),
)

func NewCache(lc fx.Lifecycle, cfg config.RedisConfig) (shared.Cache, error) {
	c, cleanup, err := cache.Connect(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return c, nil
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.NATSConfig) (shared.EventPublisher, error) {
	p, cleanup, err := events.Connect(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return p, nil
}
