package bootstrap

import (
	"seat-redeem/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections exposes the pieces of Config that infra constructors take
// directly. Any module that supplies a config.Config can include it.
var ConfigSections = fx.Provide(
	func(cfg config.Config) config.DBConfig { return cfg.DB },
	func(cfg config.Config) config.RedisConfig { return cfg.Redis },
	func(cfg config.Config) config.NATSConfig { return cfg.NATS },
	func(cfg config.Config) config.LogConfig { return cfg.Log },
)
