package components

import (
	"seat-redeem/internal/infra/credential"
	"seat-redeem/internal/infra/grantclient"
	"seat-redeem/internal/usecase/commands"

	"go.uber.org/fx"
)

var ExternalModule = fx.Module("external",
	fx.Provide(
		fx.Annotate(
			credential.NewCipherFromConfig,
			fx.As(new(commands.CredentialDecrypter)),
		),
		fx.Annotate(
			grantclient.NewClient,
			fx.As(new(commands.GrantClient)),
		),
	),
)
