package bootstrap

import (
	"atlas-hotel/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	JWTModule,
	components.IntegrationModule,
	components.UseCaseModule,
	components.HandlerModule,
)
