package bootstrap

import (
	"parkspot/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	StoreModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
	SensorModule,
)
