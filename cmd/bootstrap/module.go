package bootstrap

import (
	"room-reservation/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	NotificationModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
