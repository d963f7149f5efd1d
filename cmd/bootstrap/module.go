package bootstrap

import (
	"cuponera-backend/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	MetricsModule,
	QueueModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
