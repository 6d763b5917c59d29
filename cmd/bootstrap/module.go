package bootstrap

import (
	"booking-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	QuoteCacheModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
