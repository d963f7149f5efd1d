package bootstrap

import (
	"cuponera-backend/internal/infra/metrics"
	"cuponera-backend/internal/usecase/shared"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) shared.ScanObserver { return m },
	),
)
