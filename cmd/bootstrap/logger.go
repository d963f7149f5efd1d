package bootstrap

import (
	"log/slog"

	"cuponera-backend/internal/handler/middleware"
	"cuponera-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default used by the use cases.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}
