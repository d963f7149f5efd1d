package push

import (
	"context"
	"log/slog"

	"cuponera-backend/internal/domain/notification"
	"cuponera-backend/internal/usecase/shared"
)

type logGateway struct {
	logger *slog.Logger
}

// NewLogGateway records push payloads in the log instead of calling a provider.
func NewLogGateway(logger *slog.Logger) shared.PushGateway {
	return &logGateway{logger: logger}
}

func (g *logGateway) Push(ctx context.Context, n *notification.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	target := "broadcast"
	if !n.IsBroadcast() {
		target = n.ClientID.String()
	}
	g.logger.Info("push notification",
		"notification_id", n.ID,
		"target", target,
		"title", n.Title,
		"link", n.Link,
	)
	return nil
}
