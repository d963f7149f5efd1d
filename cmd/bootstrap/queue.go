package bootstrap

import (
	"context"
	"log/slog"

	"cuponera-backend/internal/infra/mail"
	"cuponera-backend/internal/infra/push"
	"cuponera-backend/internal/infra/queue"
	"cuponera-backend/internal/pkg/config"
	"cuponera-backend/internal/usecase/commands"

	"github.com/hibiken/asynq"
	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		fx.Annotate(
			NewQueueClient,
			fx.As(fx.Self()),
			fx.As(new(queue.Enqueuer)),
		),
		queue.NewMailer,
		queue.NewPushDispatcher,
		push.NewLogGateway,
		NewSMTPSender,
	),
	fx.Invoke(StartWorker),
)

func NewQueueClient(lc fx.Lifecycle, cfg config.Config) *queue.Client {
	client := queue.NewClient(cfg.Queue)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client
}

func NewSMTPSender(cfg config.Config) *mail.SMTPSender {
	return mail.NewSMTPSender(cfg.Mail)
}

// StartWorker runs the asynq consumer in-process when the queue is enabled.
func StartWorker(lc fx.Lifecycle, cfg config.Config, sender *mail.SMTPSender, notifications commands.NotificationCommands, logger *slog.Logger) {
	if !cfg.Queue.Enabled {
		logger.Info("background queue disabled, mails and pushes are not delivered")
		return
	}

	srv := asynq.NewServer(queue.RedisOpt(cfg.Queue), queue.ServerConfig(cfg.Queue))
	mux := asynq.NewServeMux()
	queue.NewConsumer(sender, notifications).Register(mux)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting queue worker", "addr", cfg.Queue.RedisAddr, "concurrency", cfg.Queue.Concurrency)
			return srv.Start(mux)
		},
		OnStop: func(_ context.Context) error {
			srv.Shutdown()
			return nil
		},
	})
}
