package queue

import (
	"context"
	"log/slog"

	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

// Enqueuer is the part of Client the adapters need.
type Enqueuer interface {
	EnqueueEmail(ctx context.Context, payload SendEmailPayload) error
	EnqueuePush(ctx context.Context, payload PushNotificationPayload) error
}

type mailer struct {
	queue Enqueuer
}

// NewMailer schedules mails on the queue. Enqueue failures are logged and dropped.
func NewMailer(q Enqueuer) shared.Mailer {
	return &mailer{queue: q}
}

func (m *mailer) Send(ctx context.Context, to, subject, html string) {
	if to == "" {
		return
	}
	if err := m.queue.EnqueueEmail(ctx, SendEmailPayload{To: to, Subject: subject, HTML: html}); err != nil {
		slog.Warn("failed to enqueue email", "to", to, "subject", subject, "error", err.Error())
	}
}

type dispatcher struct {
	queue Enqueuer
}

func NewPushDispatcher(q Enqueuer) shared.PushDispatcher {
	return &dispatcher{queue: q}
}

func (d *dispatcher) Dispatch(ctx context.Context, notificationID uuid.UUID) error {
	return d.queue.EnqueuePush(ctx, PushNotificationPayload{NotificationID: notificationID})
}
