package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"cuponera-backend/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// MailSender delivers a rendered mail.
type MailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// NotificationDeliverer pushes a stored notification and records the outcome.
type NotificationDeliverer interface {
	Deliver(ctx context.Context, notificationID uuid.UUID) error
}

type Consumer struct {
	mail          MailSender
	notifications NotificationDeliverer
}

func NewConsumer(mail MailSender, notifications NotificationDeliverer) *Consumer {
	return &Consumer{mail: mail, notifications: notifications}
}

func (c *Consumer) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TaskSendEmail, c.HandleSendEmail)
	mux.HandleFunc(TaskPushNotification, c.HandlePushNotification)
}

func (c *Consumer) HandleSendEmail(ctx context.Context, task *asynq.Task) error {
	var payload SendEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		slog.Warn("invalid email task payload", "error", err.Error())
		return asynq.SkipRetry
	}
	if payload.To == "" {
		return nil
	}
	if err := c.mail.Send(ctx, payload.To, payload.Subject, payload.HTML); err != nil {
		slog.Warn("email delivery failed", "to", payload.To, "error", err.Error())
		return err
	}
	return nil
}

// HandlePushNotification retries storage failures only. A failed push is recorded as FAILED.
func (c *Consumer) HandlePushNotification(ctx context.Context, task *asynq.Task) error {
	var payload PushNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		slog.Warn("invalid push task payload", "error", err.Error())
		return asynq.SkipRetry
	}
	if err := c.notifications.Deliver(ctx, payload.NotificationID); err != nil {
		slog.Warn("push task failed", "notification_id", payload.NotificationID, "error", err.Error())
		if errs.Is(err, errs.ErrNotFound) {
			return asynq.SkipRetry
		}
		return err
	}
	return nil
}
