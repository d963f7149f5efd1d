package commands

import (
	"context"
	"log/slog"

	"cuponera-backend/internal/domain/client"
	"cuponera-backend/internal/domain/notification"
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/usecase/shared"

	"github.com/google/uuid"
)

var notificationErrs = repoErrs{
	notFound: notification.ErrNotFound,
	byConstraint: map[string]error{
		"notifications_client_id_fkey": client.ErrNotFound,
	},
}

type SendNotificationInput struct {
	Title    string
	Body     string
	Image    string
	Link     string
	ClientID *uuid.UUID
}

type NotificationCommands interface {
	// Send stores the notification as QUEUED and schedules delivery. Scheduling failures leave it QUEUED.
	Send(ctx context.Context, in SendNotificationInput) (uuid.UUID, error)
	// Deliver pushes a stored notification and records SENT or FAILED. Only storage failures are returned.
	Deliver(ctx context.Context, notificationID uuid.UUID) error
}

type notificationCommandsImpl struct {
	uow        shared.UnitOfWork
	dispatcher shared.PushDispatcher
	gateway    shared.PushGateway
	clock      clock.Clock
}

func NewNotificationCommands(uow shared.UnitOfWork, dispatcher shared.PushDispatcher, gateway shared.PushGateway, clk clock.Clock) NotificationCommands {
	return &notificationCommandsImpl{uow: uow, dispatcher: dispatcher, gateway: gateway, clock: clk}
}

func (uc *notificationCommandsImpl) Send(ctx context.Context, in SendNotificationInput) (uuid.UUID, error) {
	n, err := notification.NewNotification(in.Title, in.Body, in.Image, in.Link, in.ClientID, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Notifications().Create(ctx, tx.DB(), n), notificationErrs)
	})
	if err != nil {
		return uuid.Nil, err
	}

	if err := uc.dispatcher.Dispatch(ctx, n.ID); err != nil {
		slog.Warn("failed to schedule push notification", "notification_id", n.ID, "error", err.Error())
	}
	return n.ID, nil
}

func (uc *notificationCommandsImpl) Deliver(ctx context.Context, notificationID uuid.UUID) error {
	n, err := uc.uow.CommandReads().NotificationByID(ctx, notificationID)
	if err != nil {
		return translate(err, notificationErrs)
	}
	if n.Status != notification.StatusQueued {
		slog.Info("notification already delivered", "notification_id", n.ID, "status", n.Status)
		return nil
	}

	status := notification.StatusSent
	if err := uc.gateway.Push(ctx, n); err != nil {
		slog.Warn("push delivery failed", "notification_id", n.ID, "error", err.Error())
		status = notification.StatusFailed
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Notifications().UpdateStatus(ctx, tx.DB(), n.ID, status), notificationErrs)
	})
}
