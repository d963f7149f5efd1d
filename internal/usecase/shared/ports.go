package shared

import (
	"context"

	"cuponera-backend/internal/domain/notification"

	"github.com/google/uuid"
)

// Mailer is fire-and-forget: implementations log delivery problems instead of returning them.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string)
}

// PushDispatcher schedules delivery of a stored notification.
type PushDispatcher interface {
	Dispatch(ctx context.Context, notificationID uuid.UUID) error
}

// PushGateway is the outbound push provider.
type PushGateway interface {
	Push(ctx context.Context, n *notification.Notification) error
}

// CouponDetailCache memoizes the serialized coupon detail view.
type CouponDetailCache interface {
	GetOrLoad(ctx context.Context, couponID uuid.UUID, load func(ctx context.Context) ([]byte, error)) ([]byte, error)
	Invalidate(ctx context.Context, couponID uuid.UUID) error
}

// ScanObserver receives redemption outcomes for metrics.
type ScanObserver interface {
	ScanRegistered()
	ScanRejected(kind string)
}
