package shared

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/batch"
	"cuponera-backend/internal/domain/businessrequest"
	"cuponera-backend/internal/domain/catalog"
	"cuponera-backend/internal/domain/client"
	"cuponera-backend/internal/domain/comment"
	"cuponera-backend/internal/domain/coupon"
	"cuponera-backend/internal/domain/notification"
	"cuponera-backend/internal/domain/otp"
	"cuponera-backend/internal/domain/redemption"
	"cuponera-backend/internal/domain/share"
	"cuponera-backend/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Coupons() CouponRepository
	Batches() BatchRepository
	Redemptions() RedemptionRepository
	Actors() ActorRepository
	Clients() ClientRepository
	Comments() CommentRepository
	Ratings() RatingRepository
	Favorites() FavoriteRepository
	Shares() ShareRepository
	Notifications() NotificationRepository
	Catalog() CatalogRepository
	OTPs() OTPRepository
	BusinessRequests() BusinessRequestRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads loads aggregates for the write side. Missing rows surface as infra NOT_FOUND.
type CommandReads interface {
	ActorByID(ctx context.Context, id uuid.UUID) (*actor.Actor, error)
	ActorByEmail(ctx context.Context, email string) (*actor.Actor, error)
	ActorDependentIDs(ctx context.Context, responsibleID uuid.UUID) ([]uuid.UUID, error)
	BatchByID(ctx context.Context, id uuid.UUID) (*batch.Batch, error)
	CouponByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	ClientByID(ctx context.Context, id uuid.UUID) (*client.Client, error)
	ClientByEmail(ctx context.Context, email string) (*client.Client, error)
	NotificationByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error)
	// HasGroupRedemption reports a record for the coupon by any member or keyed on the root.
	HasGroupRedemption(ctx context.Context, couponID uuid.UUID, members []uuid.UUID, rootID uuid.UUID) (bool, error)
	// ClientRedeemedWith reports whether one of the client's coupons was scanned by the actor or its group.
	ClientRedeemedWith(ctx context.Context, clientID, actorID uuid.UUID) (bool, error)
}

type CouponRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error
	CopyBatch(ctx context.Context, tx db.DBTX, cs []*coupon.Coupon) (int64, error)
	CountByBatch(ctx context.Context, tx db.DBTX, batchID uuid.UUID) (int, error)
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*coupon.Coupon, error)
	LockBySequence(ctx context.Context, tx db.DBTX, batchID uuid.UUID, sequence int) (*coupon.Coupon, error)
	Save(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error
	IncrementScan(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) error
	// IncrementScanWithinCeiling returns false when the counter already reached ceiling.
	IncrementScanWithinCeiling(ctx context.Context, tx db.DBTX, id uuid.UUID, ceiling int, now time.Time) (bool, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type BatchRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *batch.Batch) error
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*batch.Batch, error)
	Update(ctx context.Context, tx db.DBTX, b *batch.Batch) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type RedemptionRepository interface {
	Insert(ctx context.Context, tx db.DBTX, r *redemption.Record) error
}

type ActorRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *actor.Actor) error
	UpdatePromotion(ctx context.Context, tx db.DBTX, a *actor.Actor) error
}

type ClientRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *client.Client) error
	Update(ctx context.Context, tx db.DBTX, c *client.Client) error
}

type CommentRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *comment.Comment) error
	Update(ctx context.Context, tx db.DBTX, c *comment.Comment) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*comment.Comment, error)
	LockByPair(ctx context.Context, tx db.DBTX, actorID, clientID uuid.UUID) (*comment.Comment, error)
}

// RatingRepository is the only writer of the actor rating aggregate.
type RatingRepository interface {
	Apply(ctx context.Context, tx db.DBTX, actorID uuid.UUID, d comment.Delta) (actor.Rating, error)
}

type FavoriteRepository interface {
	// Add returns false when the pair already existed.
	Add(ctx context.Context, tx db.DBTX, clientID, actorID uuid.UUID) (bool, error)
	Remove(ctx context.Context, tx db.DBTX, clientID, actorID uuid.UUID) (bool, error)
}

type ShareRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *share.Share) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status notification.Status) error
}

type CatalogRepository interface {
	CreateCity(ctx context.Context, tx db.DBTX, c *catalog.City) error
	LockCity(ctx context.Context, tx db.DBTX, id uuid.UUID) (*catalog.City, error)
	UpdateCity(ctx context.Context, tx db.DBTX, c *catalog.City) error
	DeleteCity(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// CityReferenced reports batches or actors that list the city.
	CityReferenced(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error)
	CreateCategory(ctx context.Context, tx db.DBTX, c *catalog.Category) error
	LockCategory(ctx context.Context, tx db.DBTX, id uuid.UUID) (*catalog.Category, error)
	UpdateCategory(ctx context.Context, tx db.DBTX, c *catalog.Category) error
	DeleteCategory(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	CategoryReferenced(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error)
}

type OTPRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *otp.OTP) error
	// DeactivateActive retires every active code for the email except keep.
	DeactivateActive(ctx context.Context, tx db.DBTX, email string, keep uuid.UUID, now time.Time) error
	LockLatestActive(ctx context.Context, tx db.DBTX, email string) (*otp.OTP, error)
	Save(ctx context.Context, tx db.DBTX, o *otp.OTP) error
}

type BusinessRequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *businessrequest.Request) error
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*businessrequest.Request, error)
	Update(ctx context.Context, tx db.DBTX, r *businessrequest.Request) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}
