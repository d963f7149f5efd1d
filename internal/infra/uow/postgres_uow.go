package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/infra/readstore"
	"cuponera-backend/internal/infra/repository"
	"cuponera-backend/internal/pkg/errs"
	"cuponera-backend/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool  *pgxpool.Pool
	repos repositories
}

// Repositories are stateless, so one set is shared by every transaction.
type repositories struct {
	coupons       *repository.CouponRepository
	batches       *repository.BatchRepository
	redemptions   *repository.RedemptionRepository
	actors        *repository.ActorRepository
	clients       *repository.ClientRepository
	comments      *repository.CommentRepository
	ratings       *repository.RatingRepository
	favorites     *repository.FavoriteRepository
	shares        *repository.ShareRepository
	notifications *repository.NotificationRepository
	catalog       *repository.CatalogRepository
	otps          *repository.OTPRepository
	requests      *repository.BusinessRequestRepository
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		repos: repositories{
			coupons:       repository.NewCouponRepository(),
			batches:       repository.NewBatchRepository(),
			redemptions:   repository.NewRedemptionRepository(),
			actors:        repository.NewActorRepository(),
			clients:       repository.NewClientRepository(),
			comments:      repository.NewCommentRepository(),
			ratings:       repository.NewRatingRepository(),
			favorites:     repository.NewFavoriteRepository(),
			shares:        repository.NewShareRepository(),
			notifications: repository.NewNotificationRepository(),
			catalog:       repository.NewCatalogRepository(),
			otps:          repository.NewOTPRepository(),
			requests:      repository.NewBusinessRequestRepository(),
		},
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, func(ctx context.Context, q db.DBTX) error {
		return fn(ctx, readstore.NewCommandReadStore(q))
	})
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return readstore.NewCommandReadStore(u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx:  pgxTx,
			repos: &u.repos,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, q db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx  db.DBTX
	repos *repositories

	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Coupons() shared.CouponRepository                   { return t.repos.coupons }
func (t *pgTx) Batches() shared.BatchRepository                    { return t.repos.batches }
func (t *pgTx) Redemptions() shared.RedemptionRepository           { return t.repos.redemptions }
func (t *pgTx) Actors() shared.ActorRepository                     { return t.repos.actors }
func (t *pgTx) Clients() shared.ClientRepository                   { return t.repos.clients }
func (t *pgTx) Comments() shared.CommentRepository                 { return t.repos.comments }
func (t *pgTx) Ratings() shared.RatingRepository                   { return t.repos.ratings }
func (t *pgTx) Favorites() shared.FavoriteRepository               { return t.repos.favorites }
func (t *pgTx) Shares() shared.ShareRepository                     { return t.repos.shares }
func (t *pgTx) Notifications() shared.NotificationRepository       { return t.repos.notifications }
func (t *pgTx) Catalog() shared.CatalogRepository                  { return t.repos.catalog }
func (t *pgTx) OTPs() shared.OTPRepository                         { return t.repos.otps }
func (t *pgTx) BusinessRequests() shared.BusinessRequestRepository { return t.repos.requests }

// Lazy-initialized so reads share the transaction snapshot
func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = readstore.NewCommandReadStore(t.dbtx)
	}
	return t.commandReads
}
