package readstore

import (
	"context"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/batch"
	"cuponera-backend/internal/domain/client"
	"cuponera-backend/internal/domain/coupon"
	"cuponera-backend/internal/domain/notification"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/infra/repository"
	"cuponera-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// CommandReadStore loads write-side aggregates through whichever DBTX it is bound to,
// so reads made inside a transaction see that transaction's writes.
type CommandReadStore struct {
	db db.DBTX
}

func NewCommandReadStore(db db.DBTX) *CommandReadStore {
	return &CommandReadStore{db: db}
}

func (r *CommandReadStore) ActorByID(ctx context.Context, id uuid.UUID) (*actor.Actor, error) {
	a, err := repository.ScanActor(r.db.QueryRow(ctx, `SELECT `+repository.ActorColumns+` FROM actors WHERE id = $1`, id))
	if err != nil {
		return nil, wrapFind("actor", err)
	}
	return a, nil
}

func (r *CommandReadStore) ActorByEmail(ctx context.Context, email string) (*actor.Actor, error) {
	a, err := repository.ScanActor(r.db.QueryRow(ctx, `SELECT `+repository.ActorColumns+` FROM actors WHERE email = $1`, email))
	if err != nil {
		return nil, wrapFind("actor", err)
	}
	return a, nil
}

func (r *CommandReadStore) ActorDependentIDs(ctx context.Context, responsibleID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := queryIDs(ctx, r.db, `SELECT id FROM actors WHERE responsible_party_id = $1 ORDER BY created_at, id`, responsibleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dependent actors", err)
	}
	return ids, nil
}

func (r *CommandReadStore) BatchByID(ctx context.Context, id uuid.UUID) (*batch.Batch, error) {
	b, err := repository.ScanBatch(r.db.QueryRow(ctx, `SELECT `+repository.BatchColumns+` FROM batches WHERE id = $1`, id))
	if err != nil {
		return nil, wrapFind("batch", err)
	}
	return b, nil
}

func (r *CommandReadStore) CouponByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	c, err := repository.ScanCoupon(r.db.QueryRow(ctx, `SELECT `+repository.CouponColumns+` FROM coupons WHERE id = $1`, id))
	if err != nil {
		return nil, wrapFind("coupon", err)
	}
	return c, nil
}

func (r *CommandReadStore) ClientByID(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	c, err := repository.ScanClient(r.db.QueryRow(ctx, `SELECT `+repository.ClientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		return nil, wrapFind("client", err)
	}
	return c, nil
}

func (r *CommandReadStore) ClientByEmail(ctx context.Context, email string) (*client.Client, error) {
	c, err := repository.ScanClient(r.db.QueryRow(ctx, `SELECT `+repository.ClientColumns+` FROM clients WHERE email = $1`, email))
	if err != nil {
		return nil, wrapFind("client", err)
	}
	return c, nil
}

func (r *CommandReadStore) NotificationByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	n, err := repository.ScanNotification(r.db.QueryRow(ctx,
		`SELECT `+repository.NotificationColumns+` FROM notifications WHERE id = $1`, id))
	if err != nil {
		return nil, wrapFind("notification", err)
	}
	return n, nil
}

func (r *CommandReadStore) HasGroupRedemption(ctx context.Context, couponID uuid.UUID, members []uuid.UUID, rootID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM redemptions
			WHERE coupon_id = $1 AND (actor_id = ANY($2) OR group_id = $3)
		)`, couponID, pgconv.UUIDArray(members), rootID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check group redemption", err)
	}
	return exists, nil
}

func (r *CommandReadStore) ClientRedeemedWith(ctx context.Context, clientID, actorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM redemptions rd
			JOIN coupons c ON c.id = rd.coupon_id
			WHERE c.client_id = $1 AND (rd.actor_id = $2 OR rd.group_id = $2)
		)`, clientID, actorID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check client redemption", err)
	}
	return exists, nil
}

func wrapFind(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to load "+entity, err)
}

func queryIDs(ctx context.Context, q db.DBTX, sql string, args ...any) ([]uuid.UUID, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
