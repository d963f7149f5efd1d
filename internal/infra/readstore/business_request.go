package readstore

import (
	"context"

	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type BusinessRequestReadStore struct {
	db db.DBTX
}

func NewBusinessRequestReadStore(db db.DBTX) *BusinessRequestReadStore {
	return &BusinessRequestReadStore{db: db}
}

const businessRequestViewSelect = `
	SELECT id, company, ruc, contact, email, phone, city, message, origin, status, created_at, updated_at
	FROM business_requests`

func (r *BusinessRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BusinessRequestView, error) {
	v, err := scanBusinessRequestView(r.db.QueryRow(ctx, businessRequestViewSelect+` WHERE id = $1`, id))
	if err != nil {
		return nil, wrapFind("business request", err)
	}
	return v, nil
}

func (r *BusinessRequestReadStore) EmailTaken(ctx context.Context, email string) (bool, error) {
	var taken bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM business_requests WHERE email = $1)`, email).Scan(&taken)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check business request email", err)
	}
	return taken, nil
}

func (r *BusinessRequestReadStore) List(ctx context.Context, status string, after *queries.RequestPageKey, limit int32) ([]*queries.BusinessRequestView, error) {
	if after == nil {
		return collect(ctx, r.db, "failed to list business requests", scanBusinessRequestView, businessRequestViewSelect+`
			WHERE ($1 = '' OR status = $1)
			ORDER BY created_at DESC, id DESC
			LIMIT $2`, status, limit)
	}
	return collect(ctx, r.db, "failed to list business requests", scanBusinessRequestView, businessRequestViewSelect+`
		WHERE ($1 = '' OR status = $1) AND (created_at, id) < ($2, $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4`, status, after.CreatedAt, after.ID, limit)
}

func scanBusinessRequestView(row rowScanner) (*queries.BusinessRequestView, error) {
	var v queries.BusinessRequestView
	if err := row.Scan(&v.ID, &v.Company, &v.RUC, &v.Contact, &v.Email, &v.Phone, &v.City, &v.Message,
		&v.Origin, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
