package readstore

import (
	"context"

	"cuponera-backend/internal/infra/db"
	"cuponera-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientReadStore struct {
	db db.DBTX
}

func NewClientReadStore(db db.DBTX) *ClientReadStore {
	return &ClientReadStore{db: db}
}

func (r *ClientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClientView, error) {
	var v queries.ClientView
	err := r.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, identification_type, identification, email, phone, address, active, created_at
		FROM clients WHERE id = $1`, id).
		Scan(&v.ID, &v.FirstName, &v.LastName, &v.IdentificationType, &v.Identification, &v.Email,
			&v.Phone, &v.Address, &v.Active, &v.CreatedAt)
	if err != nil {
		return nil, wrapFind("client", err)
	}
	return &v, nil
}

func (r *ClientReadStore) CountFavorites(ctx context.Context, clientID uuid.UUID) (int, error) {
	return count(ctx, r.db, "failed to count favorites", `SELECT count(*) FROM favorites WHERE client_id = $1`, clientID)
}

func (r *ClientReadStore) CountCoupons(ctx context.Context, clientID uuid.UUID) (int, error) {
	return count(ctx, r.db, "failed to count client coupons", `SELECT count(*) FROM coupons WHERE client_id = $1`, clientID)
}

func (r *ClientReadStore) CountScans(ctx context.Context, clientID uuid.UUID) (int, error) {
	return count(ctx, r.db, "failed to count client scans", `
		SELECT count(*)
		FROM redemptions rd JOIN coupons c ON c.id = rd.coupon_id
		WHERE c.client_id = $1`, clientID)
}

func (r *ClientReadStore) CityNames(ctx context.Context, clientID uuid.UUID) ([]string, error) {
	return collect(ctx, r.db, "failed to list client cities", scanString, `
		SELECT DISTINCT ci.name
		FROM coupons c
		JOIN batches b ON b.id = c.batch_id
		JOIN cities ci ON ci.id = ANY(b.city_ids)
		WHERE c.client_id = $1
		ORDER BY ci.name`, clientID)
}

// TopCategories counts one hit per redemption and category, ties broken by name.
func (r *ClientReadStore) TopCategories(ctx context.Context, clientID uuid.UUID, limit int) ([]string, error) {
	return collect(ctx, r.db, "failed to rank client categories", scanString, `
		SELECT cat.name
		FROM redemptions rd
		JOIN coupons c ON c.id = rd.coupon_id
		JOIN actors a ON a.id = rd.actor_id
		JOIN categories cat ON cat.id = ANY(a.category_ids)
		WHERE c.client_id = $1
		GROUP BY cat.name
		ORDER BY count(*) DESC, cat.name
		LIMIT $2`, clientID, limit)
}

func scanString(row rowScanner) (string, error) {
	var s string
	err := row.Scan(&s)
	return s, err
}
