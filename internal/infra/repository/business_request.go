package repository

import (
	"context"

	"cuponera-backend/internal/domain/businessrequest"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"

	"github.com/google/uuid"
)

const BusinessRequestColumns = `id, company, ruc, contact, email, phone, city, message, origin, status, created_at, updated_at`

type BusinessRequestRepository struct{}

func NewBusinessRequestRepository() *BusinessRequestRepository {
	return &BusinessRequestRepository{}
}

func (r *BusinessRequestRepository) Create(ctx context.Context, tx db.DBTX, b *businessrequest.Request) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO business_requests (id, company, ruc, contact, email, phone, city, message, origin, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID(), b.Company(), b.RUC(), b.Contact(), b.Email(), b.Phone(), b.City(), b.Message(), b.Origin(),
		b.Status().String(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create business request", err)
	}
	return nil
}

func (r *BusinessRequestRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*businessrequest.Request, error) {
	b, err := ScanBusinessRequest(tx.QueryRow(ctx, `SELECT `+BusinessRequestColumns+` FROM business_requests WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock business request", err)
	}
	return b, nil
}

func (r *BusinessRequestRepository) Update(ctx context.Context, tx db.DBTX, b *businessrequest.Request) error {
	return execOne(ctx, tx, "business request not found", "failed to update business request", `
		UPDATE business_requests
		SET company = $2, ruc = $3, contact = $4, phone = $5, city = $6, message = $7, status = $8, updated_at = $9
		WHERE id = $1`,
		b.ID(), b.Company(), b.RUC(), b.Contact(), b.Phone(), b.City(), b.Message(), b.Status().String(), b.UpdatedAt(),
	)
}

func (r *BusinessRequestRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	return execOne(ctx, tx, "business request not found", "failed to delete business request",
		`DELETE FROM business_requests WHERE id = $1`, id)
}

func ScanBusinessRequest(row rowScanner) (*businessrequest.Request, error) {
	var (
		s      businessrequest.Snapshot
		status string
	)
	if err := row.Scan(&s.ID, &s.Company, &s.RUC, &s.Contact, &s.Email, &s.Phone, &s.City, &s.Message,
		&s.Origin, &status, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Status = businessrequest.Status(status)
	return businessrequest.Reconstruct(s), nil
}
