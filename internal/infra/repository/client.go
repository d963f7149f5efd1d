package repository

import (
	"context"

	"cuponera-backend/internal/domain/client"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"
)

const ClientColumns = `id, first_name, last_name, identification_type, identification, email, password_hash,
	phone, address, active, created_at, updated_at`

type ClientRepository struct{}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

func (r *ClientRepository) Create(ctx context.Context, tx db.DBTX, c *client.Client) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO clients (id, first_name, last_name, identification_type, identification, email, password_hash,
			phone, address, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		c.ID(), c.FirstName(), c.LastName(), string(c.IdentificationType()), c.Identification(), c.Email(),
		c.PasswordHash(), c.Phone(), c.Address(), c.IsActive(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create client", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, tx db.DBTX, c *client.Client) error {
	return execOne(ctx, tx, "client not found", "failed to update client", `
		UPDATE clients
		SET first_name = $2, last_name = $3, email = $4, phone = $5, address = $6, updated_at = $7
		WHERE id = $1`,
		c.ID(), c.FirstName(), c.LastName(), c.Email(), c.Phone(), c.Address(), c.UpdatedAt(),
	)
}

func ScanClient(row rowScanner) (*client.Client, error) {
	var (
		s         client.Snapshot
		identType string
	)
	if err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &identType, &s.Identification, &s.Email, &s.PasswordHash,
		&s.Phone, &s.Address, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.IdentificationType = client.IdentificationType(identType)
	return client.Reconstruct(s), nil
}
