package repository

import (
	"context"
	"time"

	"cuponera-backend/internal/domain/otp"
	"cuponera-backend/internal/infra"
	"cuponera-backend/internal/infra/db"

	"github.com/google/uuid"
)

const OTPColumns = `id, email, code_hash, expires_at, used, used_at, active, created_at, updated_at`

type OTPRepository struct{}

func NewOTPRepository() *OTPRepository {
	return &OTPRepository{}
}

func (r *OTPRepository) Create(ctx context.Context, tx db.DBTX, o *otp.OTP) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO otps (id, email, code_hash, expires_at, used, used_at, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		o.ID(), o.Email(), o.CodeHash(), o.ExpiresAt(), o.Used(), o.UsedAt(), o.Active(), o.CreatedAt(), o.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create otp", err)
	}
	return nil
}

// DeactivateActive retires every active code for the email except keep.
func (r *OTPRepository) DeactivateActive(ctx context.Context, tx db.DBTX, email string, keep uuid.UUID, now time.Time) error {
	_, err := tx.Exec(ctx, `
		UPDATE otps SET active = false, updated_at = $3
		WHERE email = $1 AND active AND id <> $2`, email, keep, now)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate otps", err)
	}
	return nil
}

// LockLatestActive returns the newest active code for the email.
func (r *OTPRepository) LockLatestActive(ctx context.Context, tx db.DBTX, email string) (*otp.OTP, error) {
	o, err := ScanOTP(tx.QueryRow(ctx, `
		SELECT `+OTPColumns+` FROM otps
		WHERE email = $1 AND active
		ORDER BY created_at DESC, id
		LIMIT 1
		FOR UPDATE`, email))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock otp", err)
	}
	return o, nil
}

func (r *OTPRepository) Save(ctx context.Context, tx db.DBTX, o *otp.OTP) error {
	return execOne(ctx, tx, "otp not found", "failed to save otp", `
		UPDATE otps SET used = $2, used_at = $3, active = $4, updated_at = $5
		WHERE id = $1`,
		o.ID(), o.Used(), o.UsedAt(), o.Active(), o.UpdatedAt(),
	)
}

func ScanOTP(row rowScanner) (*otp.OTP, error) {
	var s otp.Snapshot
	if err := row.Scan(&s.ID, &s.Email, &s.CodeHash, &s.ExpiresAt, &s.Used, &s.UsedAt, &s.Active,
		&s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return otp.Reconstruct(s), nil
}
