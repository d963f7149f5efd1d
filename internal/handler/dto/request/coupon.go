package request

import (
	"time"

	"cuponera-backend/internal/domain/coupon"
	"cuponera-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateCouponRequest struct {
	BatchID     uuid.UUID  `json:"batch_id" binding:"required"`
	Sequence    *int       `json:"sequence" binding:"omitempty,min=1"`
	ActivatedAt *time.Time `json:"activated_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

func (r *CreateCouponRequest) ToInput() commands.CreateCouponInput {
	return commands.CreateCouponInput{
		BatchID:  r.BatchID,
		Sequence: r.Sequence,
		Window:   coupon.Window{ActivatedAt: r.ActivatedAt, ExpiresAt: r.ExpiresAt},
	}
}

type GenerateCouponsRequest struct {
	BatchID     uuid.UUID  `json:"batch_id" binding:"required"`
	Count       int        `json:"count" binding:"required,min=1,max=5000"`
	ActivatedAt *time.Time `json:"activated_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type SequenceRequest struct {
	BatchID  uuid.UUID `json:"batch_id" binding:"required"`
	Sequence int       `json:"sequence" binding:"required,min=1"`
}

type AssignCouponRequest struct {
	ClientID uuid.UUID `json:"client_id" binding:"required"`
	Override bool      `json:"override"`
}

type ScanRequest struct {
	CouponID uuid.UUID `json:"coupon_id" binding:"required"`
}

type CuponerasQuery struct {
	OnlyActive bool `form:"only_active"`
}
