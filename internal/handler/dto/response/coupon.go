package response

import (
	"time"

	"cuponera-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type GenerateCouponsResponse struct {
	Created       int64 `json:"created"`
	FirstSequence int   `json:"first_sequence"`
	LastSequence  int   `json:"last_sequence"`
}

func FromGenerateBatch(r *commands.GenerateBatchResult) *GenerateCouponsResponse {
	return &GenerateCouponsResponse{
		Created:       r.Created,
		FirstSequence: r.FirstSequence,
		LastSequence:  r.LastSequence,
	}
}

type ScanResponse struct {
	RedemptionID uuid.UUID `json:"redemption_id"`
	CouponID     uuid.UUID `json:"coupon_id"`
	ActorID      uuid.UUID `json:"actor_id"`
	GroupID      uuid.UUID `json:"group_id"`
	ScannedAt    time.Time `json:"scanned_at"`
}

func FromScanResult(r *commands.ScanResult) *ScanResponse {
	return &ScanResponse{
		RedemptionID: r.RedemptionID,
		CouponID:     r.CouponID,
		ActorID:      r.ActorID,
		GroupID:      r.GroupID,
		ScannedAt:    r.ScannedAt,
	}
}

type ScanValidationResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type CountResponse struct {
	Count int `json:"count"`
}
