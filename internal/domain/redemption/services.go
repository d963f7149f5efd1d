package redemption

import (
	"time"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/batch"
	"cuponera-backend/internal/domain/coupon"

	"github.com/google/uuid"
)

// CheckCityOverlap requires both sets to be non-empty and to share at least one city.
func CheckCityOverlap(actorCities, batchCities []uuid.UUID) error {
	if len(actorCities) == 0 || len(batchCities) == 0 {
		return ErrNoCities
	}
	allowed := make(map[uuid.UUID]struct{}, len(batchCities))
	for _, id := range batchCities {
		allowed[id] = struct{}{}
	}
	for _, id := range actorCities {
		if _, ok := allowed[id]; ok {
			return nil
		}
	}
	return ErrCityMismatch
}

func CheckCeiling(scanCount, ceiling int) error {
	if scanCount >= ceiling {
		return ErrCeilingReached
	}
	return nil
}

// Eligibility is everything a scan decision depends on, already loaded.
type Eligibility struct {
	Group           actor.Group
	AlreadyRedeemed bool
	Coupon          *coupon.Coupon
	Batch           *batch.Batch
}

// Check runs the scan rules in order: duplicate, lifecycle, city overlap, ceiling.
func (e Eligibility) Check(now time.Time) error {
	if e.AlreadyRedeemed {
		return ErrAlreadyRedeemed
	}
	if err := e.Coupon.CheckRedeemable(now); err != nil {
		return err
	}
	if err := CheckCityOverlap(e.Group.Root.CityIDs(), e.Batch.CityIDs()); err != nil {
		return err
	}
	return CheckCeiling(e.Coupon.ScanCount(), e.Batch.RedemptionCeiling())
}
