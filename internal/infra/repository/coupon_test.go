//go:build e2e

package repository_test

import (
	"context"
	"testing"
	"time"

	"cuponera-backend/internal/infra/repository"
	"cuponera-backend/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// IncrementScanWithinCeiling Tests
// =============================================================================

func TestCouponRepository_IncrementScanWithinCeiling(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.Postgres(t)
	repo := repository.NewCouponRepository()

	quito := dbtest.CityID(t, pool, "Quito")
	batchID := dbtest.CreateBatch(t, pool, "Verano", 2, quito)
	couponID := dbtest.CreateCoupon(t, pool, batchID, 1)
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		wantOK    bool
		wantCount int
	}{
		{name: "first scan is below the ceiling", wantOK: true, wantCount: 1},
		{name: "second scan reaches the ceiling", wantOK: true, wantCount: 2},
		{name: "ceiling reached, nothing changes", wantOK: false, wantCount: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := repo.IncrementScanWithinCeiling(ctx, pool, couponID, 2, now)
			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantCount, dbtest.ScanCount(t, pool, couponID))
		})
	}

	t.Run("unknown coupon reports no increment", func(t *testing.T) {
		ok, err := repo.IncrementScanWithinCeiling(ctx, pool, uuid.New(), 2, now)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
