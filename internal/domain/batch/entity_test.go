//go:build unit

package batch_test

import (
	"testing"
	"time"

	"cuponera-backend/internal/domain/batch"
	"cuponera-backend/internal/pkg/errs"
	"cuponera-backend/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

func TestNewBatch(t *testing.T) {
	city := uuid.New()

	testCases := []struct {
		name    string
		bName   string
		ceiling int
		errIs   error
	}{
		{name: "valid", bName: "Cuponera 2025", ceiling: 1},
		{name: "blank name NG", bName: "   ", ceiling: 1, errIs: batch.ErrBlankName},
		{name: "zero ceiling NG", bName: "X", ceiling: 0, errIs: batch.ErrInvalidCeiling},
		{name: "negative ceiling NG", bName: "X", ceiling: -2, errIs: batch.ErrInvalidCeiling},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := batch.NewBatch(tc.bName, true, tc.ceiling, []uuid.UUID{city, city}, " promo ", now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{city}, b.CityIDs())
			assert.Equal(t, "promo", b.Description())
		})
	}
}

func TestApply(t *testing.T) {
	b, err := batch.NewBatch("Original", true, 2, nil, "", now)
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		require.NoError(t, b.Apply(batch.Patch{Active: ptr.To(false)}, now))
		assert.Equal(t, "Original", b.Name())
		assert.False(t, b.Active())
		assert.Equal(t, 2, b.RedemptionCeiling())
	})

	t.Run("invalid patch leaves batch untouched", func(t *testing.T) {
		err := b.Apply(batch.Patch{Name: ptr.To("Renamed"), RedemptionCeiling: ptr.To(0)}, now)
		assert.ErrorIs(t, err, batch.ErrInvalidCeiling)
		assert.Equal(t, "Original", b.Name())
		assert.Equal(t, 2, b.RedemptionCeiling())
	})

	t.Run("empty city list clears cities", func(t *testing.T) {
		require.NoError(t, b.Apply(batch.Patch{CityIDs: []uuid.UUID{uuid.New()}}, now))
		require.Len(t, b.CityIDs(), 1)
		require.NoError(t, b.Apply(batch.Patch{CityIDs: []uuid.UUID{}}, now))
		assert.Empty(t, b.CityIDs())
	})
}
