//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"
	"time"

	"cuponera-backend/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalFromNumeric(t *testing.T) {
	cases := []struct {
		name string
		in   pgtype.Numeric
		want string
	}{
		{"null is zero", pgtype.Numeric{}, "0"},
		{"nan is zero", pgtype.Numeric{NaN: true, Valid: true}, "0"},
		{"two decimals", pgtype.Numeric{Int: big.NewInt(467), Exp: -2, Valid: true}, "4.67"},
		{"integer", pgtype.Numeric{Int: big.NewInt(5), Exp: 0, Valid: true}, "5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pgconv.DecimalFromNumeric(tc.in).String())
		})
	}
}

func TestNullableRoundTrip(t *testing.T) {
	id := uuid.New()
	got := pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id))
	require.NotNil(t, got)
	assert.Equal(t, id, *got)
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))

	now := time.Now()
	ts := pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&now))
	require.NotNil(t, ts)
	assert.True(t, now.Equal(*ts))
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))

	assert.NotNil(t, pgconv.UUIDArray(nil))
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
}
