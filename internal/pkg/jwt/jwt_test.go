//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(now)
	svc := jwt.NewService("secret", time.Hour, clk)
	id := uuid.New()

	t.Run("round trip keeps claims", func(t *testing.T) {
		token, err := svc.GenerateToken(id, "LOCAL", jwt.KindActor)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, id, claims.UserID)
		assert.Equal(t, "LOCAL", claims.Role)
		assert.Equal(t, jwt.KindActor, claims.Kind)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(id, "", jwt.KindClient)
		require.NoError(t, err)

		later := jwt.NewService("secret", time.Hour, clock.NewMockClock(now.Add(2*time.Hour)))
		_, err = later.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := svc.GenerateToken(id, "ADMIN", jwt.KindActor)
		require.NoError(t, err)

		other := jwt.NewService("other", time.Hour, clk)
		_, err = other.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("unknown kind", func(t *testing.T) {
		token, err := svc.GenerateToken(id, "ADMIN", "robot")
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
