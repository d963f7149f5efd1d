//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/pkg/config"
	"cuponera-backend/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) ActorToken(t *testing.T, actorID uuid.UUID, role string) string {
	t.Helper()
	return h.generate(t, clock.NewRealClock(), actorID, role, jwt.KindActor)
}

func (h *JWTHelper) ClientToken(t *testing.T, clientID uuid.UUID) string {
	t.Helper()
	return h.generate(t, clock.NewRealClock(), clientID, "", jwt.KindClient)
}

// CreateExpiredToken signs a token that expired an hour ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, actorID uuid.UUID, role string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	past := clock.NewMockClock(time.Now().Add(-duration - time.Hour))
	return h.generate(t, past, actorID, role, jwt.KindActor)
}

func (h *JWTHelper) generate(t *testing.T, clk clock.Clock, id uuid.UUID, role, kind string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration, clk).GenerateToken(id, role, kind)
	require.NoError(t, err)
	return token
}
