//go:build unit

package commands_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"cuponera-backend/internal/domain/otp"
	"cuponera-backend/internal/pkg/clock"
	"cuponera-backend/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inbox keeps every mail sent during a test.
type inbox struct{ mails []sentMail }

type sentMail struct{ to, subject, html string }

func (b *inbox) Send(_ context.Context, to, subject, html string) {
	b.mails = append(b.mails, sentMail{to: to, subject: subject, html: html})
}

var codePattern = regexp.MustCompile(`<b>(\d{5})</b>`)

func (b *inbox) lastCode(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, b.mails)
	m := codePattern.FindStringSubmatch(b.mails[len(b.mails)-1].html)
	require.Len(t, m, 2, "mail carries no code")
	return m[1]
}

type otpFixture struct {
	ctx   context.Context
	store *memStore
	clk   *clock.MockClock
	inbox *inbox
	uc    commands.OTPCommands
}

func newOTPFixture(t *testing.T) *otpFixture {
	t.Helper()
	store := newMemStore()
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC))
	box := &inbox{}
	return &otpFixture{
		ctx:   context.Background(),
		store: store,
		clk:   clk,
		inbox: box,
		uc:    commands.NewOTPCommands(store, clk, box),
	}
}

func TestOTPCommands_GenerateAndVerify(t *testing.T) {
	f := newOTPFixture(t)

	require.NoError(t, f.uc.Generate(f.ctx, " Ana@Correo.ec "))
	require.Len(t, f.inbox.mails, 1)
	assert.Equal(t, "ana@correo.ec", f.inbox.mails[0].to)
	code := f.inbox.lastCode(t)
	require.Len(t, f.store.otps, 1)
	assert.NotEqual(t, code, f.store.otps[0].CodeHash(), "only the hash is stored")

	require.NoError(t, f.uc.Verify(f.ctx, "ana@correo.ec", code))
	stored := f.store.otps[0]
	assert.True(t, stored.Used())
	assert.False(t, stored.Active())

	// a consumed code cannot be replayed
	assert.ErrorIs(t, f.uc.Verify(f.ctx, "ana@correo.ec", code), otp.ErrNotFound)
}

func TestOTPCommands_NewCodeRetiresPrevious(t *testing.T) {
	f := newOTPFixture(t)

	require.NoError(t, f.uc.Generate(f.ctx, "ana@correo.ec"))
	first := f.inbox.lastCode(t)
	f.clk.Add(time.Second)
	require.NoError(t, f.uc.Generate(f.ctx, "ana@correo.ec"))
	second := f.inbox.lastCode(t)

	require.Len(t, f.store.otps, 2)
	assert.False(t, f.store.otps[0].Active())
	assert.True(t, f.store.otps[1].Active())

	if first != second {
		assert.ErrorIs(t, f.uc.Verify(f.ctx, "ana@correo.ec", first), otp.ErrMismatch)
	}
	require.NoError(t, f.uc.Verify(f.ctx, "ana@correo.ec", second))
}

func TestOTPCommands_VerifyFailures(t *testing.T) {
	t.Run("wrong code keeps the code usable", func(t *testing.T) {
		f := newOTPFixture(t)
		require.NoError(t, f.uc.Generate(f.ctx, "ana@correo.ec"))
		code := f.inbox.lastCode(t)

		wrong := "00000"
		if code == wrong {
			wrong = "00001"
		}
		assert.ErrorIs(t, f.uc.Verify(f.ctx, "ana@correo.ec", wrong), otp.ErrMismatch)
		assert.True(t, f.store.otps[0].Active())
		require.NoError(t, f.uc.Verify(f.ctx, "ana@correo.ec", code))
	})

	t.Run("expired code is retired", func(t *testing.T) {
		f := newOTPFixture(t)
		require.NoError(t, f.uc.Generate(f.ctx, "ana@correo.ec"))
		code := f.inbox.lastCode(t)

		f.clk.Add(otp.TTL + time.Second)
		assert.ErrorIs(t, f.uc.Verify(f.ctx, "ana@correo.ec", code), otp.ErrExpired)
		assert.False(t, f.store.otps[0].Active(), "deactivation is committed")
		assert.ErrorIs(t, f.uc.Verify(f.ctx, "ana@correo.ec", code), otp.ErrNotFound)
	})

	t.Run("no code for the email", func(t *testing.T) {
		f := newOTPFixture(t)
		assert.ErrorIs(t, f.uc.Verify(f.ctx, "nadie@correo.ec", "12345"), otp.ErrNotFound)
	})

	t.Run("malformed email on generate", func(t *testing.T) {
		f := newOTPFixture(t)
		assert.Error(t, f.uc.Generate(f.ctx, "no-es-correo"))
		assert.Empty(t, f.inbox.mails)
		assert.Empty(t, f.store.otps)
	})
}
