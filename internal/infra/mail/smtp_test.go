//go:build unit

package mail

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"cuponera-backend/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPSender_Send(t *testing.T) {
	cfg := config.MailConfig{Host: "smtp.local", Port: 2525, User: "u", Password: "p", From: "no-reply@cuponera.ec"}

	t.Run("builds the message for the configured server", func(t *testing.T) {
		s := NewSMTPSender(cfg)
		var gotAddr string
		var gotMsg []byte
		s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotMsg = addr, msg
			assert.Equal(t, "no-reply@cuponera.ec", from)
			assert.Equal(t, []string{"ana@mail.ec"}, to)
			return nil
		}

		require.NoError(t, s.Send(context.Background(), "ana@mail.ec", "Hola", "<p>hi</p>"))
		assert.Equal(t, "smtp.local:2525", gotAddr)
		assert.Contains(t, string(gotMsg), "Subject: Hola\r\n")
		assert.Contains(t, string(gotMsg), "Content-Type: text/html; charset=UTF-8\r\n\r\n<p>hi</p>")
	})

	t.Run("without host nothing is sent", func(t *testing.T) {
		s := NewSMTPSender(config.MailConfig{})
		s.send = func(string, smtp.Auth, string, []string, []byte) error {
			t.Fatal("send must not be called")
			return nil
		}
		assert.NoError(t, s.Send(context.Background(), "ana@mail.ec", "Hola", "x"))
	})

	t.Run("wraps transport errors", func(t *testing.T) {
		s := NewSMTPSender(cfg)
		boom := errors.New("connection refused")
		s.send = func(string, smtp.Auth, string, []string, []byte) error { return boom }
		assert.ErrorIs(t, s.Send(context.Background(), "ana@mail.ec", "Hola", "x"), boom)
	})
}
