//go:build unit

package client_test

import (
	"testing"
	"time"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/client"
	"cuponera-backend/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() client.NewClientInput {
	return client.NewClientInput{
		FirstName:      " María ",
		LastName:       "Pérez",
		Identification: "1710034065",
		Email:          "Maria.Perez@Mail.COM",
		PasswordHash:   "hash",
	}
}

func TestNewClient(t *testing.T) {
	t.Run("normalizes fields", func(t *testing.T) {
		c, err := client.NewClient(validInput(), time.Now())
		require.NoError(t, err)
		assert.Equal(t, "maria.perez@mail.com", c.Email())
		assert.Equal(t, "María Pérez", c.FullName())
		assert.Equal(t, client.IdentificationCedula, c.IdentificationType())
		assert.True(t, c.IsActive())
	})

	testCases := []struct {
		name   string
		mutate func(*client.NewClientInput)
		errIs  error
	}{
		{name: "blank first name", mutate: func(in *client.NewClientInput) { in.FirstName = "" }, errIs: client.ErrBlankName},
		{name: "blank identification", mutate: func(in *client.NewClientInput) { in.Identification = " " }, errIs: client.ErrBlankIdentification},
		{name: "unknown identification type", mutate: func(in *client.NewClientInput) { in.IdentificationType = "DNI" }, errIs: client.ErrInvalidIdentificationType},
		{name: "cedula with wrong check digit", mutate: func(in *client.NewClientInput) { in.Identification = "1710034066" }, errIs: client.ErrInvalidCedula},
		{name: "cedula with bad province", mutate: func(in *client.NewClientInput) { in.Identification = "9910034065" }, errIs: client.ErrInvalidCedula},
		{name: "ruc without establishment suffix", mutate: func(in *client.NewClientInput) {
			in.IdentificationType = client.IdentificationRUC
			in.Identification = "1710034065000"
		}, errIs: client.ErrInvalidRUC},
		{name: "invalid email", mutate: func(in *client.NewClientInput) { in.Email = "maria@" }, errIs: actor.ErrInvalidEmail},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			c, err := client.NewClient(in, time.Now())
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestNewClient_IdentificationTypes(t *testing.T) {
	testCases := []struct {
		name   string
		typ    client.IdentificationType
		number string
	}{
		{name: "natural person ruc", typ: client.IdentificationRUC, number: "1710034065001"},
		{name: "company ruc", typ: client.IdentificationRUC, number: "1790011674001"},
		{name: "passport is free-form", typ: client.IdentificationPasaporte, number: "AB123456"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.IdentificationType, in.Identification = tc.typ, tc.number
			c, err := client.NewClient(in, time.Now())
			require.NoError(t, err)
			assert.Equal(t, tc.typ, c.IdentificationType())
			assert.Equal(t, tc.number, c.Identification())
		})
	}
}

func TestClient_ApplyUpdate(t *testing.T) {
	now := time.Now()

	t.Run("partial update", func(t *testing.T) {
		c, err := client.NewClient(validInput(), now)
		require.NoError(t, err)

		err = c.ApplyUpdate(client.Update{Email: ptr.To(" NEW@mail.com "), Phone: ptr.To("0999999999")}, now.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, "new@mail.com", c.Email())
		assert.Equal(t, "0999999999", c.Phone())
		assert.Equal(t, "María", c.FirstName())
		assert.Equal(t, now.Add(time.Minute), c.UpdatedAt())
	})

	t.Run("invalid update leaves client unchanged", func(t *testing.T) {
		c, err := client.NewClient(validInput(), now)
		require.NoError(t, err)

		err = c.ApplyUpdate(client.Update{FirstName: ptr.To("Ana"), Email: ptr.To("broken")}, now.Add(time.Minute))
		assert.ErrorIs(t, err, actor.ErrInvalidEmail)
		assert.Equal(t, "María", c.FirstName())
		assert.Equal(t, "maria.perez@mail.com", c.Email())
		assert.Equal(t, now, c.UpdatedAt())
	})
}
