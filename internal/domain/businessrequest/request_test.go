//go:build unit

package businessrequest_test

import (
	"testing"
	"time"

	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/domain/businessrequest"
	"cuponera-backend/internal/pkg/errs"
	"cuponera-backend/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

func validInput() businessrequest.NewInput {
	return businessrequest.NewInput{
		Company: " Café Central ",
		RUC:     "1790011674001",
		Contact: "Lucía Andrade",
		Email:   "Ventas@CafeCentral.ec",
		City:    "Quito",
	}
}

func TestNew(t *testing.T) {
	t.Run("defaults and normalization", func(t *testing.T) {
		r, err := businessrequest.New(validInput(), now)
		require.NoError(t, err)
		assert.Equal(t, "Café Central", r.Company())
		assert.Equal(t, "ventas@cafecentral.ec", r.Email())
		assert.Equal(t, businessrequest.DefaultOrigin, r.Origin())
		assert.Equal(t, businessrequest.StatusPending, r.Status())
	})

	testCases := []struct {
		name   string
		mutate func(*businessrequest.NewInput)
		errIs  error
	}{
		{name: "blank company", mutate: func(in *businessrequest.NewInput) { in.Company = " " }, errIs: businessrequest.ErrBlankCompany},
		{name: "invalid ruc", mutate: func(in *businessrequest.NewInput) { in.RUC = "1790011674" }, errIs: businessrequest.ErrInvalidRUC},
		{name: "invalid email", mutate: func(in *businessrequest.NewInput) { in.Email = "ventas@" }, errIs: actor.ErrInvalidEmail},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			r, err := businessrequest.New(in, now)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tc.errIs)
			assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
		})
	}

	t.Run("ruc is optional", func(t *testing.T) {
		in := validInput()
		in.RUC = ""
		_, err := businessrequest.New(in, now)
		assert.NoError(t, err)
	})
}

func TestRequest_Apply(t *testing.T) {
	r, err := businessrequest.New(validInput(), now)
	require.NoError(t, err)
	later := now.Add(time.Hour)

	require.NoError(t, r.Apply(businessrequest.Patch{Status: ptr.To(businessrequest.StatusContacted), Phone: ptr.To(" 0991234567 ")}, later))
	assert.Equal(t, businessrequest.StatusContacted, r.Status())
	assert.Equal(t, "0991234567", r.Phone())
	assert.Equal(t, "ventas@cafecentral.ec", r.Email())
	assert.Equal(t, later, r.UpdatedAt())

	err = r.Apply(businessrequest.Patch{Status: ptr.To(businessrequest.Status("ARCHIVADO")), Company: ptr.To("Otro")}, later)
	assert.ErrorIs(t, err, businessrequest.ErrInvalidStatus)
	assert.Equal(t, "Café Central", r.Company(), "rejected patch leaves the request untouched")
}
