//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"cuponera-backend/internal/domain/catalog"
	"cuponera-backend/internal/pkg/errs"
	"cuponera-backend/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

func TestNewCity(t *testing.T) {
	testCases := []struct {
		name  string
		cName string
		geo   *catalog.Geo
		errIs error
	}{
		{name: "valid without geo", cName: " Quito "},
		{name: "valid with geo", cName: "Quito", geo: &catalog.Geo{Lat: -0.18, Lng: -78.47}},
		{name: "blank name NG", cName: "  ", errIs: catalog.ErrBlankName},
		{name: "latitude out of range NG", cName: "X", geo: &catalog.Geo{Lat: 91}, errIs: catalog.ErrInvalidGeo},
		{name: "longitude out of range NG", cName: "X", geo: &catalog.Geo{Lng: -181}, errIs: catalog.ErrInvalidGeo},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := catalog.NewCity(tc.cName, tc.geo, true, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Quito", c.Name())
			assert.True(t, c.Active())
			assert.True(t, c.VisibleForRegistration())
		})
	}
}

func TestCity_Apply(t *testing.T) {
	c, err := catalog.NewCity("Quito", &catalog.Geo{Lat: -0.18, Lng: -78.47}, true, now)
	require.NoError(t, err)
	later := now.Add(time.Hour)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		require.NoError(t, c.Apply(catalog.CityPatch{VisibleForRegistration: ptr.To(false)}, later))
		assert.Equal(t, "Quito", c.Name())
		assert.False(t, c.VisibleForRegistration())
		assert.NotNil(t, c.Geo())
		assert.Equal(t, later, c.UpdatedAt())
	})

	t.Run("invalid patch leaves city untouched", func(t *testing.T) {
		err := c.Apply(catalog.CityPatch{Name: ptr.To("Quito DM"), Geo: &catalog.Geo{Lat: 100}}, later)
		assert.ErrorIs(t, err, catalog.ErrInvalidGeo)
		assert.Equal(t, "Quito", c.Name())
		assert.InDelta(t, -0.18, c.Geo().Lat, 1e-9)
	})

	t.Run("clear geo", func(t *testing.T) {
		require.NoError(t, c.Apply(catalog.CityPatch{ClearGeo: true, Geo: &catalog.Geo{Lat: 1, Lng: 1}}, later))
		assert.Nil(t, c.Geo())
	})
}

func TestCity_SetActive(t *testing.T) {
	c, err := catalog.NewCity("Cuenca", nil, true, now)
	require.NoError(t, err)

	c.SetActive(true, now.Add(time.Hour))
	assert.Equal(t, now, c.UpdatedAt(), "no-op keeps updated_at")

	c.SetActive(false, now.Add(time.Hour))
	assert.False(t, c.Active())
	assert.Equal(t, now.Add(time.Hour), c.UpdatedAt())
}

func TestCategory(t *testing.T) {
	_, err := catalog.NewCategory(" ", "", "", now)
	assert.ErrorIs(t, err, catalog.ErrBlankName)

	c, err := catalog.NewCategory(" Cafeterías ", " Café y postres ", "coffee", now)
	require.NoError(t, err)
	assert.Equal(t, "Cafeterías", c.Name())
	assert.Equal(t, "Café y postres", c.Description())
	assert.True(t, c.Active())

	err = c.Apply(catalog.CategoryPatch{Name: ptr.To(""), Icon: ptr.To("cup")}, now)
	assert.ErrorIs(t, err, catalog.ErrBlankName)
	assert.Equal(t, "coffee", c.Icon())

	require.NoError(t, c.Apply(catalog.CategoryPatch{Icon: ptr.To("cup"), Active: ptr.To(false)}, now))
	assert.Equal(t, "cup", c.Icon())
	assert.False(t, c.Active())
}
