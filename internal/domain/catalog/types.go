// Package catalog holds the reference data actors and batches point at: cities and categories.
package catalog

import "cuponera-backend/internal/pkg/errs"

var (
	ErrCityNotFound          = errs.Kind(errs.ErrNotFound, "city not found")
	ErrCategoryNotFound      = errs.Kind(errs.ErrNotFound, "category not found")
	ErrBlankName             = errs.Kind(errs.ErrInvalidArgument, "name is required")
	ErrInvalidGeo            = errs.Kind(errs.ErrInvalidArgument, "latitude must be within [-90, 90] and longitude within [-180, 180]")
	ErrDuplicateCityName     = errs.Kind(errs.ErrConflict, "a city with this name already exists")
	ErrDuplicateCategoryName = errs.Kind(errs.ErrConflict, "a category with this name already exists")
	ErrCityInUse             = errs.Kind(errs.ErrConflict, "city is still referenced by batches or actors")
	ErrCategoryInUse         = errs.Kind(errs.ErrConflict, "category is still referenced by actors")
)

type Geo struct {
	Lat float64
	Lng float64
}

func (g Geo) validate() error {
	if g.Lat < -90 || g.Lat > 90 || g.Lng < -180 || g.Lng > 180 {
		return ErrInvalidGeo
	}
	return nil
}
