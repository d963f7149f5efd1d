package request

import (
	"cuponera-backend/internal/domain/catalog"
	"cuponera-backend/internal/usecase/commands"
	"cuponera-backend/internal/usecase/queries"
)

type GeoRequest struct {
	Lat float64 `json:"lat" binding:"min=-90,max=90"`
	Lng float64 `json:"lng" binding:"min=-180,max=180"`
}

func (g *GeoRequest) toDomain() *catalog.Geo {
	if g == nil {
		return nil
	}
	return &catalog.Geo{Lat: g.Lat, Lng: g.Lng}
}

type CreateCityRequest struct {
	Name                   string      `json:"name" binding:"required,max=120"`
	Geo                    *GeoRequest `json:"geo"`
	VisibleForRegistration *bool       `json:"visible_for_registration"`
}

// ToInput defaults visibility to true when the field is omitted.
func (r *CreateCityRequest) ToInput() commands.CreateCityInput {
	visible := true
	if r.VisibleForRegistration != nil {
		visible = *r.VisibleForRegistration
	}
	return commands.CreateCityInput{Name: r.Name, Geo: r.Geo.toDomain(), VisibleForRegistration: visible}
}

// UpdateCityRequest drops the stored coordinates when ClearGeo is set.
type UpdateCityRequest struct {
	Name                   *string     `json:"name" binding:"omitempty,max=120"`
	Active                 *bool       `json:"active"`
	VisibleForRegistration *bool       `json:"visible_for_registration"`
	Geo                    *GeoRequest `json:"geo"`
	ClearGeo               bool        `json:"clear_geo"`
}

func (r *UpdateCityRequest) ToPatch() catalog.CityPatch {
	return catalog.CityPatch{
		Name:                   r.Name,
		Active:                 r.Active,
		VisibleForRegistration: r.VisibleForRegistration,
		Geo:                    r.Geo.toDomain(),
		ClearGeo:               r.ClearGeo,
	}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Description string `json:"description" binding:"max=500"`
	Icon        string `json:"icon" binding:"max=200"`
}

func (r *CreateCategoryRequest) ToInput() commands.CreateCategoryInput {
	return commands.CreateCategoryInput{Name: r.Name, Description: r.Description, Icon: r.Icon}
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=120"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Icon        *string `json:"icon" binding:"omitempty,max=200"`
	Active      *bool   `json:"active"`
}

func (r *UpdateCategoryRequest) ToPatch() catalog.CategoryPatch {
	return catalog.CategoryPatch{Name: r.Name, Description: r.Description, Icon: r.Icon, Active: r.Active}
}

type CatalogListQuery struct {
	Q      string `form:"q" binding:"max=120"`
	Active *bool  `form:"active"`
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q *CatalogListQuery) ToFilter() queries.CatalogFilter {
	return queries.CatalogFilter{Query: q.Q, Active: q.Active, Page: q.Page, Limit: q.Limit}
}
