package request

import (
	"cuponera-backend/internal/domain/batch"
	"cuponera-backend/internal/pkg/ptr"
	"cuponera-backend/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBatchRequest struct {
	Name              string      `json:"name" binding:"required,max=120"`
	Active            *bool       `json:"active"`
	RedemptionCeiling int         `json:"redemption_ceiling" binding:"required,min=1"`
	CityIDs           []uuid.UUID `json:"city_ids"`
	Description       string      `json:"description" binding:"max=2000"`
}

// ToInput defaults Active to true.
func (r *CreateBatchRequest) ToInput() commands.CreateBatchInput {
	return commands.CreateBatchInput{
		Name:              r.Name,
		Active:            r.Active == nil || ptr.Deref(r.Active),
		RedemptionCeiling: r.RedemptionCeiling,
		CityIDs:           r.CityIDs,
		Description:       r.Description,
	}
}

type UpdateBatchRequest struct {
	Name              *string     `json:"name" binding:"omitempty,max=120"`
	Active            *bool       `json:"active"`
	RedemptionCeiling *int        `json:"redemption_ceiling" binding:"omitempty,min=1"`
	CityIDs           []uuid.UUID `json:"city_ids"`
	Description       *string     `json:"description" binding:"omitempty,max=2000"`
}

func (r *UpdateBatchRequest) ToPatch() batch.Patch {
	return batch.Patch{
		Name:              r.Name,
		Active:            r.Active,
		RedemptionCeiling: r.RedemptionCeiling,
		CityIDs:           r.CityIDs,
		Description:       r.Description,
	}
}
