package request

import (
	"cuponera-backend/internal/domain/actor"
	"cuponera-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CreateActorRequest struct {
	Name               string      `json:"name" binding:"required,max=200"`
	Email              string      `json:"email" binding:"required,email"`
	Identification     string      `json:"identification" binding:"max=20"`
	Password           string      `json:"password" binding:"required,min=6"`
	Role               string      `json:"role"`
	ResponsiblePartyID *uuid.UUID  `json:"responsible_party_id"`
	Phone              string      `json:"phone" binding:"max=20"`
	CityIDs            []uuid.UUID `json:"city_ids"`
	CategoryIDs        []uuid.UUID `json:"category_ids"`
}

func (r *CreateActorRequest) ToInput() (commands.CreateActorInput, error) {
	var in commands.CreateActorInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.CreateActorInput{}, err
	}
	return in, nil
}

type PromotionRequest struct {
	Title         string `json:"title" binding:"max=200"`
	Description   string `json:"description" binding:"max=2000"`
	PlaceName     string `json:"place_name" binding:"max=200"`
	LogoURL       string `json:"logo_url" binding:"omitempty,url"`
	ScheduleLabel string `json:"schedule_label" binding:"max=200"`
	ImageURL      string `json:"image_url" binding:"omitempty,url"`
}

func (r *PromotionRequest) ToDomain() (actor.Promotion, error) {
	var p actor.Promotion
	if err := copier.Copy(&p, r); err != nil {
		return actor.Promotion{}, err
	}
	return p, nil
}

type CitiesQuery struct {
	CityIDs []string `form:"city_ids"`
}

func (q *CitiesQuery) Parse() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(q.CityIDs))
	for _, raw := range q.CityIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
