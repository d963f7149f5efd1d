package request

import (
	"cuponera-backend/internal/domain/businessrequest"

	"github.com/jinzhu/copier"
)

type CreateBusinessRequestRequest struct {
	Company string `json:"company" binding:"required,max=200"`
	RUC     string `json:"ruc" binding:"omitempty,len=13,numeric"`
	Contact string `json:"contact" binding:"max=200"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=20"`
	City    string `json:"city" binding:"max=120"`
	Message string `json:"message" binding:"max=2000"`
	Origin  string `json:"origin" binding:"max=40"`
}

func (r *CreateBusinessRequestRequest) ToInput() (businessrequest.NewInput, error) {
	var in businessrequest.NewInput
	if err := copier.Copy(&in, r); err != nil {
		return businessrequest.NewInput{}, err
	}
	return in, nil
}

type UpdateBusinessRequestRequest struct {
	Company *string `json:"company" binding:"omitempty,max=200"`
	RUC     *string `json:"ruc" binding:"omitempty,max=13"`
	Contact *string `json:"contact" binding:"omitempty,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
	City    *string `json:"city" binding:"omitempty,max=120"`
	Message *string `json:"message" binding:"omitempty,max=2000"`
	Status  *string `json:"status"`
}

func (r *UpdateBusinessRequestRequest) ToPatch() businessrequest.Patch {
	p := businessrequest.Patch{
		Company: r.Company,
		RUC:     r.RUC,
		Contact: r.Contact,
		Phone:   r.Phone,
		City:    r.City,
		Message: r.Message,
	}
	if r.Status != nil {
		s := businessrequest.Status(*r.Status)
		p.Status = &s
	}
	return p
}

type EmailQuery struct {
	Email string `form:"email" binding:"required"`
}

type BusinessRequestListQuery struct {
	Status string `form:"status"`
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
