package request

import (
	"cuponera-backend/internal/domain/client"
	"cuponera-backend/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type RegisterClientRequest struct {
	FirstName          string `json:"first_name" binding:"required,max=100"`
	LastName           string `json:"last_name" binding:"required,max=100"`
	IdentificationType string `json:"identification_type" binding:"omitempty,oneof=CEDULA RUC PASAPORTE"`
	Identification     string `json:"identification" binding:"required,max=20"`
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required,min=6"`
	Phone              string `json:"phone" binding:"max=20"`
	Address            string `json:"address" binding:"max=300"`
}

func (r *RegisterClientRequest) ToInput() (commands.RegisterClientInput, error) {
	var in commands.RegisterClientInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.RegisterClientInput{}, err
	}
	return in, nil
}

type UpdateClientRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	Address   *string `json:"address" binding:"omitempty,max=300"`
}

func (r *UpdateClientRequest) ToDomain() client.Update {
	return client.Update{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}
