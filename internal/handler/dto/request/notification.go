package request

import (
	"cuponera-backend/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SendNotificationRequest struct {
	Title    string     `json:"title" binding:"required,max=200"`
	Body     string     `json:"body" binding:"required,max=2000"`
	Image    string     `json:"image" binding:"omitempty,url"`
	Link     string     `json:"link" binding:"max=500"`
	ClientID *uuid.UUID `json:"client_id"`
}

func (r *SendNotificationRequest) ToInput() (commands.SendNotificationInput, error) {
	var in commands.SendNotificationInput
	if err := copier.Copy(&in, r); err != nil {
		return commands.SendNotificationInput{}, err
	}
	return in, nil
}

type NotificationListQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
