package queue

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TaskSendEmail        = "email:send"
	TaskPushNotification = "notification:push"
)

type SendEmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type PushNotificationPayload struct {
	NotificationID uuid.UUID `json:"notification_id"`
}

func NewSendEmailTask(payload SendEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSendEmail, body), nil
}

func NewPushNotificationTask(payload PushNotificationPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPushNotification, body), nil
}
