package tasks

import (
	"encoding/json"
	"fmt"

	"eventra/models"

	"github.com/hibiken/asynq"
)

const TypeSendPush = "notify:push"

// NewPushTask wraps a push notification into a queued task.
func NewPushTask(payload models.PushNotification) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendPush, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}

	return task, opts, nil
}

// ParsePushTask decodes the payload of a notify:push task.
func ParsePushTask(task *asynq.Task) (models.PushNotification, error) {
	var p models.PushNotification
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid push payload: %w", err)
	}
	if p.UserID == "" {
		return p, fmt.Errorf("push payload has no recipient")
	}
	return p, nil
}
