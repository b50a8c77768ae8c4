package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task type names
const (
	TypeEmailDeliver = "email:deliver"
)

// EmailDeliverPayload contains the data for an outbound email task
type EmailDeliverPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func NewEmailDeliverTask(payload EmailDeliverPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeEmailDeliver, data, asynq.MaxRetry(3)), nil
}
