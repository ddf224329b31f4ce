package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	TypeBeginActivity    = "activity:begin"
	TypeCompleteActivity = "activity:complete"
)

type ActivityPayload struct {
	ActivityID string `json:"activity_id"`
}

func NewBeginActivityTask(activityID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ActivityPayload{ActivityID: activityID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBeginActivity, payload), nil
}

func NewCompleteActivityTask(activityID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ActivityPayload{ActivityID: activityID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCompleteActivity, payload), nil
}
