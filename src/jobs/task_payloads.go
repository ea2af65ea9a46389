package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	TypeOverdueOptionsSweep = "options:overdue_sweep"
)

type OverdueSweepPayload struct {
	// Requested for observability only; the handler uses its own clock.
	RequestedAt int64 `json:"requestedAt"`
}

func NewOverdueSweepTask(requestedAt int64) (*asynq.Task, error) {
	payload, err := json.Marshal(OverdueSweepPayload{RequestedAt: requestedAt})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeOverdueOptionsSweep, payload), nil
}
