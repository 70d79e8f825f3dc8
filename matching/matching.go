// Package matching ties the ranking pipeline together: feature
// persistence, training runs and the scoring services built on the
// feature and model packages.
package matching

import (
	"time"

	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/google/uuid"
)

// TrainRequest is the unit of work on the training queue.
type TrainRequest struct {
	RunID       kernel.RunID `json:"run_id"`
	RequestedAt time.Time    `json:"requested_at"`
	RequestedBy string       `json:"requested_by,omitempty"`
}

// NewTrainRequest mints a request with a fresh run ID.
func NewTrainRequest(requestedBy string) TrainRequest {
	return TrainRequest{
		RunID:       kernel.NewRunID(uuid.NewString()),
		RequestedAt: time.Now().UTC(),
		RequestedBy: requestedBy,
	}
}
