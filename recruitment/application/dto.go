package application

import (
	"time"

	"github.com/decisionhr/talentrank/pkg/kernel"
)

// JobApplicationRow is one line of the per-job applications view
// (candidate code, name, application date, raw status).
type JobApplicationRow struct {
	CandidateCode kernel.CandidateCode `json:"candidate_code"`
	CandidateName string               `json:"candidate_name"`
	AppliedOn     time.Time            `json:"applied_on"`
	Status        string               `json:"status"`
}
