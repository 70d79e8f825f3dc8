package application

import (
	"time"

	"github.com/decisionhr/talentrank/pkg/kernel"
)

// Application is the candidate-for-job edge carried in the ATS export. Status
// is the raw ATS status string ("Contratado pela Decision", "Inscrito", ...);
// the matching pipeline folds it into an outcome, the record keeps it verbatim.
type Application struct {
	JobCode       kernel.JobCode       `db:"job_code" json:"job_code"`
	CandidateCode kernel.CandidateCode `db:"candidate_code" json:"candidate_code"`
	CandidateName string               `db:"candidate_name" json:"candidate_name"`
	Status        string               `db:"status" json:"status"`
	AppliedOn     time.Time            `db:"applied_on" json:"applied_on"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// Key identifies the application by its composite (job, candidate) identity.
func (a *Application) Key() string {
	return a.JobCode.String() + "/" + a.CandidateCode.String()
}
