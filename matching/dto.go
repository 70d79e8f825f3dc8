package matching

import (
	"time"

	"github.com/decisionhr/talentrank/matching/model"
	"github.com/decisionhr/talentrank/pkg/kernel"
)

// JobCompatibilityRow is one candidate's lexical fit for a job.
type JobCompatibilityRow struct {
	CandidateCode kernel.CandidateCode `json:"candidate_code"`
	CandidateName string               `json:"candidate_name"`
	CommonWords   int                  `json:"common_words"`
	Percentage    float64              `json:"compat_pct"`
}

// CandidateCompatibilityRow is one job's lexical fit for a candidate.
type CandidateCompatibilityRow struct {
	JobCode     kernel.JobCode `json:"job_code"`
	JobTitle    string         `json:"job_title"`
	CommonWords int            `json:"common_words"`
	Percentage  float64        `json:"compat_pct"`
}

// RebuildResponse reports the size of a freshly persisted feature table.
type RebuildResponse struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// EnqueueResponse acknowledges a queued training run.
type EnqueueResponse struct {
	RunID       kernel.RunID `json:"run_id"`
	RequestedAt time.Time    `json:"requested_at"`
}

// ModelInsights is a read-only snapshot of the loaded bundle's training
// stats.
type ModelInsights struct {
	VersionID      string                     `json:"version_id"`
	TrainedAt      time.Time                  `json:"trained_at"`
	Accuracy       float64                    `json:"accuracy"`
	Classes        map[int]model.ClassMetrics `json:"classes"`
	FeatureCount   int                        `json:"feature_count"`
	BackgroundRows int                        `json:"background_rows"`
	TrainRows      int                        `json:"train_rows"`
	TestRows       int                        `json:"test_rows"`
	Epochs         int                        `json:"epochs"`
}
