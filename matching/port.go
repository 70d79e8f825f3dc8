package matching

import (
	"context"
	"time"

	"github.com/decisionhr/talentrank/matching/feature"
	"github.com/decisionhr/talentrank/matching/model"
	"github.com/decisionhr/talentrank/pkg/kernel"
)

// FeatureStore persists the engineered feature table so scoring does not
// recompute it per request.
type FeatureStore interface {
	// Replace swaps the stored table for a freshly built one.
	Replace(ctx context.Context, table *feature.Table) error

	// Columns returns the stored column list, empty when no table exists.
	Columns(ctx context.Context) ([]string, error)

	// RowsForJob retrieves the stored rows of one job. Unknown codes
	// return an empty slice, not an error.
	RowsForJob(ctx context.Context, code kernel.JobCode) ([]feature.Row, error)

	// RowsForCandidate retrieves the stored rows of one candidate.
	RowsForCandidate(ctx context.Context, code kernel.CandidateCode) ([]feature.Row, error)
}

// ArtifactStore publishes and loads trained model bundles.
type ArtifactStore interface {
	// Save publishes a bundle atomically; a failed save leaves any
	// previously published bundle intact.
	Save(ctx context.Context, bundle *model.Bundle) error

	// Load reads the published bundle. Returns model.ErrNotReady when no
	// complete bundle has been published.
	Load(ctx context.Context) (*model.Bundle, error)
}

// TrainQueue hands training requests to the background worker.
type TrainQueue interface {
	Enqueue(ctx context.Context, req TrainRequest) error

	// Dequeue blocks up to timeout; returns nil when nothing arrived.
	Dequeue(ctx context.Context, timeout time.Duration) (*TrainRequest, error)
}
