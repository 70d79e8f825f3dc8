package application

import (
	"context"

	"github.com/decisionhr/talentrank/pkg/kernel"
)

type Repository interface {
	// LoadAll returns the full read-only snapshot of applications.
	LoadAll(ctx context.Context) ([]Application, error)

	// ListByJob retrieves the applications for one job.
	ListByJob(ctx context.Context, jobCode kernel.JobCode) ([]Application, error)

	// ListByCandidate retrieves the applications of one candidate.
	ListByCandidate(ctx context.Context, candidateCode kernel.CandidateCode) ([]Application, error)
}
