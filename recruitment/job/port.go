package job

import (
	"context"

	"github.com/decisionhr/talentrank/pkg/kernel"
)

type Repository interface {
	// LoadAll returns the full read-only snapshot of jobs.
	LoadAll(ctx context.Context) ([]Job, error)

	// GetByCode retrieves a job by its code.
	GetByCode(ctx context.Context, code kernel.JobCode) (*Job, error)

	// List retrieves jobs with pagination, newest first.
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Job], error)

	// Exists checks if a job exists by code.
	Exists(ctx context.Context, code kernel.JobCode) (bool, error)
}
