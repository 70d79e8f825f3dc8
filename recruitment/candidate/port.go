package candidate

import (
	"context"

	"github.com/decisionhr/talentrank/pkg/kernel"
)

type Repository interface {
	// LoadAll returns the full read-only snapshot of candidates.
	LoadAll(ctx context.Context) ([]Candidate, error)

	// GetByCode retrieves a candidate by code.
	GetByCode(ctx context.Context, code kernel.CandidateCode) (*Candidate, error)

	// List retrieves candidates with pagination.
	List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[Candidate], error)

	// Exists checks if a candidate exists by code.
	Exists(ctx context.Context, code kernel.CandidateCode) (bool, error)
}
