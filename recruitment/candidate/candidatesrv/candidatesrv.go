package candidatesrv

import (
	"context"

	"github.com/decisionhr/talentrank/pkg/errx"
	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/recruitment/candidate"
)

// CandidateService provides read operations over the candidate snapshot
type CandidateService struct {
	candidateRepo candidate.Repository
}

// NewCandidateService creates a new instance of the candidate service
func NewCandidateService(candidateRepo candidate.Repository) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
	}
}

// GetCandidateByCode retrieves a candidate by code
func (s *CandidateService) GetCandidateByCode(ctx context.Context, code kernel.CandidateCode) (*candidate.Candidate, error) {
	if code.IsEmpty() {
		return nil, candidate.ErrEmptyCode()
	}

	entity, err := s.candidateRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	return entity, nil
}

// ListCandidates retrieves all candidates as (display name, code) pairs
func (s *CandidateService) ListCandidates(ctx context.Context) ([]candidate.ListEntry, error) {
	candidates, err := s.candidateRepo.LoadAll(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list candidates", errx.TypeInternal)
	}

	entries := make([]candidate.ListEntry, 0, len(candidates))
	for _, c := range candidates {
		entries = append(entries, candidate.ListEntry{
			Name: c.DisplayName(),
			Code: c.Code,
		})
	}

	return entries, nil
}

// ListCandidatesPaginated retrieves one page of full candidate records
func (s *CandidateService) ListCandidatesPaginated(ctx context.Context, pagination kernel.PaginationOptions) (*candidate.PaginatedCandidatesResponse, error) {
	page, err := s.candidateRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list candidates", errx.TypeInternal)
	}
	return page, nil
}
