package candidate

import (
	"github.com/decisionhr/talentrank/pkg/kernel"
)

// ListEntry - one (display name, code) pair for selection widgets.
type ListEntry struct {
	Name string               `json:"name"`
	Code kernel.CandidateCode `json:"code"`
}

// ListCandidatesRequest - DTO for listing candidates
type ListCandidatesRequest struct {
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated candidates
type PaginatedCandidatesResponse = kernel.Paginated[Candidate]
