package job

import (
	"github.com/decisionhr/talentrank/pkg/kernel"
)

// ListEntry - one (display title, code) pair for selection widgets.
type ListEntry struct {
	Title string         `json:"title"`
	Code  kernel.JobCode `json:"code"`
}

// ListJobsRequest - DTO for listing jobs
type ListJobsRequest struct {
	Pagination kernel.PaginationOptions `json:"pagination"`
}

// Response type alias for paginated jobs
type PaginatedJobsResponse = kernel.Paginated[Job]
