package jobsrv

import (
	"context"

	"github.com/decisionhr/talentrank/pkg/errx"
	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/recruitment/job"
)

// JobService provides read operations over the job snapshot
type JobService struct {
	jobRepo job.Repository
}

// NewJobService creates a new instance of the job service
func NewJobService(jobRepo job.Repository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
	}
}

// GetJobByCode retrieves a job by code
func (s *JobService) GetJobByCode(ctx context.Context, code kernel.JobCode) (*job.Job, error) {
	if code.IsEmpty() {
		return nil, job.ErrEmptyCode()
	}

	entity, err := s.jobRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	return entity, nil
}

// ListJobs retrieves all jobs as (display title, code) pairs for selection
func (s *JobService) ListJobs(ctx context.Context) ([]job.ListEntry, error) {
	jobs, err := s.jobRepo.LoadAll(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}

	entries := make([]job.ListEntry, 0, len(jobs))
	for _, j := range jobs {
		entries = append(entries, job.ListEntry{
			Title: j.DisplayTitle(),
			Code:  j.Code,
		})
	}

	return entries, nil
}

// ListJobsPaginated retrieves one page of full job records
func (s *JobService) ListJobsPaginated(ctx context.Context, pagination kernel.PaginationOptions) (*job.PaginatedJobsResponse, error) {
	page, err := s.jobRepo.List(ctx, pagination)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list jobs", errx.TypeInternal)
	}
	return page, nil
}
