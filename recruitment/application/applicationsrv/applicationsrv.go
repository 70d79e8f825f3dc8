package applicationsrv

import (
	"context"

	"github.com/decisionhr/talentrank/pkg/errx"
	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/recruitment/application"
)

// ApplicationService provides read operations over the application snapshot
type ApplicationService struct {
	applicationRepo application.Repository
}

// NewApplicationService creates a new instance of the application service
func NewApplicationService(applicationRepo application.Repository) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
	}
}

// GetApplicationsForJob returns the applications view for one job. An unknown
// job code yields an empty result, an empty code is a validation error.
func (s *ApplicationService) GetApplicationsForJob(ctx context.Context, jobCode kernel.JobCode) ([]application.JobApplicationRow, error) {
	if jobCode.IsEmpty() {
		return nil, application.ErrEmptyJobCode()
	}

	apps, err := s.applicationRepo.ListByJob(ctx, jobCode)
	if err != nil {
		return nil, errx.Wrap(err, "failed to get applications for job", errx.TypeInternal)
	}

	rows := make([]application.JobApplicationRow, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, application.JobApplicationRow{
			CandidateCode: a.CandidateCode,
			CandidateName: a.CandidateName,
			AppliedOn:     a.AppliedOn,
			Status:        a.Status,
		})
	}

	return rows, nil
}

// GetApplicationsForCandidate returns the applications of one candidate.
func (s *ApplicationService) GetApplicationsForCandidate(ctx context.Context, candidateCode kernel.CandidateCode) ([]application.Application, error) {
	if candidateCode.IsEmpty() {
		return nil, application.ErrEmptyCandidateCode()
	}

	apps, err := s.applicationRepo.ListByCandidate(ctx, candidateCode)
	if err != nil {
		return nil, errx.Wrap(err, "failed to get applications for candidate", errx.TypeInternal)
	}

	return apps, nil
}
