package matchingsrv

import (
	"context"
	"sort"

	"github.com/decisionhr/talentrank/matching"
	"github.com/decisionhr/talentrank/matching/compat"
	"github.com/decisionhr/talentrank/matching/feature"
	"github.com/decisionhr/talentrank/pkg/errx"
	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/pkg/logx"
	"github.com/decisionhr/talentrank/recruitment/application"
	"github.com/decisionhr/talentrank/recruitment/candidate"
	"github.com/decisionhr/talentrank/recruitment/job"
)

// FeatureService rebuilds and serves the engineered feature table, plus
// the raw lexical compatibility listings.
type FeatureService struct {
	jobRepo       job.Repository
	candidateRepo candidate.Repository
	appRepo       application.Repository
	store         matching.FeatureStore
	engineer      *feature.Engineer
}

// NewFeatureService creates a new instance of the feature service
func NewFeatureService(
	jobRepo job.Repository,
	candidateRepo candidate.Repository,
	appRepo application.Repository,
	store matching.FeatureStore,
	engineer *feature.Engineer,
) *FeatureService {
	return &FeatureService{
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		appRepo:       appRepo,
		store:         store,
		engineer:      engineer,
	}
}

// Rebuild recomputes the feature table from fresh snapshots and persists
// it, replacing the previous table.
func (s *FeatureService) Rebuild(ctx context.Context) (*matching.RebuildResponse, error) {
	result, err := s.RebuildResult(ctx)
	if err != nil {
		return nil, err
	}
	return &matching.RebuildResponse{
		Rows:    len(result.Table.Rows),
		Columns: len(result.Table.Columns),
	}, nil
}

// RebuildResult is Rebuild returning the built table and fitted encoder,
// for callers that keep working with them (the training run).
func (s *FeatureService) RebuildResult(ctx context.Context) (*feature.Result, error) {
	result, err := s.buildFresh(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.Replace(ctx, result.Table); err != nil {
		return nil, errx.Wrap(err, "failed to persist feature table", errx.TypeInternal)
	}
	logx.Infof("feature table rebuilt: %d rows, %d columns", len(result.Table.Rows), len(result.Table.Columns))
	return result, nil
}

// buildFresh loads the three snapshots and fits a new table.
func (s *FeatureService) buildFresh(ctx context.Context) (*feature.Result, error) {
	jobs, err := s.jobRepo.LoadAll(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load jobs", errx.TypeInternal)
	}
	candidates, err := s.candidateRepo.LoadAll(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load candidates", errx.TypeInternal)
	}
	apps, err := s.appRepo.LoadAll(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load applications", errx.TypeInternal)
	}
	return s.engineer.Fit(jobs, candidates, apps), nil
}

// FeatureRowsForJob returns the stored feature rows of one job. Unknown
// codes yield an empty slice.
func (s *FeatureService) FeatureRowsForJob(ctx context.Context, code kernel.JobCode) ([]feature.Row, error) {
	if code.IsEmpty() {
		return nil, matching.ErrEmptyJobCode()
	}
	rows, err := s.store.RowsForJob(ctx, code)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load feature rows", errx.TypeInternal)
	}
	return rows, nil
}

// FeatureRowsForCandidate returns the stored feature rows of one candidate
func (s *FeatureService) FeatureRowsForCandidate(ctx context.Context, code kernel.CandidateCode) ([]feature.Row, error) {
	if code.IsEmpty() {
		return nil, matching.ErrEmptyCandidateCode()
	}
	rows, err := s.store.RowsForCandidate(ctx, code)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load feature rows", errx.TypeInternal)
	}
	return rows, nil
}

// ScoringRowsForJob featurizes a job's applications on the fly through a
// frozen encoder, so categorical codes always match the dictionaries the
// loaded model was trained with.
func (s *FeatureService) ScoringRowsForJob(ctx context.Context, code kernel.JobCode, enc *feature.Encoder) ([]feature.Row, error) {
	if code.IsEmpty() {
		return nil, matching.ErrEmptyJobCode()
	}
	j, err := s.jobRepo.GetByCode(ctx, code)
	if err != nil {
		if errx.HasCode(err, job.CodeJobNotFound) {
			return []feature.Row{}, nil
		}
		return nil, err
	}
	apps, err := s.appRepo.ListByJob(ctx, code)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load applications", errx.TypeInternal)
	}
	candidates := s.candidatesFor(ctx, apps)
	table := s.engineer.Transform([]job.Job{*j}, candidates, apps, enc)
	return table.Rows, nil
}

// ScoringRowsForCandidate featurizes one candidate's applications through
// a frozen encoder.
func (s *FeatureService) ScoringRowsForCandidate(ctx context.Context, code kernel.CandidateCode, enc *feature.Encoder) ([]feature.Row, error) {
	if code.IsEmpty() {
		return nil, matching.ErrEmptyCandidateCode()
	}
	c, err := s.candidateRepo.GetByCode(ctx, code)
	if err != nil {
		if errx.HasCode(err, candidate.CodeCandidateNotFound) {
			return []feature.Row{}, nil
		}
		return nil, err
	}
	apps, err := s.appRepo.ListByCandidate(ctx, code)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load applications", errx.TypeInternal)
	}
	jobs := make([]job.Job, 0, len(apps))
	for _, app := range apps {
		if j, err := s.jobRepo.GetByCode(ctx, app.JobCode); err == nil {
			jobs = append(jobs, *j)
		}
	}
	table := s.engineer.Transform(jobs, []candidate.Candidate{*c}, apps, enc)
	return table.Rows, nil
}

func (s *FeatureService) candidatesFor(ctx context.Context, apps []application.Application) []candidate.Candidate {
	candidates := make([]candidate.Candidate, 0, len(apps))
	for _, app := range apps {
		if c, err := s.candidateRepo.GetByCode(ctx, app.CandidateCode); err == nil {
			candidates = append(candidates, *c)
		}
	}
	return candidates
}

// CompatibilityForJob scores every applicant's CV against the job
// description, best fit first.
func (s *FeatureService) CompatibilityForJob(ctx context.Context, code kernel.JobCode) ([]matching.JobCompatibilityRow, error) {
	if code.IsEmpty() {
		return nil, matching.ErrEmptyJobCode()
	}
	j, err := s.jobRepo.GetByCode(ctx, code)
	if err != nil {
		// Unknown codes yield an empty result, not an error.
		if errx.HasCode(err, job.CodeJobNotFound) {
			return []matching.JobCompatibilityRow{}, nil
		}
		return nil, err
	}
	apps, err := s.appRepo.ListByJob(ctx, code)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load applications", errx.TypeInternal)
	}

	profile := compat.BuildProfile(j)
	rows := make([]matching.JobCompatibilityRow, 0, len(apps))
	for _, app := range apps {
		row := matching.JobCompatibilityRow{
			CandidateCode: app.CandidateCode,
			CandidateName: app.CandidateName,
		}
		if c, err := s.candidateRepo.GetByCode(ctx, app.CandidateCode); err == nil {
			score := profile.Score(c.CV)
			row.CommonWords = score.CommonWords
			row.Percentage = score.Percentage
			if row.CandidateName == "" {
				row.CandidateName = c.Name
			}
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, k int) bool { return rows[i].Percentage > rows[k].Percentage })
	return rows, nil
}

// CompatibilityForCandidate scores one candidate's CV against every job
// they applied to, best fit first.
func (s *FeatureService) CompatibilityForCandidate(ctx context.Context, code kernel.CandidateCode) ([]matching.CandidateCompatibilityRow, error) {
	if code.IsEmpty() {
		return nil, matching.ErrEmptyCandidateCode()
	}
	c, err := s.candidateRepo.GetByCode(ctx, code)
	if err != nil {
		if errx.HasCode(err, candidate.CodeCandidateNotFound) {
			return []matching.CandidateCompatibilityRow{}, nil
		}
		return nil, err
	}
	apps, err := s.appRepo.ListByCandidate(ctx, code)
	if err != nil {
		return nil, errx.Wrap(err, "failed to load applications", errx.TypeInternal)
	}

	rows := make([]matching.CandidateCompatibilityRow, 0, len(apps))
	for _, app := range apps {
		row := matching.CandidateCompatibilityRow{JobCode: app.JobCode}
		if j, err := s.jobRepo.GetByCode(ctx, app.JobCode); err == nil {
			score := compat.BuildProfile(j).Score(c.CV)
			row.JobTitle = j.DisplayTitle()
			row.CommonWords = score.CommonWords
			row.Percentage = score.Percentage
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, k int) bool { return rows[i].Percentage > rows[k].Percentage })
	return rows, nil
}
