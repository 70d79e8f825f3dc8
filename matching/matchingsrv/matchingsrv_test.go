package matchingsrv

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/decisionhr/talentrank/matching"
	"github.com/decisionhr/talentrank/matching/feature"
	"github.com/decisionhr/talentrank/matching/model"
	"github.com/decisionhr/talentrank/pkg/errx"
	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/recruitment/application"
	"github.com/decisionhr/talentrank/recruitment/candidate"
	"github.com/decisionhr/talentrank/recruitment/job"
)

// --- in-memory fakes ---

type fakeJobRepo struct{ jobs []job.Job }

func (r *fakeJobRepo) LoadAll(ctx context.Context) ([]job.Job, error) { return r.jobs, nil }
func (r *fakeJobRepo) GetByCode(ctx context.Context, code kernel.JobCode) (*job.Job, error) {
	for i := range r.jobs {
		if r.jobs[i].Code == code {
			return &r.jobs[i], nil
		}
	}
	return nil, job.ErrJobNotFound()
}
func (r *fakeJobRepo) List(ctx context.Context, p kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	return &kernel.Paginated[job.Job]{Items: r.jobs}, nil
}
func (r *fakeJobRepo) Exists(ctx context.Context, code kernel.JobCode) (bool, error) {
	_, err := r.GetByCode(ctx, code)
	return err == nil, nil
}

type fakeCandidateRepo struct{ candidates []candidate.Candidate }

func (r *fakeCandidateRepo) LoadAll(ctx context.Context) ([]candidate.Candidate, error) {
	return r.candidates, nil
}
func (r *fakeCandidateRepo) GetByCode(ctx context.Context, code kernel.CandidateCode) (*candidate.Candidate, error) {
	for i := range r.candidates {
		if r.candidates[i].Code == code {
			return &r.candidates[i], nil
		}
	}
	return nil, candidate.ErrCandidateNotFound()
}
func (r *fakeCandidateRepo) List(ctx context.Context, p kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	return &kernel.Paginated[candidate.Candidate]{Items: r.candidates}, nil
}
func (r *fakeCandidateRepo) Exists(ctx context.Context, code kernel.CandidateCode) (bool, error) {
	_, err := r.GetByCode(ctx, code)
	return err == nil, nil
}

type fakeApplicationRepo struct{ apps []application.Application }

func (r *fakeApplicationRepo) LoadAll(ctx context.Context) ([]application.Application, error) {
	return r.apps, nil
}
func (r *fakeApplicationRepo) ListByJob(ctx context.Context, code kernel.JobCode) ([]application.Application, error) {
	var out []application.Application
	for _, a := range r.apps {
		if a.JobCode == code {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeApplicationRepo) ListByCandidate(ctx context.Context, code kernel.CandidateCode) ([]application.Application, error) {
	var out []application.Application
	for _, a := range r.apps {
		if a.CandidateCode == code {
			out = append(out, a)
		}
	}
	return out, nil
}

type memoryFeatureStore struct {
	mu    sync.Mutex
	table *feature.Table
}

func (s *memoryFeatureStore) Replace(ctx context.Context, table *feature.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table
	return nil
}
func (s *memoryFeatureStore) Columns(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table == nil {
		return nil, nil
	}
	return s.table.Columns, nil
}
func (s *memoryFeatureStore) RowsForJob(ctx context.Context, code kernel.JobCode) ([]feature.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []feature.Row
	if s.table == nil {
		return out, nil
	}
	for _, r := range s.table.Rows {
		if r.JobCode == code {
			out = append(out, r)
		}
	}
	return out, nil
}
func (s *memoryFeatureStore) RowsForCandidate(ctx context.Context, code kernel.CandidateCode) ([]feature.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []feature.Row
	if s.table == nil {
		return out, nil
	}
	for _, r := range s.table.Rows {
		if r.CandidateCode == code {
			out = append(out, r)
		}
	}
	return out, nil
}

type memoryQueue struct {
	mu   sync.Mutex
	reqs []matching.TrainRequest
}

func (q *memoryQueue) Enqueue(ctx context.Context, req matching.TrainRequest) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.reqs = append(q.reqs, req)
	return nil
}
func (q *memoryQueue) Dequeue(ctx context.Context, timeout time.Duration) (*matching.TrainRequest, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.reqs) == 0 {
		return nil, nil
	}
	req := q.reqs[0]
	q.reqs = q.reqs[1:]
	return &req, nil
}

type memoryArtifactStore struct {
	mu     sync.Mutex
	bundle *model.Bundle
}

func (s *memoryArtifactStore) Save(ctx context.Context, bundle *model.Bundle) error {
	if err := bundle.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bundle = bundle
	return nil
}
func (s *memoryArtifactStore) Load(ctx context.Context) (*model.Bundle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bundle == nil {
		return nil, model.ErrNotReady()
	}
	return s.bundle, nil
}

// --- fixtures ---

func testFeatureService() (*FeatureService, *memoryFeatureStore) {
	jobs := &fakeJobRepo{jobs: []job.Job{
		{Code: "J1", Title: "Engenheiro de Dados", Activities: "pipelines de dados em spark"},
		{Code: "J2", Title: "Analista Comercial"},
	}}
	candidates := &fakeCandidateRepo{candidates: []candidate.Candidate{
		{Code: "C1", Name: "Ana", CV: "experiência com spark e pipelines de dados"},
		{Code: "C2", Name: "Bruno", CV: "vendas"},
	}}
	apps := &fakeApplicationRepo{apps: []application.Application{
		{JobCode: "J1", CandidateCode: "C1", CandidateName: "Ana", Status: "Contratado pela Decision"},
		{JobCode: "J1", CandidateCode: "C2", CandidateName: "Bruno", Status: "Não Aprovado pelo Cliente"},
		{JobCode: "J2", CandidateCode: "C2", CandidateName: "Bruno", Status: "Aprovado"},
	}}
	store := &memoryFeatureStore{}
	svc := NewFeatureService(jobs, candidates, apps, store,
		feature.NewEngineer(feature.Options{ExcludeInProgress: true}))
	return svc, store
}

// --- tests ---

func TestRebuildPersistsTable(t *testing.T) {
	svc, store := testFeatureService()
	resp, err := svc.Rebuild(context.Background())
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if resp.Rows != 3 {
		t.Errorf("rows = %d, want 3", resp.Rows)
	}
	if store.table == nil {
		t.Fatal("table not persisted")
	}
}

func TestFeatureRowsValidation(t *testing.T) {
	svc, _ := testFeatureService()
	ctx := context.Background()

	_, err := svc.FeatureRowsForJob(ctx, "")
	var xerr *errx.Error
	if !errx.As(err, &xerr) || xerr.Code != matching.ErrEmptyJobCode().Code {
		t.Fatalf("err = %v, want %s", err, matching.ErrEmptyJobCode().Code)
	}

	// Unknown codes yield an empty slice, not an error.
	rows, err := svc.FeatureRowsForJob(ctx, "GHOST")
	if err != nil {
		t.Fatalf("unknown job: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows for unknown job = %d, want 0", len(rows))
	}
}

func TestCompatibilityForJobSortsByFit(t *testing.T) {
	svc, _ := testFeatureService()
	rows, err := svc.CompatibilityForJob(context.Background(), "J1")
	if err != nil {
		t.Fatalf("compatibility: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].CandidateCode != "C1" {
		t.Errorf("best fit = %s, want C1", rows[0].CandidateCode)
	}
	if rows[0].Percentage < rows[1].Percentage {
		t.Error("rows not sorted by percentage descending")
	}
}

func TestCompatibilityUnknownCodesAreEmpty(t *testing.T) {
	svc, _ := testFeatureService()

	jobRows, err := svc.CompatibilityForJob(context.Background(), "GHOST")
	if err != nil {
		t.Fatalf("unknown job: %v", err)
	}
	if len(jobRows) != 0 {
		t.Errorf("unknown job rows = %d, want 0", len(jobRows))
	}

	candRows, err := svc.CompatibilityForCandidate(context.Background(), "GHOST")
	if err != nil {
		t.Fatalf("unknown candidate: %v", err)
	}
	if len(candRows) != 0 {
		t.Errorf("unknown candidate rows = %d, want 0", len(candRows))
	}

	scoring, err := svc.ScoringRowsForJob(context.Background(), "GHOST", feature.EncoderFromCategories(nil))
	if err != nil {
		t.Fatalf("unknown job scoring rows: %v", err)
	}
	if len(scoring) != 0 {
		t.Errorf("unknown job scoring rows = %d, want 0", len(scoring))
	}
}

func TestTrainingRunEndToEnd(t *testing.T) {
	svc, store := testFeatureService()

	// Pad the snapshots so training has enough labeled rows.
	jobs := &fakeJobRepo{}
	candidates := &fakeCandidateRepo{}
	apps := &fakeApplicationRepo{}
	for i := 0; i < 60; i++ {
		code := kernel.NewJobCode("J1")
		status := "Contratado pela Decision"
		cv := "pipelines de dados em spark e engenharia"
		if i%2 == 1 {
			status = "Não Aprovado pelo Cliente"
			cv = "nada relacionado"
		}
		candCode := kernel.NewCandidateCode(string(rune('A'+i%26)) + string(rune('0'+i/26)))
		candidates.candidates = append(candidates.candidates, candidate.Candidate{Code: candCode, CV: cv})
		apps.apps = append(apps.apps, application.Application{JobCode: code, CandidateCode: candCode, Status: status})
	}
	jobs.jobs = []job.Job{{Code: "J1", Title: "Engenheiro de Dados", Activities: "pipelines de dados em spark"}}
	svc = NewFeatureService(jobs, candidates, apps, store,
		feature.NewEngineer(feature.Options{ExcludeInProgress: true}))

	artifacts := &memoryArtifactStore{}
	queue := &memoryQueue{}
	predictorSvc := NewPredictorService(model.NewPredictor(), artifacts, svc)
	trainerSvc := NewTrainerService(svc, model.NewTrainer(model.TrainerOptions{}), artifacts, predictorSvc, queue)

	ctx := context.Background()
	resp, err := trainerSvc.EnqueueTraining(ctx, "test")
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if resp.RunID.IsEmpty() {
		t.Fatal("empty run ID")
	}
	req, err := queue.Dequeue(ctx, time.Second)
	if err != nil || req == nil {
		t.Fatalf("dequeue: req=%v err=%v", req, err)
	}

	if predictorSvc.Ready() {
		t.Fatal("predictor ready before any training run")
	}

	if err := trainerSvc.RunTraining(ctx, req.RunID.String()); err != nil {
		t.Fatalf("run training: %v", err)
	}
	if !predictorSvc.Ready() {
		t.Fatal("predictor not reloaded after training")
	}

	ranked, err := predictorSvc.RankForJob(ctx, "J1")
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(ranked) == 0 {
		t.Fatal("no ranked rows")
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].MatchProbability > ranked[i-1].MatchProbability {
			t.Fatal("ranking not descending")
		}
	}

	insights, err := predictorSvc.Insights(ctx)
	if err != nil {
		t.Fatalf("insights: %v", err)
	}
	if insights.FeatureCount == 0 || insights.VersionID == "" {
		t.Errorf("incomplete insights: %+v", insights)
	}
}

func TestInsightsUnloadedIsNotReady(t *testing.T) {
	svc, _ := testFeatureService()
	predictorSvc := NewPredictorService(model.NewPredictor(), &memoryArtifactStore{}, svc)
	_, err := predictorSvc.Insights(context.Background())
	var xerr *errx.Error
	if !errx.As(err, &xerr) || xerr.Code != model.ErrNotReady().Code {
		t.Fatalf("err = %v, want %s", err, model.ErrNotReady().Code)
	}
}
