package matchingsrv

import (
	"context"

	"github.com/decisionhr/talentrank/matching"
	"github.com/decisionhr/talentrank/matching/feature"
	"github.com/decisionhr/talentrank/matching/model"
	"github.com/decisionhr/talentrank/pkg/errx"
	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/pkg/logx"
)

// PredictorService fronts the loaded model: ranking, explanations and
// training insights for stored feature rows.
type PredictorService struct {
	predictor *model.Predictor
	artifacts matching.ArtifactStore
	features  *FeatureService
}

// NewPredictorService creates a new instance of the predictor service
func NewPredictorService(
	predictor *model.Predictor,
	artifacts matching.ArtifactStore,
	features *FeatureService,
) *PredictorService {
	return &PredictorService{
		predictor: predictor,
		artifacts: artifacts,
		features:  features,
	}
}

// Reload loads the published bundle into the predictor. The swap is
// atomic; in-flight predictions finish on the bundle they started with.
func (s *PredictorService) Reload(ctx context.Context) error {
	bundle, err := s.artifacts.Load(ctx)
	if err != nil {
		return err
	}
	return s.predictor.Load(bundle)
}

// TryReload loads the published bundle if one exists; an absent bundle
// leaves the predictor unloaded without failing startup.
func (s *PredictorService) TryReload(ctx context.Context) {
	if err := s.Reload(ctx); err != nil {
		if errx.HasCode(err, model.CodeNotReady) {
			logx.Warn("no published model bundle yet, predictor stays unloaded")
			return
		}
		logx.Errorf("failed to load model bundle: %v", err)
	}
}

// Ready reports whether a bundle is loaded.
func (s *PredictorService) Ready() bool {
	return s.predictor.Ready()
}

// manifestEncoder rebuilds the frozen dictionaries of the loaded bundle.
// Scoring always featurizes through these, never through a fresh fit.
func (s *PredictorService) manifestEncoder() (*feature.Encoder, error) {
	bundle := s.predictor.Loaded()
	if bundle == nil {
		return nil, model.ErrNotReady()
	}
	return feature.EncoderFromCategories(bundle.Manifest.Categories), nil
}

// RankForJob featurizes and scores a job's applications, best match first.
func (s *PredictorService) RankForJob(ctx context.Context, code kernel.JobCode) ([]model.Prediction, error) {
	enc, err := s.manifestEncoder()
	if err != nil {
		return nil, err
	}
	rows, err := s.features.ScoringRowsForJob(ctx, code, enc)
	if err != nil {
		return nil, err
	}
	return s.predictor.Rank(rows)
}

// RankForCandidate featurizes and scores a candidate across their
// applications.
func (s *PredictorService) RankForCandidate(ctx context.Context, code kernel.CandidateCode) ([]model.Prediction, error) {
	enc, err := s.manifestEncoder()
	if err != nil {
		return nil, err
	}
	rows, err := s.features.ScoringRowsForCandidate(ctx, code, enc)
	if err != nil {
		return nil, err
	}
	return s.predictor.Rank(rows)
}

// Rank scores arbitrary feature rows.
func (s *PredictorService) Rank(ctx context.Context, rows []feature.Row) ([]model.Prediction, error) {
	return s.predictor.Rank(rows)
}

// ExplainForJob attributes each applicant's score to its top features.
func (s *PredictorService) ExplainForJob(ctx context.Context, code kernel.JobCode, topN int) ([]model.Explanation, error) {
	enc, err := s.manifestEncoder()
	if err != nil {
		return nil, err
	}
	rows, err := s.features.ScoringRowsForJob(ctx, code, enc)
	if err != nil {
		return nil, err
	}
	return s.predictor.Explain(rows, topN)
}

// Insights returns the loaded bundle's training stats.
func (s *PredictorService) Insights(ctx context.Context) (*matching.ModelInsights, error) {
	bundle := s.predictor.Loaded()
	if bundle == nil {
		return nil, model.ErrNotReady()
	}
	return &matching.ModelInsights{
		VersionID:      bundle.Version.ID,
		TrainedAt:      bundle.Version.TrainedAt,
		Accuracy:       bundle.Report.Accuracy,
		Classes:        bundle.Report.Classes,
		FeatureCount:   len(bundle.Manifest.Columns),
		BackgroundRows: len(bundle.Background),
		TrainRows:      bundle.Report.TrainRows,
		TestRows:       bundle.Report.TestRows,
		Epochs:         bundle.Report.Epochs,
	}, nil
}
