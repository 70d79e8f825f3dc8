package matchingsrv

import (
	"context"

	"github.com/decisionhr/talentrank/matching"
	"github.com/decisionhr/talentrank/matching/model"
	"github.com/decisionhr/talentrank/pkg/errx"
	"github.com/decisionhr/talentrank/pkg/logx"
)

// TrainerService runs training end to end: rebuild features, fit the
// classifier, publish the bundle and hot-swap the predictor.
type TrainerService struct {
	features  *FeatureService
	trainer   *model.Trainer
	artifacts matching.ArtifactStore
	predictor *PredictorService
	queue     matching.TrainQueue
}

// NewTrainerService creates a new instance of the trainer service
func NewTrainerService(
	features *FeatureService,
	trainer *model.Trainer,
	artifacts matching.ArtifactStore,
	predictor *PredictorService,
	queue matching.TrainQueue,
) *TrainerService {
	return &TrainerService{
		features:  features,
		trainer:   trainer,
		artifacts: artifacts,
		predictor: predictor,
		queue:     queue,
	}
}

// EnqueueTraining queues a training run for the background worker.
func (s *TrainerService) EnqueueTraining(ctx context.Context, requestedBy string) (*matching.EnqueueResponse, error) {
	req := matching.NewTrainRequest(requestedBy)
	if err := s.queue.Enqueue(ctx, req); err != nil {
		return nil, matching.ErrEnqueueFailed().WithCause(err)
	}
	logx.Infof("training run %s queued", req.RunID)
	return &matching.EnqueueResponse{RunID: req.RunID, RequestedAt: req.RequestedAt}, nil
}

// RunTraining executes one complete training run. Called by the worker;
// may also be invoked synchronously for tooling.
func (s *TrainerService) RunTraining(ctx context.Context, runID string) error {
	logx.Infof("training run %s started", runID)

	result, err := s.features.RebuildResult(ctx)
	if err != nil {
		return err
	}

	bundle, err := s.trainer.Train(result.Table, result.Encoder)
	if err != nil {
		return err
	}

	if err := s.artifacts.Save(ctx, bundle); err != nil {
		return err
	}

	if err := s.predictor.Reload(ctx); err != nil {
		return errx.Wrap(err, "bundle published but reload failed", errx.TypeInternal)
	}

	logx.Infof("training run %s finished: bundle %s, accuracy %.4f",
		runID, bundle.Version.ID, bundle.Report.Accuracy)
	return nil
}
