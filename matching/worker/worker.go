package worker

import (
	"context"
	"time"

	"github.com/decisionhr/talentrank/matching"
	"github.com/decisionhr/talentrank/matching/matchingsrv"
	"github.com/decisionhr/talentrank/pkg/logx"
)

const dequeueTimeout = 5 * time.Second

// TrainWorker consumes queued training requests. A single worker is
// enough: training runs are heavyweight and must not overlap, since each
// publishes a new bundle.
type TrainWorker struct {
	service *matchingsrv.TrainerService
	queue   matching.TrainQueue
}

func NewTrainWorker(service *matchingsrv.TrainerService, queue matching.TrainQueue) *TrainWorker {
	return &TrainWorker{
		service: service,
		queue:   queue,
	}
}

func (w *TrainWorker) Start(ctx context.Context) {
	logx.Info("Starting training worker")
	go w.processRuns(ctx)
}

func (w *TrainWorker) processRuns(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			logx.Info("Training worker stopping")
			return
		default:
			req, err := w.queue.Dequeue(ctx, dequeueTimeout)
			if err != nil {
				logx.Errorf("Training worker dequeue error: %v", err)
				continue
			}
			if req == nil { // queue timeout, nothing to do
				continue
			}

			logx.Infof("Training worker picked up run %s (requested %s)",
				req.RunID, req.RequestedAt.Format(time.RFC3339))
			if err := w.service.RunTraining(ctx, req.RunID.String()); err != nil {
				logx.Errorf("Training run %s failed: %v", req.RunID, err)
			}
		}
	}
}
