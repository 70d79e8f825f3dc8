package model

import (
	"math/rand"

	"github.com/decisionhr/talentrank/matching/feature"
	"github.com/decisionhr/talentrank/pkg/logx"
)

const (
	trainSeed         = 42
	testFraction      = 0.2
	backgroundSamples = 100
	minLabeledRows    = 10
)

// TrainerOptions tune a training run. The zero value is the production
// configuration.
type TrainerOptions struct {
	// ExcludedColumns are dropped from the design matrix before training.
	// Useful when a caller materializes identifying columns into the table.
	ExcludedColumns []string
	// Seed overrides the fixed training seed when non-zero.
	Seed int64
}

// Trainer owns the full training pipeline: split, resample, standardize,
// fit, evaluate, bundle.
type Trainer struct {
	opts TrainerOptions
}

// NewTrainer creates a trainer.
func NewTrainer(opts TrainerOptions) *Trainer {
	return &Trainer{opts: opts}
}

// Train fits a classifier on the labeled rows of the table and returns a
// validated bundle carrying the manifest frozen from enc. The caller
// persists the bundle; a failed run returns an error and produces no
// artifacts.
func (t *Trainer) Train(table *feature.Table, enc *feature.Encoder) (*Bundle, error) {
	labeled := table.Labeled()
	if len(labeled) < minLabeledRows {
		return nil, ErrNotEnoughData(len(labeled))
	}

	columns := t.featureColumns(table.Columns)
	x := make([][]float64, len(labeled))
	y := make([]int, len(labeled))
	for i, row := range labeled {
		vec := make([]float64, len(columns))
		for c, col := range columns {
			vec[c] = row.Value(col)
		}
		x[i] = vec
		y[i] = row.Label
	}

	seed := int64(trainSeed)
	if t.opts.Seed != 0 {
		seed = t.opts.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	trainX, trainY, testX, testY := split(x, y, rng)
	if len(trainX) == 0 || len(testX) == 0 {
		return nil, ErrNotEnoughData(len(labeled))
	}

	resampledX, resampledY := Oversample(trainX, trainY, rng)
	logx.Infof("training on %d rows (%d after resampling), %d held out, %d features",
		len(trainX), len(resampledX), len(testX), len(columns))

	scaler := FitScaler(resampledX)
	scaledTrain := scaler.TransformAll(resampledX)
	scaledTest := scaler.TransformAll(testX)

	trainTargets := toTargets(resampledY)
	testTargets := toTargets(testY)

	network := NewNetwork(len(columns), rng)
	epochs := network.fit(scaledTrain, trainTargets, scaledTest, testTargets, rng)

	report := evaluate(network, scaledTest, testTargets)
	report.TrainRows = len(trainX)
	report.Resampled = len(resampledX)
	report.Epochs = epochs
	report.FeatureDim = len(columns)
	logx.Infof("training finished: accuracy %.4f over %d test rows", report.Accuracy, report.TestRows)

	bundle := &Bundle{
		Network:    network,
		Scaler:     scaler,
		Manifest:   Manifest{Columns: columns, Categories: enc.Categories()},
		Background: sampleBackground(scaledTrain, rng),
		Version:    NewVersion(),
		Report:     report,
	}
	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (t *Trainer) featureColumns(all []string) []string {
	if len(t.opts.ExcludedColumns) == 0 {
		return append([]string(nil), all...)
	}
	excluded := make(map[string]struct{}, len(t.opts.ExcludedColumns))
	for _, col := range t.opts.ExcludedColumns {
		excluded[col] = struct{}{}
	}
	columns := make([]string, 0, len(all))
	for _, col := range all {
		if _, skip := excluded[col]; skip {
			continue
		}
		columns = append(columns, col)
	}
	return columns
}

// split shuffles and carves off the held-out test fraction.
func split(x [][]float64, y []int, rng *rand.Rand) (trainX [][]float64, trainY []int, testX [][]float64, testY []int) {
	order := rng.Perm(len(x))
	testSize := int(float64(len(x)) * testFraction)
	if testSize == 0 {
		testSize = 1
	}
	for i, idx := range order {
		if i < testSize {
			testX = append(testX, x[idx])
			testY = append(testY, y[idx])
		} else {
			trainX = append(trainX, x[idx])
			trainY = append(trainY, y[idx])
		}
	}
	return trainX, trainY, testX, testY
}

func toTargets(labels []int) []float64 {
	targets := make([]float64, len(labels))
	for i, l := range labels {
		targets[i] = float64(l)
	}
	return targets
}

func sampleBackground(scaled [][]float64, rng *rand.Rand) [][]float64 {
	if len(scaled) <= backgroundSamples {
		out := make([][]float64, len(scaled))
		for i, row := range scaled {
			out[i] = append([]float64(nil), row...)
		}
		return out
	}
	out := make([][]float64, 0, backgroundSamples)
	for _, idx := range rng.Perm(len(scaled))[:backgroundSamples] {
		out = append(out, append([]float64(nil), scaled[idx]...))
	}
	return out
}
