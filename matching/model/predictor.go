package model

import (
	"sort"
	"sync/atomic"

	"github.com/decisionhr/talentrank/matching/feature"
	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/pkg/logx"
)

// Prediction is one scored application.
type Prediction struct {
	JobCode          kernel.JobCode       `json:"job_code"`
	CandidateCode    kernel.CandidateCode `json:"candidate_code"`
	MatchProbability float64              `json:"match_probability"`
}

// Predictor scores feature rows against the loaded bundle. The bundle
// pointer swaps atomically on reload so concurrent readers never see a
// partially loaded artifact set.
type Predictor struct {
	bundle atomic.Pointer[Bundle]
}

// NewPredictor returns an unloaded predictor.
func NewPredictor() *Predictor {
	return &Predictor{}
}

// Load validates and installs a bundle, replacing any previous one.
func (p *Predictor) Load(b *Bundle) error {
	if err := b.Validate(); err != nil {
		return err
	}
	p.bundle.Store(b)
	logx.Infof("model bundle %s loaded (%d features)", b.Version.ID, len(b.Manifest.Columns))
	return nil
}

// Ready reports whether a bundle is loaded.
func (p *Predictor) Ready() bool {
	return p.bundle.Load() != nil
}

// Loaded returns the installed bundle, or nil when unloaded.
func (p *Predictor) Loaded() *Bundle {
	return p.bundle.Load()
}

// reindex projects a row onto the manifest feature space: manifest
// columns the row lacks are zero, columns outside the manifest are
// ignored.
func reindex(row feature.Row, columns []string) []float64 {
	vec := make([]float64, len(columns))
	for i, col := range columns {
		vec[i] = row.Value(col)
	}
	return vec
}

// Predict returns the match probability for each row. The network's
// sigmoid output estimates the failure class, so the match probability
// is its complement; every output lies in [0,1].
func (p *Predictor) Predict(rows []feature.Row) ([]float64, error) {
	b := p.bundle.Load()
	if b == nil {
		return nil, ErrNotReady()
	}
	if b.Scaler.Dims() != len(b.Manifest.Columns) {
		return nil, ErrArtifactMismatch("scaler dimensions do not match manifest columns")
	}
	probs := make([]float64, len(rows))
	for i, row := range rows {
		scaled := b.Scaler.Transform(reindex(row, b.Manifest.Columns))
		probs[i] = 1 - b.Network.Predict(scaled)
	}
	return probs, nil
}

// Rank scores the rows and orders them by descending match probability.
// Ties keep their input order.
func (p *Predictor) Rank(rows []feature.Row) ([]Prediction, error) {
	probs, err := p.Predict(rows)
	if err != nil {
		return nil, err
	}
	ranked := make([]Prediction, len(rows))
	for i, row := range rows {
		ranked[i] = Prediction{
			JobCode:          row.JobCode,
			CandidateCode:    row.CandidateCode,
			MatchProbability: probs[i],
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchProbability > ranked[j].MatchProbability
	})
	return ranked, nil
}
