package model

import (
	"math"
	"sort"

	"github.com/decisionhr/talentrank/matching/feature"
	"github.com/decisionhr/talentrank/pkg/kernel"
)

// explainSteps is the number of interpolation points per background row.
const explainSteps = 8

// Attribution is one feature's contribution to a row's score.
type Attribution struct {
	Rank     int     `json:"rank"`
	Feature  string  `json:"feature"`
	Value    float64 `json:"value"`
	RawValue float64 `json:"raw_value"`
}

// Explanation carries the top attributions for one scored row.
type Explanation struct {
	JobCode       kernel.JobCode       `json:"job_code"`
	CandidateCode kernel.CandidateCode `json:"candidate_code"`
	Attributions  []Attribution        `json:"attributions"`
}

// Explain attributes each row's score to its features by expected
// gradients: the input gradient is averaged along interpolation paths
// from background samples to the row, then weighted by the distance from
// the background baseline. Returns the topN features per row by absolute
// attribution.
func (p *Predictor) Explain(rows []feature.Row, topN int) ([]Explanation, error) {
	b := p.bundle.Load()
	if b == nil {
		return nil, ErrNotReady()
	}
	if len(b.Background) == 0 || b.Scaler == nil {
		return nil, ErrNotReady()
	}
	if topN <= 0 {
		topN = 5
	}

	columns := b.Manifest.Columns
	out := make([]Explanation, len(rows))
	for r, row := range rows {
		raw := reindex(row, columns)
		scaled := b.Scaler.Transform(raw)

		totals := make([]float64, len(columns))
		for _, baseline := range b.Background {
			for s := 1; s <= explainSteps; s++ {
				alpha := (float64(s) - 0.5) / float64(explainSteps)
				point := make([]float64, len(columns))
				for i := range point {
					point[i] = baseline[i] + alpha*(scaled[i]-baseline[i])
				}
				grad := b.Network.InputGradient(point)
				for i := range totals {
					totals[i] += grad[i] * (scaled[i] - baseline[i])
				}
			}
		}
		norm := float64(len(b.Background) * explainSteps)
		for i := range totals {
			totals[i] /= norm
		}

		order := make([]int, len(columns))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return math.Abs(totals[order[i]]) > math.Abs(totals[order[j]])
		})

		n := topN
		if n > len(order) {
			n = len(order)
		}
		attrs := make([]Attribution, n)
		for i := 0; i < n; i++ {
			idx := order[i]
			attrs[i] = Attribution{
				Rank:     i + 1,
				Feature:  columns[idx],
				Value:    totals[idx],
				RawValue: raw[idx],
			}
		}
		out[r] = Explanation{JobCode: row.JobCode, CandidateCode: row.CandidateCode, Attributions: attrs}
	}
	return out, nil
}
