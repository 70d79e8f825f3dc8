// Package model holds the classifier: standardization, resampling, the
// feed-forward network, training, prediction and attribution, plus the
// on-disk artifact bundle.
package model

import "math"

// Scaler standardizes features to zero mean and unit variance, column
// by column. Fitted once on the training split and frozen into the bundle.
type Scaler struct {
	Means []float64 `json:"means"`
	Stds  []float64 `json:"stds"`
}

// FitScaler computes per-column mean and standard deviation. Columns with
// zero variance get Std 0 and transform to 0 rather than dividing by zero.
func FitScaler(rows [][]float64) *Scaler {
	if len(rows) == 0 {
		return &Scaler{}
	}
	dims := len(rows[0])
	means := make([]float64, dims)
	stds := make([]float64, dims)
	for _, row := range rows {
		for i, v := range row {
			means[i] += v
		}
	}
	n := float64(len(rows))
	for i := range means {
		means[i] /= n
	}
	for _, row := range rows {
		for i, v := range row {
			d := v - means[i]
			stds[i] += d * d
		}
	}
	for i := range stds {
		stds[i] = math.Sqrt(stds[i] / n)
	}
	return &Scaler{Means: means, Stds: stds}
}

// Dims returns the number of feature columns the scaler was fitted on.
func (s *Scaler) Dims() int { return len(s.Means) }

// Transform standardizes a single row in place-compatible fashion,
// returning a new slice.
func (s *Scaler) Transform(row []float64) []float64 {
	out := make([]float64, len(row))
	for i, v := range row {
		if i >= len(s.Means) {
			break
		}
		if s.Stds[i] == 0 {
			out[i] = 0
			continue
		}
		out[i] = (v - s.Means[i]) / s.Stds[i]
	}
	return out
}

// TransformAll standardizes a matrix row by row.
func (s *Scaler) TransformAll(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = s.Transform(row)
	}
	return out
}
