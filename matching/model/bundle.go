package model

import (
	"time"

	"github.com/google/uuid"
)

// Manifest freezes everything the predictor needs to rebuild the exact
// training-time feature space: the ordered column list and the fitted
// category dictionaries.
type Manifest struct {
	Columns    []string            `json:"columns"`
	Categories map[string][]string `json:"categories"`
}

// Version stamps a published bundle.
type Version struct {
	ID        string    `json:"id"`
	TrainedAt time.Time `json:"trained_at"`
}

// NewVersion mints a version stamp for a fresh training run.
func NewVersion() Version {
	return Version{ID: uuid.NewString(), TrainedAt: time.Now().UTC()}
}

// Bundle is the complete trained artifact set. A bundle is only
// meaningful when all parts are present and dimensionally consistent.
type Bundle struct {
	Network    *Network    `json:"-"`
	Scaler     *Scaler     `json:"-"`
	Manifest   Manifest    `json:"-"`
	Background [][]float64 `json:"-"`
	Version    Version     `json:"-"`
	Report     Report      `json:"-"`
}

// Validate checks cross-artifact dimensional consistency.
func (b *Bundle) Validate() error {
	cols := len(b.Manifest.Columns)
	if b.Network == nil || b.Scaler == nil {
		return ErrArtifactMismatch("missing network or scaler")
	}
	if b.Scaler.Dims() != cols {
		return ErrArtifactMismatch("scaler dimensions do not match manifest columns")
	}
	if b.Network.InputDim() != cols {
		return ErrArtifactMismatch("network input width does not match manifest columns")
	}
	for _, row := range b.Background {
		if len(row) != cols {
			return ErrArtifactMismatch("background sample width does not match manifest columns")
		}
	}
	return nil
}
