package matchinginfra

import (
	"context"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/decisionhr/talentrank/matching/feature"
	"github.com/decisionhr/talentrank/matching/model"
	"github.com/decisionhr/talentrank/pkg/errx"
)

func sampleBundle() *model.Bundle {
	rng := rand.New(rand.NewSource(11))
	return &model.Bundle{
		Network:    model.NewNetwork(3, rng),
		Scaler:     &model.Scaler{Means: []float64{1, 2, 3}, Stds: []float64{1, 1, 2}},
		Manifest:   model.Manifest{Columns: []string{"a", "b", "c"}, Categories: map[string][]string{"state": {"SP", "RJ"}}},
		Background: [][]float64{{0, 0, 0}, {1, 1, 1}},
		Version:    model.NewVersion(),
		Report:     model.Report{Accuracy: 0.9, TestRows: 10},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bundle")
	store := NewFSArtifactStore(dir)
	ctx := context.Background()

	original := sampleBundle()
	if err := store.Save(ctx, original); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Version.ID != original.Version.ID {
		t.Errorf("version = %s, want %s", loaded.Version.ID, original.Version.ID)
	}
	if got := loaded.Manifest.Categories["state"]; len(got) != 2 || got[0] != "SP" {
		t.Errorf("categories = %v", got)
	}
	if loaded.Report.Accuracy != 0.9 {
		t.Errorf("report accuracy = %v, want 0.9", loaded.Report.Accuracy)
	}

	// The restored network must predict identically.
	row := feature.Row{Values: map[string]float64{"a": 4, "b": -1, "c": 2}}
	before := model.NewPredictor()
	after := model.NewPredictor()
	if err := before.Load(original); err != nil {
		t.Fatalf("load original: %v", err)
	}
	if err := after.Load(loaded); err != nil {
		t.Fatalf("load round-tripped: %v", err)
	}
	p1, err := before.Predict([]feature.Row{row})
	if err != nil {
		t.Fatalf("predict original: %v", err)
	}
	p2, err := after.Predict([]feature.Row{row})
	if err != nil {
		t.Fatalf("predict round-tripped: %v", err)
	}
	if math.Abs(p1[0]-p2[0]) > 1e-12 {
		t.Errorf("round-trip prediction drifted: %v vs %v", p1[0], p2[0])
	}
}

func TestLoadWithoutBundleIsNotReady(t *testing.T) {
	store := NewFSArtifactStore(filepath.Join(t.TempDir(), "missing"))
	_, err := store.Load(context.Background())
	var xerr *errx.Error
	if !errx.As(err, &xerr) || xerr.Code != model.ErrNotReady().Code {
		t.Fatalf("err = %v, want %s", err, model.ErrNotReady().Code)
	}
}

func TestLoadWithMissingArtifactIsNotReady(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bundle")
	store := NewFSArtifactStore(dir)
	ctx := context.Background()
	if err := store.Save(ctx, sampleBundle()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := os.Remove(filepath.Join(dir, "scaler.json")); err != nil {
		t.Fatalf("remove artifact: %v", err)
	}
	_, err := store.Load(ctx)
	var xerr *errx.Error
	if !errx.As(err, &xerr) || xerr.Code != model.ErrNotReady().Code {
		t.Fatalf("err = %v, want %s", err, model.ErrNotReady().Code)
	}
}

func TestFailedSaveKeepsPreviousBundle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bundle")
	store := NewFSArtifactStore(dir)
	ctx := context.Background()

	first := sampleBundle()
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	// An invalid bundle must fail validation before touching the
	// published directory.
	broken := sampleBundle()
	broken.Scaler = &model.Scaler{Means: []float64{0}, Stds: []float64{1}}
	if err := store.Save(ctx, broken); err == nil {
		t.Fatal("expected save of inconsistent bundle to fail")
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load after failed save: %v", err)
	}
	if loaded.Version.ID != first.Version.ID {
		t.Errorf("published bundle replaced by failed save: %s", loaded.Version.ID)
	}
}
