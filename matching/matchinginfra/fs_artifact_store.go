package matchinginfra

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/decisionhr/talentrank/matching"
	"github.com/decisionhr/talentrank/matching/model"
	"github.com/decisionhr/talentrank/pkg/logx"
)

const (
	modelFile      = "model.json"
	scalerFile     = "scaler.json"
	manifestFile   = "manifest.json"
	backgroundFile = "background.json"
	versionFile    = "version.json"
	reportFile     = "report.json"
)

// FSArtifactStore persists model bundles as JSON artifacts under a
// directory. Publication is atomic: artifacts are written to a temp
// directory and swapped in with renames, so readers and a crashed run
// never see a half-written bundle.
type FSArtifactStore struct {
	dir string
}

// NewFSArtifactStore creates a store rooted at dir.
func NewFSArtifactStore(dir string) matching.ArtifactStore {
	return &FSArtifactStore{dir: dir}
}

func (s *FSArtifactStore) Save(ctx context.Context, bundle *model.Bundle) error {
	if err := bundle.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.dir), 0o755); err != nil {
		return model.ErrSaveFailed(err)
	}

	tmp, err := os.MkdirTemp(filepath.Dir(s.dir), "bundle-*")
	if err != nil {
		return model.ErrSaveFailed(err)
	}
	defer os.RemoveAll(tmp)

	files := map[string]any{
		modelFile:      bundle.Network,
		scalerFile:     bundle.Scaler,
		manifestFile:   bundle.Manifest,
		backgroundFile: bundle.Background,
		versionFile:    bundle.Version,
		reportFile:     bundle.Report,
	}
	for name, payload := range files {
		if err := writeJSON(filepath.Join(tmp, name), payload); err != nil {
			return model.ErrSaveFailed(err)
		}
	}

	backup := s.dir + ".old"
	os.RemoveAll(backup)
	if _, err := os.Stat(s.dir); err == nil {
		if err := os.Rename(s.dir, backup); err != nil {
			return model.ErrSaveFailed(err)
		}
	}
	if err := os.Rename(tmp, s.dir); err != nil {
		// Put the previous bundle back so a failed publish is a no-op.
		if restoreErr := os.Rename(backup, s.dir); restoreErr == nil {
			logx.Warnf("bundle publish failed, previous bundle restored: %v", err)
		}
		return model.ErrSaveFailed(err)
	}
	os.RemoveAll(backup)

	logx.Infof("bundle %s published to %s", bundle.Version.ID, s.dir)
	return nil
}

func (s *FSArtifactStore) Load(ctx context.Context) (*model.Bundle, error) {
	bundle := &model.Bundle{Network: &model.Network{}, Scaler: &model.Scaler{}}

	required := map[string]any{
		modelFile:      bundle.Network,
		scalerFile:     bundle.Scaler,
		manifestFile:   &bundle.Manifest,
		backgroundFile: &bundle.Background,
	}
	for name, target := range required {
		if err := readJSON(filepath.Join(s.dir, name), target); err != nil {
			if os.IsNotExist(err) {
				return nil, model.ErrNotReady()
			}
			return nil, model.ErrLoadFailed(err)
		}
	}

	// The stamp and report are informational; an older bundle without
	// them still predicts.
	if err := readJSON(filepath.Join(s.dir, versionFile), &bundle.Version); err != nil && !os.IsNotExist(err) {
		return nil, model.ErrLoadFailed(err)
	}
	if err := readJSON(filepath.Join(s.dir, reportFile), &bundle.Report); err != nil && !os.IsNotExist(err) {
		return nil, model.ErrLoadFailed(err)
	}

	if err := bundle.Validate(); err != nil {
		return nil, err
	}
	return bundle, nil
}

func writeJSON(path string, payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readJSON(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}
