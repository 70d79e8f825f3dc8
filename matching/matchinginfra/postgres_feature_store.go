package matchinginfra

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/decisionhr/talentrank/matching"
	"github.com/decisionhr/talentrank/matching/feature"
	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresFeatureStore implements matching.FeatureStore using PostgreSQL.
// Feature values live in a JSONB column since the one-hot area columns
// vary between rebuilds.
type PostgresFeatureStore struct {
	db *sqlx.DB
}

// NewPostgresFeatureStore creates a new PostgreSQL feature store
func NewPostgresFeatureStore(db *sqlx.DB) *PostgresFeatureStore {
	return &PostgresFeatureStore{
		db: db,
	}
}

type featureRowRecord struct {
	JobCode       string `db:"job_code"`
	CandidateCode string `db:"candidate_code"`
	Outcome       string `db:"outcome"`
	Label         int    `db:"label"`
	Features      []byte `db:"features"`
}

// Replace swaps the persisted feature table inside one transaction
func (s *PostgresFeatureStore) Replace(ctx context.Context, table *feature.Table) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin feature replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM feature_rows`); err != nil {
		return fmt.Errorf("failed to clear feature rows: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM feature_columns`); err != nil {
		return fmt.Errorf("failed to clear feature columns: %w", err)
	}

	for i, name := range table.Columns {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO feature_columns (position, name) VALUES ($1, $2)`, i, name); err != nil {
			return fmt.Errorf("failed to insert feature column: %w", err)
		}
	}

	insert := `
		INSERT INTO feature_rows (job_code, candidate_code, outcome, label, features)
		VALUES (:job_code, :candidate_code, :outcome, :label, :features)
	`
	for _, row := range table.Rows {
		values, err := json.Marshal(row.Values)
		if err != nil {
			return fmt.Errorf("failed to marshal feature values: %w", err)
		}
		record := featureRowRecord{
			JobCode:       row.JobCode.String(),
			CandidateCode: row.CandidateCode.String(),
			Outcome:       string(row.Outcome),
			Label:         row.Label,
			Features:      values,
		}
		if _, err := tx.NamedExecContext(ctx, insert, record); err != nil {
			return fmt.Errorf("failed to insert feature row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit feature replace: %w", err)
	}
	return nil
}

// Columns returns the stored column list in manifest order
func (s *PostgresFeatureStore) Columns(ctx context.Context) ([]string, error) {
	var columns []string
	query := `SELECT name FROM feature_columns ORDER BY position`
	if err := s.db.SelectContext(ctx, &columns, query); err != nil {
		return nil, fmt.Errorf("failed to load feature columns: %w", err)
	}
	return columns, nil
}

// RowsForJob retrieves the stored rows of one job
func (s *PostgresFeatureStore) RowsForJob(ctx context.Context, code kernel.JobCode) ([]feature.Row, error) {
	query := `
		SELECT job_code, candidate_code, outcome, label, features
		FROM feature_rows
		WHERE job_code = $1
		ORDER BY candidate_code
	`
	return s.selectRows(ctx, query, code.String())
}

// RowsForCandidate retrieves the stored rows of one candidate
func (s *PostgresFeatureStore) RowsForCandidate(ctx context.Context, code kernel.CandidateCode) ([]feature.Row, error) {
	query := `
		SELECT job_code, candidate_code, outcome, label, features
		FROM feature_rows
		WHERE candidate_code = $1
		ORDER BY job_code
	`
	return s.selectRows(ctx, query, code.String())
}

func (s *PostgresFeatureStore) selectRows(ctx context.Context, query string, arg string) ([]feature.Row, error) {
	var records []featureRowRecord
	if err := s.db.SelectContext(ctx, &records, query, arg); err != nil {
		return nil, fmt.Errorf("failed to load feature rows: %w", err)
	}

	rows := make([]feature.Row, 0, len(records))
	for _, record := range records {
		values := make(map[string]float64)
		if err := json.Unmarshal(record.Features, &values); err != nil {
			return nil, fmt.Errorf("failed to unmarshal feature values: %w", err)
		}
		rows = append(rows, feature.Row{
			JobCode:       kernel.NewJobCode(record.JobCode),
			CandidateCode: kernel.NewCandidateCode(record.CandidateCode),
			Outcome:       feature.Outcome(record.Outcome),
			Label:         record.Label,
			Values:        values,
		})
	}
	return rows, nil
}

var _ matching.FeatureStore = (*PostgresFeatureStore)(nil)
