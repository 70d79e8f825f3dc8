package applicationinfra

import (
	"context"
	"fmt"

	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/recruitment/application"
	"github.com/jmoiron/sqlx"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

const applicationColumns = `
	job_code, candidate_code, candidate_name, status, applied_on
`

// LoadAll returns the full snapshot of applications
func (r *PostgresApplicationRepository) LoadAll(ctx context.Context) ([]application.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications ORDER BY job_code, candidate_code`, applicationColumns)

	var apps []application.Application
	if err := r.db.SelectContext(ctx, &apps, query); err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}

	return apps, nil
}

// ListByJob retrieves applications for one job
func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobCode kernel.JobCode) ([]application.Application, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM applications
		WHERE job_code = $1
		ORDER BY applied_on, candidate_code
	`, applicationColumns)

	var apps []application.Application
	if err := r.db.SelectContext(ctx, &apps, query, string(jobCode)); err != nil {
		return nil, fmt.Errorf("failed to list applications by job: %w", err)
	}

	return apps, nil
}

// ListByCandidate retrieves applications of one candidate
func (r *PostgresApplicationRepository) ListByCandidate(ctx context.Context, candidateCode kernel.CandidateCode) ([]application.Application, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM applications
		WHERE candidate_code = $1
		ORDER BY applied_on, job_code
	`, applicationColumns)

	var apps []application.Application
	if err := r.db.SelectContext(ctx, &apps, query, string(candidateCode)); err != nil {
		return nil, fmt.Errorf("failed to list applications by candidate: %w", err)
	}

	return apps, nil
}
