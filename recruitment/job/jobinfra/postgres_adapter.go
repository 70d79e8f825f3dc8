package jobinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/recruitment/job"
	"github.com/jmoiron/sqlx"
)

// PostgresJobRepository implements job.Repository using PostgreSQL
type PostgresJobRepository struct {
	db *sqlx.DB
}

// NewPostgresJobRepository creates a new PostgreSQL job repository
func NewPostgresJobRepository(db *sqlx.DB) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

const jobColumns = `
	code, title, observations, activities, required_skills,
	contract_type, deadline, urgency, origin, state, professional_level,
	academic_level, english_level, spanish_level, travel_required,
	areas, created_at
`

// LoadAll returns the full snapshot of jobs
func (r *PostgresJobRepository) LoadAll(ctx context.Context) ([]job.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs ORDER BY code`, jobColumns)

	var jobs []job.Job
	if err := r.db.SelectContext(ctx, &jobs, query); err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}

	return jobs, nil
}

// GetByCode retrieves a job by code
func (r *PostgresJobRepository) GetByCode(ctx context.Context, code kernel.JobCode) (*job.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE code = $1`, jobColumns)

	var entity job.Job
	err := r.db.GetContext(ctx, &entity, query, string(code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, job.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job by code: %w", err)
	}

	return &entity, nil
}

// List retrieves jobs with pagination
func (r *PostgresJobRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[job.Job], error) {
	pagination = pagination.WithDefaults()

	// Count total
	var total int
	countQuery := `SELECT COUNT(*) FROM jobs`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	// Calculate pagination
	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := fmt.Sprintf(`
		SELECT %s FROM jobs
		ORDER BY created_at DESC, code
		LIMIT $1 OFFSET $2
	`, jobColumns)

	var jobs []job.Job
	if err := r.db.SelectContext(ctx, &jobs, query, pagination.PageSize, offset); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return &kernel.Paginated[job.Job]{
		Items: jobs,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(jobs) == 0,
	}, nil
}

// Exists checks if a job exists by code
func (r *PostgresJobRepository) Exists(ctx context.Context, code kernel.JobCode) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM jobs WHERE code = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(code))
	if err != nil {
		return false, fmt.Errorf("failed to check job existence: %w", err)
	}

	return exists, nil
}
