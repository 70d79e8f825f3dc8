package candidateinfra

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/decisionhr/talentrank/pkg/kernel"
	"github.com/decisionhr/talentrank/recruitment/candidate"
	"github.com/jmoiron/sqlx"
)

// PostgresCandidateRepository implements candidate.Repository using PostgreSQL
type PostgresCandidateRepository struct {
	db *sqlx.DB
}

// NewPostgresCandidateRepository creates a new PostgreSQL candidate repository
func NewPostgresCandidateRepository(db *sqlx.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{
		db: db,
	}
}

const candidateColumns = `
	code, name, cv, area, academic_level, english_level, spanish_level, created_at
`

// LoadAll returns the full snapshot of candidates
func (r *PostgresCandidateRepository) LoadAll(ctx context.Context) ([]candidate.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates ORDER BY code`, candidateColumns)

	var candidates []candidate.Candidate
	if err := r.db.SelectContext(ctx, &candidates, query); err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	return candidates, nil
}

// GetByCode retrieves a candidate by code
func (r *PostgresCandidateRepository) GetByCode(ctx context.Context, code kernel.CandidateCode) (*candidate.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE code = $1`, candidateColumns)

	var entity candidate.Candidate
	err := r.db.GetContext(ctx, &entity, query, string(code))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, candidate.ErrCandidateNotFound()
		}
		return nil, fmt.Errorf("failed to get candidate by code: %w", err)
	}

	return &entity, nil
}

// List retrieves candidates with pagination
func (r *PostgresCandidateRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[candidate.Candidate], error) {
	pagination = pagination.WithDefaults()

	var total int
	countQuery := `SELECT COUNT(*) FROM candidates`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := (total + pagination.PageSize - 1) / pagination.PageSize

	query := fmt.Sprintf(`
		SELECT %s FROM candidates
		ORDER BY created_at DESC, code
		LIMIT $1 OFFSET $2
	`, candidateColumns)

	var candidates []candidate.Candidate
	if err := r.db.SelectContext(ctx, &candidates, query, pagination.PageSize, offset); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return &kernel.Paginated[candidate.Candidate]{
		Items: candidates,
		Page: kernel.Page{
			Number: pagination.Page,
			Size:   pagination.PageSize,
			Total:  total,
			Pages:  totalPages,
		},
		Empty: len(candidates) == 0,
	}, nil
}

// Exists checks if a candidate exists by code
func (r *PostgresCandidateRepository) Exists(ctx context.Context, code kernel.CandidateCode) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM candidates WHERE code = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, string(code))
	if err != nil {
		return false, fmt.Errorf("failed to check candidate existence: %w", err)
	}

	return exists, nil
}
