package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
	"github.com/Arockiam07/College-Voting-System/pkg/database"
)

type PostgresCandidateRepository struct {
	db *database.PostgresDB
}

func NewCandidateRepository(db *database.PostgresDB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, name, department, year, photo, election_id, created_at, updated_at`

func scanCandidate(row pgx.Row, c *domain.Candidate) error {
	return row.Scan(
		&c.ID,
		&c.Name,
		&c.Department,
		&c.Year,
		&c.Photo,
		&c.ElectionID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

// GetByID gets a candidate by ID
func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	var candidate domain.Candidate
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE id = $1`, candidateColumns)

	err := scanCandidate(r.db.Pool.QueryRow(ctx, query, id), &candidate)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	return &candidate, nil
}

// List gets candidates, filtered by election when electionID is non-empty
func (r *PostgresCandidateRepository) List(ctx context.Context, electionID string) ([]domain.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates`, candidateColumns)
	args := []interface{}{}
	if electionID != "" {
		query += ` WHERE election_id = $1`
		args = append(args, electionID)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var candidate domain.Candidate
		if err := scanCandidate(rows, &candidate); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, candidate)
	}

	return candidates, rows.Err()
}

// Create inserts a new candidate
func (r *PostgresCandidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (name, department, year, photo, election_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		candidate.Name,
		candidate.Department,
		candidate.Year,
		candidate.Photo,
		candidate.ElectionID,
	).Scan(&candidate.ID, &candidate.CreatedAt, &candidate.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

// Update applies non-nil fields and returns the updated candidate
func (r *PostgresCandidateRepository) Update(ctx context.Context, id string, req *domain.UpdateCandidateRequest) (*domain.Candidate, error) {
	query := fmt.Sprintf(`
		UPDATE candidates
		SET name        = COALESCE($2, name),
		    department  = COALESCE($3, department),
		    year        = COALESCE($4, year),
		    photo       = COALESCE($5, photo),
		    election_id = COALESCE($6, election_id),
		    updated_at  = now()
		WHERE id = $1
		RETURNING %s
	`, candidateColumns)

	var candidate domain.Candidate
	err := scanCandidate(r.db.Pool.QueryRow(ctx, query, id, req.Name, req.Department, req.Year, req.Photo, req.ElectionID), &candidate)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}

	return &candidate, nil
}

// Delete removes a candidate
func (r *PostgresCandidateRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete candidate: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountByElection returns candidate counts grouped by election
func (r *PostgresCandidateRepository) CountByElection(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT election_id, COUNT(*) FROM candidates GROUP BY election_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to count candidates by election: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var electionID string
		var count int
		if err := rows.Scan(&electionID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan candidate count: %w", err)
		}
		counts[electionID] = count
	}

	return counts, rows.Err()
}

// CountAll returns the total number of candidates
func (r *PostgresCandidateRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return count, nil
}
