package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
	"github.com/Arockiam07/College-Voting-System/pkg/database"
)

type PostgresElectionRepository struct {
	db *database.PostgresDB
}

func NewElectionRepository(db *database.PostgresDB) *PostgresElectionRepository {
	return &PostgresElectionRepository{db: db}
}

const electionColumns = `id, name, description, start_date, end_date, status, results_published, created_at, updated_at`

func scanElection(row pgx.Row, e *domain.Election) error {
	return row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&e.StartDate,
		&e.EndDate,
		&e.Status,
		&e.ResultsPublished,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
}

// GetByID gets an election by ID
func (r *PostgresElectionRepository) GetByID(ctx context.Context, id string) (*domain.Election, error) {
	var election domain.Election
	query := fmt.Sprintf(`SELECT %s FROM elections WHERE id = $1`, electionColumns)

	err := scanElection(r.db.Pool.QueryRow(ctx, query, id), &election)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get election: %w", err)
	}

	return &election, nil
}

// List gets all elections, newest first
func (r *PostgresElectionRepository) List(ctx context.Context) ([]domain.Election, error) {
	query := fmt.Sprintf(`SELECT %s FROM elections ORDER BY created_at DESC`, electionColumns)

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list elections: %w", err)
	}
	defer rows.Close()

	var elections []domain.Election
	for rows.Next() {
		var election domain.Election
		if err := scanElection(rows, &election); err != nil {
			return nil, fmt.Errorf("failed to scan election: %w", err)
		}
		elections = append(elections, election)
	}

	return elections, rows.Err()
}

// Create inserts a new election
func (r *PostgresElectionRepository) Create(ctx context.Context, election *domain.Election) error {
	query := `
		INSERT INTO elections (name, description, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, results_published, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		election.Name,
		election.Description,
		election.StartDate,
		election.EndDate,
		election.Status,
	).Scan(&election.ID, &election.ResultsPublished, &election.CreatedAt, &election.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create election: %w", err)
	}

	return nil
}

// Update applies non-nil fields and returns the updated election
func (r *PostgresElectionRepository) Update(ctx context.Context, id string, req *domain.UpdateElectionRequest) (*domain.Election, error) {
	query := fmt.Sprintf(`
		UPDATE elections
		SET name        = COALESCE($2, name),
		    description = COALESCE($3, description),
		    start_date  = COALESCE($4, start_date),
		    end_date    = COALESCE($5, end_date),
		    updated_at  = now()
		WHERE id = $1
		RETURNING %s
	`, electionColumns)

	var election domain.Election
	err := scanElection(r.db.Pool.QueryRow(ctx, query, id, req.Name, req.Description, req.StartDate, req.EndDate), &election)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update election: %w", err)
	}

	return &election, nil
}

// UpdateStatus sets the lifecycle status and optionally publishes results
func (r *PostgresElectionRepository) UpdateStatus(ctx context.Context, id string, status domain.ElectionStatus, publishResults bool) (*domain.Election, error) {
	query := fmt.Sprintf(`
		UPDATE elections
		SET status            = $2,
		    results_published = results_published OR $3,
		    updated_at        = now()
		WHERE id = $1
		RETURNING %s
	`, electionColumns)

	var election domain.Election
	err := scanElection(r.db.Pool.QueryRow(ctx, query, id, status, publishResults), &election)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update election status: %w", err)
	}

	return &election, nil
}

// Delete removes an election; the schema cascades to candidates and ballots
func (r *PostgresElectionRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM elections WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete election: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// CountByStatus returns election counts grouped by lifecycle status
func (r *PostgresElectionRepository) CountByStatus(ctx context.Context) (map[domain.ElectionStatus]int, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT status, COUNT(*) FROM elections GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count elections by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ElectionStatus]int)
	for rows.Next() {
		var status domain.ElectionStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
