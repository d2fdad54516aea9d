package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
	"github.com/Arockiam07/College-Voting-System/pkg/database"
)

type PostgresBallotRepository struct {
	db *database.PostgresDB
}

func NewBallotRepository(db *database.PostgresDB) *PostgresBallotRepository {
	return &PostgresBallotRepository{db: db}
}

// Create inserts a ballot. The ballots table carries a unique constraint
// on (voter_id, election_id), so a concurrent double cast fails here with
// a pgconn unique-violation error instead of inserting a second row.
func (r *PostgresBallotRepository) Create(ctx context.Context, ballot *domain.Ballot) error {
	query := `
		INSERT INTO ballots (voter_id, election_id, candidate_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		ballot.VoterID,
		ballot.ElectionID,
		ballot.CandidateID,
	).Scan(&ballot.ID, &ballot.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create ballot: %w", err)
	}

	return nil
}

// GetByVoterAndElection gets a voter's ballot for an election
func (r *PostgresBallotRepository) GetByVoterAndElection(ctx context.Context, voterID, electionID string) (*domain.Ballot, error) {
	var ballot domain.Ballot
	query := `
		SELECT id, voter_id, election_id, candidate_id, created_at
		FROM ballots
		WHERE voter_id = $1 AND election_id = $2
	`

	err := r.db.Pool.QueryRow(ctx, query, voterID, electionID).Scan(
		&ballot.ID,
		&ballot.VoterID,
		&ballot.ElectionID,
		&ballot.CandidateID,
		&ballot.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ballot: %w", err)
	}

	return &ballot, nil
}

// ListElectionIDsByVoter returns the elections the voter has voted in
func (r *PostgresBallotRepository) ListElectionIDsByVoter(ctx context.Context, voterID string) ([]string, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT election_id FROM ballots WHERE voter_id = $1 ORDER BY created_at`, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vote history: %w", err)
	}
	defer rows.Close()

	var electionIDs []string
	for rows.Next() {
		var electionID string
		if err := rows.Scan(&electionID); err != nil {
			return nil, fmt.Errorf("failed to scan election id: %w", err)
		}
		electionIDs = append(electionIDs, electionID)
	}

	return electionIDs, rows.Err()
}

// CountByCandidate returns ballot counts for one election grouped by candidate
func (r *PostgresBallotRepository) CountByCandidate(ctx context.Context, electionID string) (map[string]int, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT candidate_id, COUNT(*) FROM ballots WHERE election_id = $1 GROUP BY candidate_id`, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count ballots by candidate: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var candidateID string
		var count int
		if err := rows.Scan(&candidateID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan ballot count: %w", err)
		}
		counts[candidateID] = count
	}

	return counts, rows.Err()
}

// CountByElection returns ballot counts grouped by election in one pass
func (r *PostgresBallotRepository) CountByElection(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT election_id, COUNT(*) FROM ballots GROUP BY election_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to count ballots by election: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var electionID string
		var count int
		if err := rows.Scan(&electionID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan ballot count: %w", err)
		}
		counts[electionID] = count
	}

	return counts, rows.Err()
}

// CountAll returns the total number of ballots
func (r *PostgresBallotRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM ballots`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count ballots: %w", err)
	}
	return count, nil
}
