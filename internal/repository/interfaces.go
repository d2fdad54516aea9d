package repository

import (
	"context"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
)

// ElectionRepository defines the read/write contract over the election store
type ElectionRepository interface {
	// GetByID retrieves an election by ID, nil if it does not exist
	GetByID(ctx context.Context, id string) (*domain.Election, error)

	// List retrieves all elections
	List(ctx context.Context) ([]domain.Election, error)

	// Create inserts a new election and fills in its generated fields
	Create(ctx context.Context, election *domain.Election) error

	// Update applies non-nil fields of req to an election, returning the
	// updated record or nil if the election does not exist
	Update(ctx context.Context, id string, req *domain.UpdateElectionRequest) (*domain.Election, error)

	// UpdateStatus sets the lifecycle status; publishResults additionally
	// flips the results-visibility flag
	UpdateStatus(ctx context.Context, id string, status domain.ElectionStatus, publishResults bool) (*domain.Election, error)

	// Delete removes an election; dependent candidates and ballots cascade
	Delete(ctx context.Context, id string) (bool, error)

	// CountByStatus returns election counts grouped by lifecycle status
	CountByStatus(ctx context.Context) (map[domain.ElectionStatus]int, error)
}

// CandidateRepository defines the read/write contract over the candidate store
type CandidateRepository interface {
	// GetByID retrieves a candidate by ID, nil if it does not exist
	GetByID(ctx context.Context, id string) (*domain.Candidate, error)

	// List retrieves candidates, optionally filtered by election
	List(ctx context.Context, electionID string) ([]domain.Candidate, error)

	// Create inserts a new candidate and fills in its generated fields
	Create(ctx context.Context, candidate *domain.Candidate) error

	// Update applies non-nil fields of req to a candidate, returning the
	// updated record or nil if the candidate does not exist
	Update(ctx context.Context, id string, req *domain.UpdateCandidateRequest) (*domain.Candidate, error)

	// Delete removes a candidate
	Delete(ctx context.Context, id string) (bool, error)

	// CountByElection returns candidate counts grouped by election in one pass
	CountByElection(ctx context.Context) (map[string]int, error)

	// CountAll returns the total number of candidates
	CountAll(ctx context.Context) (int, error)
}

// BallotRepository defines the contract over the ballot store. Ballots
// are insert-only; the store carries a unique constraint on
// (voter_id, election_id) so a double-submit race surfaces as a
// uniqueness violation instead of a duplicate row.
type BallotRepository interface {
	// Create inserts a ballot and fills in its generated fields
	Create(ctx context.Context, ballot *domain.Ballot) error

	// GetByVoterAndElection retrieves the voter's ballot for an election,
	// nil if none exists
	GetByVoterAndElection(ctx context.Context, voterID, electionID string) (*domain.Ballot, error)

	// ListElectionIDsByVoter returns the elections the voter has cast a ballot in
	ListElectionIDsByVoter(ctx context.Context, voterID string) ([]string, error)

	// CountByCandidate returns ballot counts for one election grouped by candidate
	CountByCandidate(ctx context.Context, electionID string) (map[string]int, error)

	// CountByElection returns ballot counts grouped by election in one pass
	CountByElection(ctx context.Context) (map[string]int, error)

	// CountAll returns the total number of ballots
	CountAll(ctx context.Context) (int, error)
}
