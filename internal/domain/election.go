package domain

import "time"

// ElectionStatus is the admin-controlled lifecycle state of an election.
// Status never derives from the clock; only an explicit admin action
// moves an election between states.
type ElectionStatus string

const (
	ElectionStatusUpcoming ElectionStatus = "upcoming"
	ElectionStatusActive   ElectionStatus = "active"
	ElectionStatusClosed   ElectionStatus = "closed"
)

// IsValid reports whether s is a known lifecycle status
func (s ElectionStatus) IsValid() bool {
	switch s {
	case ElectionStatusUpcoming, ElectionStatusActive, ElectionStatusClosed:
		return true
	}
	return false
}

// Election represents an election record
type Election struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          time.Time      `json:"end_date"`
	Status           ElectionStatus `json:"status"`
	ResultsPublished bool           `json:"results_published"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// ElectionWithCounts is an election enriched with aggregate counts for listings
type ElectionWithCounts struct {
	Election
	TotalVotes     int `json:"total_votes"`
	CandidateCount int `json:"candidate_count"`
}

// CreateElectionRequest represents an admin request to create an election.
// New elections always start as upcoming.
type CreateElectionRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// UpdateElectionRequest represents a partial update; nil fields are left unchanged
type UpdateElectionRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// UpdateElectionStatusRequest represents an admin lifecycle transition
type UpdateElectionStatusRequest struct {
	Status ElectionStatus `json:"status"`
}

// ElectionSummary holds per-election aggregate counts computed in one
// grouping pass over the ballot and candidate stores
type ElectionSummary struct {
	ElectionID     string         `json:"election_id"`
	Name           string         `json:"name"`
	Status         ElectionStatus `json:"status"`
	BallotCount    int            `json:"ballot_count"`
	CandidateCount int            `json:"candidate_count"`
}
