package domain

import "time"

// Ballot is one immutable record of a voter's choice in an election.
// The store enforces at most one ballot per (voter, election) pair;
// ballots are created exactly once and never updated or deleted.
type Ballot struct {
	ID          string    `json:"id"`
	VoterID     string    `json:"voter_id"`
	ElectionID  string    `json:"election_id"`
	CandidateID string    `json:"candidate_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// CastVoteRequest represents a vote submission
type CastVoteRequest struct {
	ElectionID  string `json:"election_id"`
	CandidateID string `json:"candidate_id"`
}

// CastVoteResponse acknowledges a recorded ballot. The response never
// echoes the chosen candidate back to the client.
type CastVoteResponse struct {
	OK        bool      `json:"ok"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// VoteStatus reports whether a voter has cast a ballot in an election
type VoteStatus struct {
	HasVoted bool `json:"has_voted"`
}

// CandidateResult is one tally row: a candidate with its vote count.
// Candidates with zero ballots appear with Votes == 0.
type CandidateResult struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Votes       int    `json:"votes"`
}

// ElectionResults is the full tally for one election. Winners holds
// every candidate at the maximum vote count; a tie yields co-winners.
type ElectionResults struct {
	Election   Election          `json:"election"`
	Results    []CandidateResult `json:"results"`
	TotalVotes int               `json:"total_votes"`
	Winners    []CandidateResult `json:"winners"`
}
