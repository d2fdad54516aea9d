package domain

import "time"

// Candidate represents a candidate standing in exactly one election
type Candidate struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Year       string    `json:"year"`
	Photo      string    `json:"photo,omitempty"`
	ElectionID string    `json:"election_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateCandidateRequest represents an admin request to add a candidate
type CreateCandidateRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Year       string `json:"year"`
	Photo      string `json:"photo,omitempty"`
	ElectionID string `json:"election_id"`
}

// UpdateCandidateRequest represents a partial update; nil fields are left unchanged
type UpdateCandidateRequest struct {
	Name       *string `json:"name,omitempty"`
	Department *string `json:"department,omitempty"`
	Year       *string `json:"year,omitempty"`
	Photo      *string `json:"photo,omitempty"`
	ElectionID *string `json:"election_id,omitempty"`
}
