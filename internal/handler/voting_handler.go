package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
	"github.com/Arockiam07/College-Voting-System/internal/middleware"
	"github.com/Arockiam07/College-Voting-System/internal/service"
	apperrors "github.com/Arockiam07/College-Voting-System/pkg/errors"
)

type VotingHandler struct {
	votingService *service.VotingService
}

func NewVotingHandler(votingService *service.VotingService) *VotingHandler {
	return &VotingHandler{
		votingService: votingService,
	}
}

// CastVote handles POST /api/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	voterID := h.getVoterID(r)
	if voterID == "" {
		respondError(w, apperrors.NewAuthenticationError("Authentication required"))
		return
	}

	var req domain.CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, "Invalid request body")
		return
	}

	if err := validateCastVoteRequest(&req); err != nil {
		respondValidationError(w, err.Error())
		return
	}

	response, err := h.votingService.CastVote(ctx, voterID, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, response)
}

// GetVoteStatus handles GET /api/votes/status?electionId=
func (h *VotingHandler) GetVoteStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	voterID := h.getVoterID(r)
	if voterID == "" {
		respondError(w, apperrors.NewAuthenticationError("Authentication required"))
		return
	}

	electionID := r.URL.Query().Get("electionId")
	if electionID == "" {
		respondValidationError(w, "electionId query parameter is required")
		return
	}

	status, err := h.votingService.GetVoteStatus(ctx, voterID, electionID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, status)
}

// GetVoteHistory handles GET /api/votes/history
func (h *VotingHandler) GetVoteHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	voterID := h.getVoterID(r)
	if voterID == "" {
		respondError(w, apperrors.NewAuthenticationError("Authentication required"))
		return
	}

	electionIDs, err := h.votingService.GetVoteHistory(ctx, voterID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, electionIDs)
}

// getVoterID reads the authenticated identity placed in the context by
// the auth middleware. Empty when the request is unauthenticated.
func (h *VotingHandler) getVoterID(r *http.Request) string {
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		return user.Sub
	}
	return ""
}

func validateCastVoteRequest(req *domain.CastVoteRequest) error {
	if req.ElectionID == "" {
		return fmt.Errorf("election_id is required")
	}
	if req.CandidateID == "" {
		return fmt.Errorf("candidate_id is required")
	}
	return nil
}
