package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
	"github.com/Arockiam07/College-Voting-System/internal/service"
)

type CandidateHandler struct {
	candidateService *service.CandidateService
}

func NewCandidateHandler(candidateService *service.CandidateService) *CandidateHandler {
	return &CandidateHandler{
		candidateService: candidateService,
	}
}

// List handles GET /api/candidates?electionId=
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	electionID := r.URL.Query().Get("electionId")

	candidates, err := h.candidateService.List(r.Context(), electionID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, candidates)
}

// Create handles POST /api/candidates
func (h *CandidateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, "Invalid request body")
		return
	}

	candidate, err := h.candidateService.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, candidate)
}

// Update handles PUT /api/candidates/{id}
func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.UpdateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, "Invalid request body")
		return
	}

	candidate, err := h.candidateService.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, candidate)
}

// Delete handles DELETE /api/candidates/{id}
func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.candidateService.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Candidate removed"})
}
