package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
	"github.com/Arockiam07/College-Voting-System/internal/service"
)

type ElectionHandler struct {
	electionService *service.ElectionService
	tallyService    *service.TallyService
}

func NewElectionHandler(electionService *service.ElectionService, tallyService *service.TallyService) *ElectionHandler {
	return &ElectionHandler{
		electionService: electionService,
		tallyService:    tallyService,
	}
}

// List handles GET /api/elections
func (h *ElectionHandler) List(w http.ResponseWriter, r *http.Request) {
	elections, err := h.electionService.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeCachedJSON(w, r, 10, elections)
}

// Get handles GET /api/elections/{id}
func (h *ElectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	election, err := h.electionService.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeCachedJSON(w, r, 10, election)
}

// Create handles POST /api/elections
func (h *ElectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateElectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, "Invalid request body")
		return
	}

	election, err := h.electionService.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, election)
}

// Update handles PUT /api/elections/{id}
func (h *ElectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.UpdateElectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, "Invalid request body")
		return
	}

	election, err := h.electionService.Update(r.Context(), id, &req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, election)
}

// UpdateStatus handles PATCH /api/elections/{id}/status
func (h *ElectionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.UpdateElectionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondValidationError(w, "Invalid request body")
		return
	}

	election, err := h.electionService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, election)
}

// Delete handles DELETE /api/elections/{id}
func (h *ElectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.electionService.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Election removed"})
}

// GetResults handles GET /api/elections/{id}/results
func (h *ElectionHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	results, err := h.tallyService.ComputeResults(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeCachedJSON(w, r, 30, results)
}
