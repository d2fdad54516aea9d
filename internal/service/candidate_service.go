package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
	"github.com/Arockiam07/College-Voting-System/internal/repository"
	apperrors "github.com/Arockiam07/College-Voting-System/pkg/errors"
	"github.com/Arockiam07/College-Voting-System/pkg/redis"
)

// CandidateService handles admin-driven candidate management
type CandidateService struct {
	candidateRepo repository.CandidateRepository
	electionRepo  repository.ElectionRepository
	cache         *CacheService
	logger        *zap.Logger
}

func NewCandidateService(
	candidateRepo repository.CandidateRepository,
	electionRepo repository.ElectionRepository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		electionRepo:  electionRepo,
		cache:         NewCacheService(redisClient, logger),
		logger:        logger,
	}
}

// List returns candidates, filtered by election when electionID is non-empty
func (s *CandidateService) List(ctx context.Context, electionID string) ([]domain.Candidate, error) {
	candidates, err := s.candidateRepo.List(ctx, electionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list candidates", err)
	}
	if candidates == nil {
		candidates = []domain.Candidate{}
	}
	return candidates, nil
}

// Create adds a candidate to an existing election
func (s *CandidateService) Create(ctx context.Context, req *domain.CreateCandidateRequest) (*domain.Candidate, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("Candidate name is required", nil)
	}
	if strings.TrimSpace(req.Department) == "" {
		return nil, apperrors.NewValidationError("Candidate department is required", nil)
	}
	if strings.TrimSpace(req.Year) == "" {
		return nil, apperrors.NewValidationError("Candidate year is required", nil)
	}

	election, err := s.electionRepo.GetByID(ctx, req.ElectionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load election", err)
	}
	if election == nil {
		return nil, apperrors.NewNotFoundError("Election not found")
	}

	candidate := &domain.Candidate{
		Name:       strings.TrimSpace(req.Name),
		Department: req.Department,
		Year:       req.Year,
		Photo:      req.Photo,
		ElectionID: req.ElectionID,
	}

	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, apperrors.NewInternalError("failed to create candidate", err)
	}

	s.cache.InvalidateElectionCaches(req.ElectionID)
	s.logger.Info("Candidate created",
		zap.String("candidate_id", candidate.ID),
		zap.String("election_id", candidate.ElectionID))

	return candidate, nil
}

// Update applies a partial update to a candidate. Moving a candidate to
// another election revalidates that the target election exists.
func (s *CandidateService) Update(ctx context.Context, id string, req *domain.UpdateCandidateRequest) (*domain.Candidate, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, apperrors.NewValidationError("Candidate name cannot be empty", nil)
	}

	if req.ElectionID != nil {
		election, err := s.electionRepo.GetByID(ctx, *req.ElectionID)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to load election", err)
		}
		if election == nil {
			return nil, apperrors.NewNotFoundError("Election not found")
		}
	}

	candidate, err := s.candidateRepo.Update(ctx, id, req)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update candidate", err)
	}
	if candidate == nil {
		return nil, apperrors.NewNotFoundError("Candidate not found")
	}

	s.cache.InvalidateElectionCaches(candidate.ElectionID)
	return candidate, nil
}

// Delete removes a candidate
func (s *CandidateService) Delete(ctx context.Context, id string) error {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return apperrors.NewInternalError("failed to load candidate", err)
	}
	if candidate == nil {
		return apperrors.NewNotFoundError("Candidate not found")
	}

	if _, err := s.candidateRepo.Delete(ctx, id); err != nil {
		return apperrors.NewInternalError("failed to delete candidate", err)
	}

	s.cache.InvalidateElectionCaches(candidate.ElectionID)
	s.logger.Info("Candidate deleted", zap.String("candidate_id", id))
	return nil
}
