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

// ElectionService handles admin-driven election management
type ElectionService struct {
	electionRepo repository.ElectionRepository
	tally        *TallyService
	cache        *CacheService
	logger       *zap.Logger
}

func NewElectionService(
	electionRepo repository.ElectionRepository,
	tally *TallyService,
	redisClient *redis.Client,
	logger *zap.Logger,
) *ElectionService {
	return &ElectionService{
		electionRepo: electionRepo,
		tally:        tally,
		cache:        NewCacheService(redisClient, logger),
		logger:       logger,
	}
}

// List returns all elections enriched with ballot and candidate counts
func (s *ElectionService) List(ctx context.Context) ([]domain.ElectionWithCounts, error) {
	elections, err := s.electionRepo.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list elections", err)
	}

	summaries, err := s.tally.ComputeElectionSummaries(ctx)
	if err != nil {
		return nil, err
	}

	bySummary := make(map[string]domain.ElectionSummary, len(summaries))
	for _, summary := range summaries {
		bySummary[summary.ElectionID] = summary
	}

	enriched := make([]domain.ElectionWithCounts, 0, len(elections))
	for _, election := range elections {
		summary := bySummary[election.ID]
		enriched = append(enriched, domain.ElectionWithCounts{
			Election:       election,
			TotalVotes:     summary.BallotCount,
			CandidateCount: summary.CandidateCount,
		})
	}

	return enriched, nil
}

// Get returns one election
func (s *ElectionService) Get(ctx context.Context, id string) (*domain.Election, error) {
	election, err := s.electionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load election", err)
	}
	if election == nil {
		return nil, apperrors.NewNotFoundError("Election not found")
	}
	return election, nil
}

// Create creates an election. New elections always start as upcoming;
// only an explicit status change opens them for voting.
func (s *ElectionService) Create(ctx context.Context, req *domain.CreateElectionRequest) (*domain.Election, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationError("Election name is required", nil)
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.NewValidationError("End date must be after start date", nil)
	}

	election := &domain.Election{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      domain.ElectionStatusUpcoming,
	}

	if err := s.electionRepo.Create(ctx, election); err != nil {
		return nil, apperrors.NewInternalError("failed to create election", err)
	}

	s.cache.InvalidateElectionCaches(election.ID)
	s.logger.Info("Election created",
		zap.String("election_id", election.ID),
		zap.String("name", election.Name))

	return election, nil
}

// Update applies a partial update to election fields
func (s *ElectionService) Update(ctx context.Context, id string, req *domain.UpdateElectionRequest) (*domain.Election, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, apperrors.NewValidationError("Election name cannot be empty", nil)
	}

	election, err := s.electionRepo.Update(ctx, id, req)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update election", err)
	}
	if election == nil {
		return nil, apperrors.NewNotFoundError("Election not found")
	}

	s.cache.InvalidateElectionCaches(id)
	return election, nil
}

// UpdateStatus performs an admin lifecycle transition. Closing an
// election publishes its results.
func (s *ElectionService) UpdateStatus(ctx context.Context, id string, status domain.ElectionStatus) (*domain.Election, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("Unknown election status", map[string]interface{}{
			"status": string(status),
		})
	}

	publishResults := status == domain.ElectionStatusClosed
	election, err := s.electionRepo.UpdateStatus(ctx, id, status, publishResults)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update election status", err)
	}
	if election == nil {
		return nil, apperrors.NewNotFoundError("Election not found")
	}

	s.cache.InvalidateElectionCaches(id)
	s.logger.Info("Election status changed",
		zap.String("election_id", id),
		zap.String("status", string(status)))

	return election, nil
}

// Delete removes an election and, via the schema, its candidates and ballots
func (s *ElectionService) Delete(ctx context.Context, id string) error {
	deleted, err := s.electionRepo.Delete(ctx, id)
	if err != nil {
		return apperrors.NewInternalError("failed to delete election", err)
	}
	if !deleted {
		return apperrors.NewNotFoundError("Election not found")
	}

	s.cache.InvalidateElectionCaches(id)
	s.logger.Info("Election deleted", zap.String("election_id", id))
	return nil
}
