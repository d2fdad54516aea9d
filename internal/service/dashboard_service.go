package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
	"github.com/Arockiam07/College-Voting-System/internal/repository"
	apperrors "github.com/Arockiam07/College-Voting-System/pkg/errors"
	"github.com/Arockiam07/College-Voting-System/pkg/redis"
)

// DashboardService derives admin summary statistics by composing the
// tally engine's aggregates with store-level counts. Thin by design.
type DashboardService struct {
	electionRepo  repository.ElectionRepository
	candidateRepo repository.CandidateRepository
	ballotRepo    repository.BallotRepository
	tally         *TallyService
	cache         *CacheService
	logger        *zap.Logger
}

func NewDashboardService(
	electionRepo repository.ElectionRepository,
	candidateRepo repository.CandidateRepository,
	ballotRepo repository.BallotRepository,
	tally *TallyService,
	redisClient *redis.Client,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		electionRepo:  electionRepo,
		candidateRepo: candidateRepo,
		ballotRepo:    ballotRepo,
		tally:         tally,
		cache:         NewCacheService(redisClient, logger),
		logger:        logger,
	}
}

// GetAdminStats computes the admin dashboard aggregate
func (s *DashboardService) GetAdminStats(ctx context.Context) (*domain.DashboardStats, error) {
	if keys := s.cache.Keys(); keys != nil {
		if cached := s.cache.GetCachedJSON(ctx, keys.KeyDashboardStats()); cached != "" {
			var stats domain.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	totalVotes, err := s.ballotRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count ballots", err)
	}

	totalCandidates, err := s.candidateRepo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count candidates", err)
	}

	statusCounts, err := s.electionRepo.CountByStatus(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count elections", err)
	}

	summaries, err := s.tally.ComputeElectionSummaries(ctx)
	if err != nil {
		return nil, err
	}

	totalElections := 0
	for _, count := range statusCounts {
		totalElections += count
	}

	votesPerElection := make([]domain.ElectionVotes, 0, len(summaries))
	candidatesPerElection := make([]domain.ElectionCandidates, 0, len(summaries))
	for _, summary := range summaries {
		votesPerElection = append(votesPerElection, domain.ElectionVotes{
			Name:  summary.Name,
			Votes: summary.BallotCount,
		})
		candidatesPerElection = append(candidatesPerElection, domain.ElectionCandidates{
			Name:       summary.Name,
			Candidates: summary.CandidateCount,
		})
	}

	stats := &domain.DashboardStats{
		TotalVotes:            totalVotes,
		TotalElections:        totalElections,
		TotalCandidates:       totalCandidates,
		ActiveElections:       statusCounts[domain.ElectionStatusActive],
		UpcomingElections:     statusCounts[domain.ElectionStatusUpcoming],
		ClosedElections:       statusCounts[domain.ElectionStatusClosed],
		VotesPerElection:      votesPerElection,
		CandidatesPerElection: candidatesPerElection,
	}

	if keys := s.cache.Keys(); keys != nil {
		if data, err := json.Marshal(stats); err == nil {
			s.cache.SetCachedJSON(ctx, keys.KeyDashboardStats(), string(data), redis.TTLDashboard)
		}
	}

	return stats, nil
}
