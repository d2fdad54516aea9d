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

// TallyService is the read path of the election core: it aggregates
// ballots into per-candidate counts. Output ordering is unspecified;
// presentation sorting is a caller concern.
type TallyService struct {
	electionRepo  repository.ElectionRepository
	candidateRepo repository.CandidateRepository
	ballotRepo    repository.BallotRepository
	cache         *CacheService
	logger        *zap.Logger
}

func NewTallyService(
	electionRepo repository.ElectionRepository,
	candidateRepo repository.CandidateRepository,
	ballotRepo repository.BallotRepository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *TallyService {
	return &TallyService{
		electionRepo:  electionRepo,
		candidateRepo: candidateRepo,
		ballotRepo:    ballotRepo,
		cache:         NewCacheService(redisClient, logger),
		logger:        logger,
	}
}

// ComputeResults tallies one election: every candidate of the election
// appears exactly once, defaulting to zero votes. All candidates sharing
// the maximum count are reported as co-winners; a tie never collapses to
// an arbitrary single winner.
func (s *TallyService) ComputeResults(ctx context.Context, electionID string) (*domain.ElectionResults, error) {
	if keys := s.cache.Keys(); keys != nil {
		if cached := s.cache.GetCachedJSON(ctx, keys.KeyElectionResults(electionID)); cached != "" {
			var results domain.ElectionResults
			if err := json.Unmarshal([]byte(cached), &results); err == nil {
				return &results, nil
			}
		}
	}

	election, err := s.electionRepo.GetByID(ctx, electionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load election", err)
	}
	if election == nil {
		return nil, apperrors.NewNotFoundError("Election not found")
	}

	candidates, err := s.candidateRepo.List(ctx, electionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load candidates", err)
	}

	counts, err := s.ballotRepo.CountByCandidate(ctx, electionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count ballots", err)
	}

	results := make([]domain.CandidateResult, 0, len(candidates))
	totalVotes := 0
	for _, candidate := range candidates {
		votes := counts[candidate.ID]
		totalVotes += votes
		results = append(results, domain.CandidateResult{
			CandidateID: candidate.ID,
			Name:        candidate.Name,
			Department:  candidate.Department,
			Votes:       votes,
		})
	}

	response := &domain.ElectionResults{
		Election:   *election,
		Results:    results,
		TotalVotes: totalVotes,
		Winners:    coWinners(results),
	}

	if keys := s.cache.Keys(); keys != nil {
		if data, err := json.Marshal(response); err == nil {
			s.cache.SetCachedJSON(ctx, keys.KeyElectionResults(electionID), string(data), redis.TTLResults)
		}
	}

	return response, nil
}

// ComputeElectionSummaries returns ballot and candidate counts for every
// election, computed with one grouping pass over each store rather than
// per-election queries in a loop.
func (s *TallyService) ComputeElectionSummaries(ctx context.Context) ([]domain.ElectionSummary, error) {
	elections, err := s.electionRepo.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list elections", err)
	}

	ballotCounts, err := s.ballotRepo.CountByElection(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count ballots", err)
	}

	candidateCounts, err := s.candidateRepo.CountByElection(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to count candidates", err)
	}

	summaries := make([]domain.ElectionSummary, 0, len(elections))
	for _, election := range elections {
		summaries = append(summaries, domain.ElectionSummary{
			ElectionID:     election.ID,
			Name:           election.Name,
			Status:         election.Status,
			BallotCount:    ballotCounts[election.ID],
			CandidateCount: candidateCounts[election.ID],
		})
	}

	return summaries, nil
}

// coWinners returns every candidate at the maximum vote count. An
// election with no ballots has no winners.
func coWinners(results []domain.CandidateResult) []domain.CandidateResult {
	maxVotes := 0
	for _, r := range results {
		if r.Votes > maxVotes {
			maxVotes = r.Votes
		}
	}

	winners := []domain.CandidateResult{}
	if maxVotes == 0 {
		return winners
	}
	for _, r := range results {
		if r.Votes == maxVotes {
			winners = append(winners, r)
		}
	}
	return winners
}
