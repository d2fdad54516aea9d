package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
	"github.com/Arockiam07/College-Voting-System/internal/repository"
	apperrors "github.com/Arockiam07/College-Voting-System/pkg/errors"
	"github.com/Arockiam07/College-Voting-System/pkg/redis"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation; the ballots (voter_id, election_id) constraint turns the
// double-cast race into this error.
const uniqueViolation = "23505"

// VotingService is the write path of the election core: it validates a
// vote attempt against election state and prior-vote state, then records
// the ballot atomically via the store-level uniqueness constraint.
type VotingService struct {
	electionRepo  repository.ElectionRepository
	candidateRepo repository.CandidateRepository
	ballotRepo    repository.BallotRepository
	cache         *CacheService
	logger        *zap.Logger
}

func NewVotingService(
	electionRepo repository.ElectionRepository,
	candidateRepo repository.CandidateRepository,
	ballotRepo repository.BallotRepository,
	redisClient *redis.Client,
	logger *zap.Logger,
) *VotingService {
	return &VotingService{
		electionRepo:  electionRepo,
		candidateRepo: candidateRepo,
		ballotRepo:    ballotRepo,
		cache:         NewCacheService(redisClient, logger),
		logger:        logger,
	}
}

// CastVote validates and records one ballot for the voter. Preconditions
// are checked in order, first failure wins: election exists, election is
// active, candidate exists, candidate belongs to the election, voter has
// not already voted. The insert itself is the authority on uniqueness;
// the prior-ballot read only exists to answer the common case cheaply.
func (s *VotingService) CastVote(ctx context.Context, voterID string, req *domain.CastVoteRequest) (*domain.CastVoteResponse, error) {
	election, err := s.electionRepo.GetByID(ctx, req.ElectionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load election", err)
	}
	if election == nil {
		return nil, apperrors.NewNotFoundError("Election not found")
	}

	if election.Status != domain.ElectionStatusActive {
		return nil, apperrors.NewInvalidStateError("Election is not open for voting")
	}

	candidate, err := s.candidateRepo.GetByID(ctx, req.CandidateID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load candidate", err)
	}
	if candidate == nil {
		return nil, apperrors.NewNotFoundError("Candidate not found")
	}

	// Candidate IDs are client-supplied; reject a candidate standing in a
	// different election instead of recording a cross-election ballot.
	if candidate.ElectionID != election.ID {
		return nil, apperrors.NewValidationError("Candidate does not belong to this election", map[string]interface{}{
			"candidate_id": candidate.ID,
			"election_id":  election.ID,
		})
	}

	if s.cache.VoterHasVotedCached(ctx, election.ID, voterID) {
		return nil, apperrors.NewConflictError("You have already voted in this election")
	}

	existing, err := s.ballotRepo.GetByVoterAndElection(ctx, voterID, election.ID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to check existing ballot", err)
	}
	if existing != nil {
		_ = s.cache.CacheBallotCast(ctx, election.ID, voterID)
		return nil, apperrors.NewConflictError("You have already voted in this election")
	}

	ballot := &domain.Ballot{
		VoterID:     voterID,
		ElectionID:  election.ID,
		CandidateID: candidate.ID,
	}

	if err := s.ballotRepo.Create(ctx, ballot); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			// Lost the check-then-insert race; the constraint kept the
			// invariant, so surface it the same as a prior ballot.
			_ = s.cache.CacheBallotCast(ctx, election.ID, voterID)
			return nil, apperrors.NewConflictError("You have already voted in this election")
		}
		return nil, apperrors.NewInternalError("failed to record ballot", err)
	}

	if err := s.cache.CacheBallotCast(ctx, election.ID, voterID); err != nil {
		// Cache failure never fails the cast; the store holds the truth
		s.logger.Warn("Failed to cache ballot cast", zap.String("election_id", election.ID), zap.Error(err))
	}
	s.cache.InvalidateResultCaches(election.ID)

	s.logger.Info("Ballot recorded",
		zap.String("election_id", election.ID),
		zap.Time("cast_at", ballot.CreatedAt))

	return &domain.CastVoteResponse{
		OK:        true,
		Message:   "Vote cast successfully",
		Timestamp: ballot.CreatedAt,
	}, nil
}

// GetVoteStatus reports whether the voter has a ballot in the election
func (s *VotingService) GetVoteStatus(ctx context.Context, voterID, electionID string) (*domain.VoteStatus, error) {
	if s.cache.VoterHasVotedCached(ctx, electionID, voterID) {
		return &domain.VoteStatus{HasVoted: true}, nil
	}

	ballot, err := s.ballotRepo.GetByVoterAndElection(ctx, voterID, electionID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to check vote status", err)
	}

	if ballot != nil {
		_ = s.cache.CacheBallotCast(ctx, electionID, voterID)
	}

	return &domain.VoteStatus{HasVoted: ballot != nil}, nil
}

// GetVoteHistory returns the elections the voter has cast a ballot in
func (s *VotingService) GetVoteHistory(ctx context.Context, voterID string) ([]string, error) {
	electionIDs, err := s.ballotRepo.ListElectionIDsByVoter(ctx, voterID)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load vote history", err)
	}
	if electionIDs == nil {
		electionIDs = []string{}
	}
	return electionIDs, nil
}

// HealthCheck verifies the service's cache dependency
func (s *VotingService) HealthCheck(ctx context.Context) error {
	if err := s.cache.HealthCheck(ctx); err != nil {
		return fmt.Errorf("cache health check failed: %w", err)
	}
	return nil
}
