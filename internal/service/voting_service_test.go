package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
	apperrors "github.com/Arockiam07/College-Voting-System/pkg/errors"
)

func newVotingServiceForTest(electionRepo *MockElectionRepository, candidateRepo *MockCandidateRepository, ballotRepo *MockBallotRepository) *VotingService {
	return NewVotingService(electionRepo, candidateRepo, ballotRepo, nil, zap.NewNop())
}

func activeElection(id string) *domain.Election {
	return &domain.Election{
		ID:        id,
		Name:      "Student Council President",
		Status:    domain.ElectionStatusActive,
		StartDate: time.Now().Add(-24 * time.Hour),
		EndDate:   time.Now().Add(24 * time.Hour),
	}
}

func TestVotingService_CastVote_Success(t *testing.T) {
	electionRepo := new(MockElectionRepository)
	candidateRepo := new(MockCandidateRepository)
	ballotRepo := new(MockBallotRepository)
	svc := newVotingServiceForTest(electionRepo, candidateRepo, ballotRepo)

	ctx := context.Background()
	election := activeElection("election-1")
	candidate := &domain.Candidate{ID: "candidate-1", Name: "Aditi", ElectionID: "election-1"}

	electionRepo.On("GetByID", ctx, "election-1").Return(election, nil)
	candidateRepo.On("GetByID", ctx, "candidate-1").Return(candidate, nil)
	ballotRepo.On("GetByVoterAndElection", ctx, "voter-1", "election-1").Return(nil, nil)
	ballotRepo.On("Create", ctx, mock.MatchedBy(func(b *domain.Ballot) bool {
		return b.VoterID == "voter-1" && b.ElectionID == "election-1" && b.CandidateID == "candidate-1"
	})).Run(func(args mock.Arguments) {
		ballot := args.Get(1).(*domain.Ballot)
		ballot.ID = "ballot-1"
		ballot.CreatedAt = time.Now()
	}).Return(nil)

	resp, err := svc.CastVote(ctx, "voter-1", &domain.CastVoteRequest{
		ElectionID:  "election-1",
		CandidateID: "candidate-1",
	})

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, "Vote cast successfully", resp.Message)
	assert.False(t, resp.Timestamp.IsZero())
	ballotRepo.AssertExpectations(t)
}

func TestVotingService_CastVote_ElectionNotFound(t *testing.T) {
	electionRepo := new(MockElectionRepository)
	candidateRepo := new(MockCandidateRepository)
	ballotRepo := new(MockBallotRepository)
	svc := newVotingServiceForTest(electionRepo, candidateRepo, ballotRepo)

	ctx := context.Background()
	electionRepo.On("GetByID", ctx, "missing").Return(nil, nil)

	_, err := svc.CastVote(ctx, "voter-1", &domain.CastVoteRequest{
		ElectionID:  "missing",
		CandidateID: "candidate-1",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	candidateRepo.AssertNotCalled(t, "GetByID")
}

func TestVotingService_CastVote_ElectionNotActive(t *testing.T) {
	tests := []struct {
		name   string
		status domain.ElectionStatus
	}{
		{name: "upcoming election", status: domain.ElectionStatusUpcoming},
		{name: "closed election", status: domain.ElectionStatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			electionRepo := new(MockElectionRepository)
			candidateRepo := new(MockCandidateRepository)
			ballotRepo := new(MockBallotRepository)
			svc := newVotingServiceForTest(electionRepo, candidateRepo, ballotRepo)

			ctx := context.Background()
			election := activeElection("election-1")
			election.Status = tt.status
			electionRepo.On("GetByID", ctx, "election-1").Return(election, nil)

			_, err := svc.CastVote(ctx, "voter-1", &domain.CastVoteRequest{
				ElectionID:  "election-1",
				CandidateID: "candidate-1",
			})

			require.Error(t, err)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrorTypeInvalidState, appErr.Type)
			ballotRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestVotingService_CastVote_CandidateNotFound(t *testing.T) {
	electionRepo := new(MockElectionRepository)
	candidateRepo := new(MockCandidateRepository)
	ballotRepo := new(MockBallotRepository)
	svc := newVotingServiceForTest(electionRepo, candidateRepo, ballotRepo)

	ctx := context.Background()
	electionRepo.On("GetByID", ctx, "election-1").Return(activeElection("election-1"), nil)
	candidateRepo.On("GetByID", ctx, "missing").Return(nil, nil)

	_, err := svc.CastVote(ctx, "voter-1", &domain.CastVoteRequest{
		ElectionID:  "election-1",
		CandidateID: "missing",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestVotingService_CastVote_CandidateFromAnotherElection(t *testing.T) {
	electionRepo := new(MockElectionRepository)
	candidateRepo := new(MockCandidateRepository)
	ballotRepo := new(MockBallotRepository)
	svc := newVotingServiceForTest(electionRepo, candidateRepo, ballotRepo)

	ctx := context.Background()
	electionRepo.On("GetByID", ctx, "election-1").Return(activeElection("election-1"), nil)
	candidateRepo.On("GetByID", ctx, "candidate-other").Return(&domain.Candidate{
		ID:         "candidate-other",
		ElectionID: "election-2",
	}, nil)

	_, err := svc.CastVote(ctx, "voter-1", &domain.CastVoteRequest{
		ElectionID:  "election-1",
		CandidateID: "candidate-other",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
	ballotRepo.AssertNotCalled(t, "Create")
}

func TestVotingService_CastVote_AlreadyVoted(t *testing.T) {
	electionRepo := new(MockElectionRepository)
	candidateRepo := new(MockCandidateRepository)
	ballotRepo := new(MockBallotRepository)
	svc := newVotingServiceForTest(electionRepo, candidateRepo, ballotRepo)

	ctx := context.Background()
	electionRepo.On("GetByID", ctx, "election-1").Return(activeElection("election-1"), nil)
	candidateRepo.On("GetByID", ctx, "candidate-1").Return(&domain.Candidate{
		ID:         "candidate-1",
		ElectionID: "election-1",
	}, nil)
	ballotRepo.On("GetByVoterAndElection", ctx, "voter-1", "election-1").Return(&domain.Ballot{
		ID:         "ballot-1",
		VoterID:    "voter-1",
		ElectionID: "election-1",
	}, nil)

	_, err := svc.CastVote(ctx, "voter-1", &domain.CastVoteRequest{
		ElectionID:  "election-1",
		CandidateID: "candidate-1",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	ballotRepo.AssertNotCalled(t, "Create")
}

// Losing the check-then-insert race surfaces the unique violation from
// the store; the caller sees the same conflict as a prior ballot.
func TestVotingService_CastVote_UniqueViolationRace(t *testing.T) {
	electionRepo := new(MockElectionRepository)
	candidateRepo := new(MockCandidateRepository)
	ballotRepo := new(MockBallotRepository)
	svc := newVotingServiceForTest(electionRepo, candidateRepo, ballotRepo)

	ctx := context.Background()
	electionRepo.On("GetByID", ctx, "election-1").Return(activeElection("election-1"), nil)
	candidateRepo.On("GetByID", ctx, "candidate-1").Return(&domain.Candidate{
		ID:         "candidate-1",
		ElectionID: "election-1",
	}, nil)
	ballotRepo.On("GetByVoterAndElection", ctx, "voter-1", "election-1").Return(nil, nil)
	ballotRepo.On("Create", ctx, mock.Anything).Return(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "ballots_voter_election_unique",
	})

	_, err := svc.CastVote(ctx, "voter-1", &domain.CastVoteRequest{
		ElectionID:  "election-1",
		CandidateID: "candidate-1",
	})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestVotingService_GetVoteStatus(t *testing.T) {
	tests := []struct {
		name     string
		ballot   *domain.Ballot
		hasVoted bool
	}{
		{
			name:     "voter with a ballot",
			ballot:   &domain.Ballot{ID: "ballot-1", VoterID: "voter-1", ElectionID: "election-1"},
			hasVoted: true,
		},
		{
			name:     "voter without a ballot",
			ballot:   nil,
			hasVoted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			electionRepo := new(MockElectionRepository)
			candidateRepo := new(MockCandidateRepository)
			ballotRepo := new(MockBallotRepository)
			svc := newVotingServiceForTest(electionRepo, candidateRepo, ballotRepo)

			ctx := context.Background()
			if tt.ballot == nil {
				ballotRepo.On("GetByVoterAndElection", ctx, "voter-1", "election-1").Return(nil, nil)
			} else {
				ballotRepo.On("GetByVoterAndElection", ctx, "voter-1", "election-1").Return(tt.ballot, nil)
			}

			status, err := svc.GetVoteStatus(ctx, "voter-1", "election-1")
			require.NoError(t, err)
			assert.Equal(t, tt.hasVoted, status.HasVoted)
		})
	}
}

func TestVotingService_GetVoteHistory(t *testing.T) {
	electionRepo := new(MockElectionRepository)
	candidateRepo := new(MockCandidateRepository)
	ballotRepo := new(MockBallotRepository)
	svc := newVotingServiceForTest(electionRepo, candidateRepo, ballotRepo)

	ctx := context.Background()
	ballotRepo.On("ListElectionIDsByVoter", ctx, "voter-1").Return([]string{"election-1", "election-2"}, nil)

	history, err := svc.GetVoteHistory(ctx, "voter-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"election-1", "election-2"}, history)
}

func TestVotingService_GetVoteHistory_Empty(t *testing.T) {
	electionRepo := new(MockElectionRepository)
	candidateRepo := new(MockCandidateRepository)
	ballotRepo := new(MockBallotRepository)
	svc := newVotingServiceForTest(electionRepo, candidateRepo, ballotRepo)

	ctx := context.Background()
	ballotRepo.On("ListElectionIDsByVoter", ctx, "voter-new").Return(nil, nil)

	history, err := svc.GetVoteHistory(ctx, "voter-new")
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}
