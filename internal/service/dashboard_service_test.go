package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
)

func TestDashboardService_GetAdminStats(t *testing.T) {
	electionRepo := new(MockElectionRepository)
	candidateRepo := new(MockCandidateRepository)
	ballotRepo := new(MockBallotRepository)
	tally := NewTallyService(electionRepo, candidateRepo, ballotRepo, nil, zap.NewNop())
	svc := NewDashboardService(electionRepo, candidateRepo, ballotRepo, tally, nil, zap.NewNop())

	ctx := context.Background()
	ballotRepo.On("CountAll", ctx).Return(42, nil)
	candidateRepo.On("CountAll", ctx).Return(9, nil)
	electionRepo.On("CountByStatus", ctx).Return(map[domain.ElectionStatus]int{
		domain.ElectionStatusActive:   1,
		domain.ElectionStatusUpcoming: 2,
		domain.ElectionStatusClosed:   3,
	}, nil)
	electionRepo.On("List", ctx).Return([]domain.Election{
		{ID: "election-1", Name: "Council", Status: domain.ElectionStatusActive},
		{ID: "election-2", Name: "Sports Captain", Status: domain.ElectionStatusClosed},
	}, nil)
	ballotRepo.On("CountByElection", ctx).Return(map[string]int{
		"election-1": 30,
		"election-2": 12,
	}, nil)
	candidateRepo.On("CountByElection", ctx).Return(map[string]int{
		"election-1": 5,
		"election-2": 4,
	}, nil)

	stats, err := svc.GetAdminStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 42, stats.TotalVotes)
	assert.Equal(t, 6, stats.TotalElections)
	assert.Equal(t, 9, stats.TotalCandidates)
	assert.Equal(t, 1, stats.ActiveElections)
	assert.Equal(t, 2, stats.UpcomingElections)
	assert.Equal(t, 3, stats.ClosedElections)

	require.Len(t, stats.VotesPerElection, 2)
	assert.Equal(t, "Council", stats.VotesPerElection[0].Name)
	assert.Equal(t, 30, stats.VotesPerElection[0].Votes)

	require.Len(t, stats.CandidatesPerElection, 2)
	assert.Equal(t, 5, stats.CandidatesPerElection[0].Candidates)
}

func TestDashboardService_GetAdminStats_NoElections(t *testing.T) {
	electionRepo := new(MockElectionRepository)
	candidateRepo := new(MockCandidateRepository)
	ballotRepo := new(MockBallotRepository)
	tally := NewTallyService(electionRepo, candidateRepo, ballotRepo, nil, zap.NewNop())
	svc := NewDashboardService(electionRepo, candidateRepo, ballotRepo, tally, nil, zap.NewNop())

	ctx := context.Background()
	ballotRepo.On("CountAll", ctx).Return(0, nil)
	candidateRepo.On("CountAll", ctx).Return(0, nil)
	electionRepo.On("CountByStatus", ctx).Return(map[domain.ElectionStatus]int{}, nil)
	electionRepo.On("List", ctx).Return([]domain.Election{}, nil)
	ballotRepo.On("CountByElection", ctx).Return(map[string]int{}, nil)
	candidateRepo.On("CountByElection", ctx).Return(map[string]int{}, nil)

	stats, err := svc.GetAdminStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalElections)
	assert.Empty(t, stats.VotesPerElection)
	assert.Empty(t, stats.CandidatesPerElection)
}
