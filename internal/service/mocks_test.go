package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Arockiam07/College-Voting-System/internal/domain"
)

// MockElectionRepository is a testify mock over the election store
type MockElectionRepository struct {
	mock.Mock
}

func (m *MockElectionRepository) GetByID(ctx context.Context, id string) (*domain.Election, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Election), args.Error(1)
}

func (m *MockElectionRepository) List(ctx context.Context) ([]domain.Election, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Election), args.Error(1)
}

func (m *MockElectionRepository) Create(ctx context.Context, election *domain.Election) error {
	args := m.Called(ctx, election)
	return args.Error(0)
}

func (m *MockElectionRepository) Update(ctx context.Context, id string, req *domain.UpdateElectionRequest) (*domain.Election, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Election), args.Error(1)
}

func (m *MockElectionRepository) UpdateStatus(ctx context.Context, id string, status domain.ElectionStatus, publishResults bool) (*domain.Election, error) {
	args := m.Called(ctx, id, status, publishResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Election), args.Error(1)
}

func (m *MockElectionRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockElectionRepository) CountByStatus(ctx context.Context) (map[domain.ElectionStatus]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.ElectionStatus]int), args.Error(1)
}

// MockCandidateRepository is a testify mock over the candidate store
type MockCandidateRepository struct {
	mock.Mock
}

func (m *MockCandidateRepository) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepository) List(ctx context.Context, electionID string) ([]domain.Candidate, error) {
	args := m.Called(ctx, electionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	args := m.Called(ctx, candidate)
	return args.Error(0)
}

func (m *MockCandidateRepository) Update(ctx context.Context, id string, req *domain.UpdateCandidateRequest) (*domain.Candidate, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCandidateRepository) CountByElection(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockCandidateRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockBallotRepository is a testify mock over the ballot store
type MockBallotRepository struct {
	mock.Mock
}

func (m *MockBallotRepository) Create(ctx context.Context, ballot *domain.Ballot) error {
	args := m.Called(ctx, ballot)
	return args.Error(0)
}

func (m *MockBallotRepository) GetByVoterAndElection(ctx context.Context, voterID, electionID string) (*domain.Ballot, error) {
	args := m.Called(ctx, voterID, electionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ballot), args.Error(1)
}

func (m *MockBallotRepository) ListElectionIDsByVoter(ctx context.Context, voterID string) ([]string, error) {
	args := m.Called(ctx, voterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBallotRepository) CountByCandidate(ctx context.Context, electionID string) (map[string]int, error) {
	args := m.Called(ctx, electionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockBallotRepository) CountByElection(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockBallotRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
