package service

import (
	"context"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) List(ctx context.Context) ([]domain.TeamRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamRecord), args.Error(1)
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.TeamRecord) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name string) (*domain.TeamRecord, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamRecord), args.Error(1)
}

func (m *MockTeamRepository) UpdateScore(ctx context.Context, name string, score int) error {
	args := m.Called(ctx, name, score)
	return args.Error(0)
}
