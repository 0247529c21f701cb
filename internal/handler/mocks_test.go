package handler

import (
	"context"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
	"github.com/Mukul-only/emojileaderboard/internal/leaderboard"
	"github.com/Mukul-only/emojileaderboard/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) ListTeams(ctx context.Context) ([]domain.TeamRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TeamRecord), args.Error(1)
}

func (m *MockTeamService) CreateTeam(ctx context.Context, team *domain.TeamRecord) (*domain.TeamRecord, error) {
	args := m.Called(ctx, team)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamRecord), args.Error(1)
}

func (m *MockTeamService) UpdateScore(ctx context.Context, name string, score int) (*domain.TeamRecord, error) {
	args := m.Called(ctx, name, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamRecord), args.Error(1)
}

type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) Board() leaderboard.Board {
	args := m.Called()
	return args.Get(0).(leaderboard.Board)
}

func (m *MockBoardService) View(query string, category leaderboard.Category, sortKey leaderboard.SortKey) (leaderboard.Board, leaderboard.View) {
	args := m.Called(query, category, sortKey)
	return args.Get(0).(leaderboard.Board), args.Get(1).(leaderboard.View)
}

func (m *MockBoardService) Refresh(ctx context.Context) (leaderboard.Board, error) {
	args := m.Called(ctx)
	return args.Get(0).(leaderboard.Board), args.Error(1)
}

func (m *MockBoardService) Settings() service.RefreshSettings {
	args := m.Called()
	return args.Get(0).(service.RefreshSettings)
}

func (m *MockBoardService) UpdateSettings(interval *time.Duration, autoRefresh *bool) (service.RefreshSettings, error) {
	args := m.Called(interval, autoRefresh)
	return args.Get(0).(service.RefreshSettings), args.Error(1)
}
