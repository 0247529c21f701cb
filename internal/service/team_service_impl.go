package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
	"github.com/Mukul-only/emojileaderboard/internal/repository"
)

type teamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

func (s *teamService) ListTeams(ctx context.Context) ([]domain.TeamRecord, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, domain.Unavailable(err)
	}
	return domain.NormalizeAll(teams), nil
}

// CreateTeam создает команду с участниками
func (s *teamService) CreateTeam(ctx context.Context, team *domain.TeamRecord) (*domain.TeamRecord, error) {
	if err := validateTeam(team); err != nil {
		return nil, err
	}

	existingTeam, err := s.teamRepo.GetByName(ctx, team.TeamName)
	switch {
	case err == nil && existingTeam != nil:
		return nil, domain.ErrTeamExists
	case err != nil && !errors.Is(err, repository.ErrTeamNotFound):
		return nil, domain.Unavailable(err)
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repository.ErrTeamExists) {
			return nil, domain.ErrTeamExists
		}
		return nil, domain.Unavailable(err)
	}

	return s.getTeam(ctx, team.TeamName)
}

// UpdateScore выставляет команде новый счёт
func (s *teamService) UpdateScore(ctx context.Context, name string, score int) (*domain.TeamRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewBadRequestError("teamName is required")
	}
	if score < 0 {
		return nil, domain.NewBadRequestError("score must not be negative")
	}

	if err := s.teamRepo.UpdateScore(ctx, name, score); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil, domain.NewNotFoundError("team with name " + name)
		}
		return nil, domain.Unavailable(err)
	}

	return s.getTeam(ctx, name)
}

func (s *teamService) getTeam(ctx context.Context, name string) (*domain.TeamRecord, error) {
	team, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return nil, domain.NewNotFoundError("team with name " + name)
		}
		return nil, domain.Unavailable(err)
	}

	normalized := team.Normalize()
	return &normalized, nil
}

func validateTeam(team *domain.TeamRecord) error {
	team.TeamName = strings.TrimSpace(team.TeamName)
	if team.TeamName == "" {
		return domain.NewBadRequestError("teamName is required")
	}
	if team.Score < 0 {
		return domain.NewBadRequestError("score must not be negative")
	}
	if len(team.Members) > domain.MaxMembers {
		return domain.NewBadRequestError("a team has at most %d members, got %d", domain.MaxMembers, len(team.Members))
	}
	for i := range team.Members {
		team.Members[i].Name = strings.TrimSpace(team.Members[i].Name)
		team.Members[i].RollNumber = strings.TrimSpace(team.Members[i].RollNumber)
		if team.Members[i].Name == "" {
			return domain.NewBadRequestError("member %d: name is required", i+1)
		}
	}
	return nil
}
