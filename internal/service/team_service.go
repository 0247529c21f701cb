package service

import (
	"context"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
)

type TeamService interface {
	// ListTeams возвращает все команды по убыванию счёта. Подходит как источник
	// для refresher.SourceFunc.
	ListTeams(ctx context.Context) ([]domain.TeamRecord, error)
	CreateTeam(ctx context.Context, team *domain.TeamRecord) (*domain.TeamRecord, error)
	UpdateScore(ctx context.Context, name string, score int) (*domain.TeamRecord, error)
}
