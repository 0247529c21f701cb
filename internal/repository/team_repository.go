package repository

import (
	"context"
	"errors"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
)

var (
	ErrTeamNotFound = errors.New("team not found")
	ErrTeamExists   = errors.New("team already exists")
)

type TeamRepository interface {
	// List возвращает все команды с подтянутыми участниками, по убыванию счёта.
	List(ctx context.Context) ([]domain.TeamRecord, error)
	GetByName(ctx context.Context, name string) (*domain.TeamRecord, error)
	Create(ctx context.Context, team *domain.TeamRecord) error
	UpdateScore(ctx context.Context, name string, score int) error
}
