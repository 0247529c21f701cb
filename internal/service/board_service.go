package service

import (
	"context"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/leaderboard"
)

// RefreshSettings - текущие настройки цикла обновления.
type RefreshSettings struct {
	Interval    time.Duration
	AutoRefresh bool
}

type BoardService interface {
	Board() leaderboard.Board
	// View возвращает таблицу и её проекцию, построенные из одного снимка.
	View(query string, category leaderboard.Category, sortKey leaderboard.SortKey) (leaderboard.Board, leaderboard.View)
	Refresh(ctx context.Context) (leaderboard.Board, error)
	Settings() RefreshSettings
	// UpdateSettings меняет только переданные (не nil) поля.
	UpdateSettings(interval *time.Duration, autoRefresh *bool) (RefreshSettings, error)
}
