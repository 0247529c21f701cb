package service

import (
	"context"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/leaderboard"
	"github.com/Mukul-only/emojileaderboard/internal/refresher"
)

type boardService struct {
	tracker   *leaderboard.Tracker
	refresher *refresher.Refresher
	opts      leaderboard.ViewOptions
}

func NewBoardService(tracker *leaderboard.Tracker, r *refresher.Refresher, locale string) BoardService {
	return &boardService{
		tracker:   tracker,
		refresher: r,
		opts:      leaderboard.ViewOptions{Locale: locale},
	}
}

func (s *boardService) Board() leaderboard.Board {
	return s.tracker.Board()
}

func (s *boardService) View(query string, category leaderboard.Category, sortKey leaderboard.SortKey) (leaderboard.Board, leaderboard.View) {
	board := s.tracker.Board()
	return board, board.View(query, category, sortKey, s.opts)
}

func (s *boardService) Refresh(ctx context.Context) (leaderboard.Board, error) {
	return s.refresher.Refresh(ctx)
}

func (s *boardService) Settings() RefreshSettings {
	return RefreshSettings{
		Interval:    s.refresher.Interval(),
		AutoRefresh: s.refresher.AutoRefresh(),
	}
}

func (s *boardService) UpdateSettings(interval *time.Duration, autoRefresh *bool) (RefreshSettings, error) {
	if interval != nil {
		if err := s.refresher.SetInterval(*interval); err != nil {
			return s.Settings(), err
		}
	}
	if autoRefresh != nil {
		s.refresher.SetAutoRefresh(*autoRefresh)
	}
	return s.Settings(), nil
}
