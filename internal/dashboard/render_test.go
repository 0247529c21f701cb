package dashboard

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
	"github.com/Mukul-only/emojileaderboard/internal/leaderboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackedBoard(t *testing.T) leaderboard.Board {
	t.Helper()
	tracker := leaderboard.NewTracker()
	at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	tracker.Apply(1, []domain.TeamRecord{
		{TeamName: "Alpha", Score: 100},
		{TeamName: "Beta", Score: 80},
		{TeamName: "Gamma", Score: 60},
		{TeamName: "Delta", Score: 10},
	}, at)
	_, ok := tracker.Apply(2, []domain.TeamRecord{
		{TeamName: "Alpha", Score: 100, Members: []domain.MemberRef{{Name: "Ann"}, {Name: "Al"}}},
		{TeamName: "Beta", Score: 80},
		{TeamName: "Gamma", Score: 60},
		{TeamName: "Delta", Score: 90, Members: []domain.MemberRef{{Name: "Dan"}}},
	}, at)
	require.True(t, ok)
	return tracker.Board()
}

func TestRenderer_RenderBoard(t *testing.T) {
	t.Run("таблица с медалями и трендами", func(t *testing.T) {
		board := trackedBoard(t)
		var buf bytes.Buffer

		err := NewRenderer(&buf, Options{}).RenderBoard(board, board.View("", leaderboard.CategoryAll, leaderboard.SortScoreDesc, leaderboard.ViewOptions{}))

		require.NoError(t, err)
		out := buf.String()
		assert.NotContains(t, out, "\x1b[", "цвет выключен")
		for _, want := range []string{"🏆", "🥈", "🥉", "#4", "Alpha", "Ann", "Dan", "▲ 2", "▼ 1", "Showing 4 of 4 teams", "Updated 12:30:00"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("цвет для трендов", func(t *testing.T) {
		board := trackedBoard(t)
		var buf bytes.Buffer

		err := NewRenderer(&buf, Options{Color: true}).RenderBoard(board, board.View("", leaderboard.CategoryAll, leaderboard.SortScoreDesc, leaderboard.ViewOptions{}))

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "\x1b[32m")
	})

	t.Run("сообщения для пустых состояний", func(t *testing.T) {
		cases := []struct {
			name  string
			state leaderboard.State
			want  string
		}{
			{name: "нет команд", state: leaderboard.StateEmpty, want: "No teams yet"},
			{name: "нет совпадений", state: leaderboard.StateNoMatches, want: "No matches found"},
			{name: "загрузка", state: leaderboard.StateLoading, want: "Loading leaderboard"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				var buf bytes.Buffer
				err := NewRenderer(&buf, Options{}).RenderBoard(leaderboard.Board{}, leaderboard.View{State: tc.state})
				require.NoError(t, err)
				assert.Contains(t, buf.String(), tc.want)
			})
		}
	})

	t.Run("источник недоступен с подсказкой повтора", func(t *testing.T) {
		board := leaderboard.Board{Seq: 1, Err: domain.Unavailable(errors.New("connection refused"))}
		var buf bytes.Buffer

		err := NewRenderer(&buf, Options{RetryIn: 5 * time.Second}).
			RenderBoard(board, board.View("", leaderboard.CategoryAll, leaderboard.SortScoreDesc, leaderboard.ViewOptions{}))

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "Unable to load data")
		assert.Contains(t, out, "connection refused")
		assert.Contains(t, out, "Retrying in 5s...")
	})
}

func TestRenderer_RenderStats(t *testing.T) {
	t.Run("сводка и гистограмма", func(t *testing.T) {
		board := trackedBoard(t)
		var buf bytes.Buffer

		require.NoError(t, NewRenderer(&buf, Options{}).RenderStats(board))

		out := buf.String()
		assert.Contains(t, out, "Teams:        4")
		assert.Contains(t, out, "Participants: 3")
		assert.Contains(t, out, "Average:      83")
		assert.Contains(t, out, "Median:       85")
		assert.Contains(t, out, "Top score:    100")
		assert.Contains(t, out, "50-100  "+strings.Repeat("█", maxBarWidth)+" 3")
		assert.Contains(t, out, "100-150 "+strings.Repeat("█", maxBarWidth/3)+" 1")
		assert.Contains(t, out, "🏆 Alpha (100)")
	})

	t.Run("нет данных", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewRenderer(&buf, Options{}).RenderStats(leaderboard.Board{Loaded: true}))
		assert.Contains(t, buf.String(), "No teams yet")
	})
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0, 10))
	assert.Equal(t, "█", bar(1, 1000))
	assert.Equal(t, strings.Repeat("█", maxBarWidth), bar(7, 7))
}
