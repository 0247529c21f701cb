// Package dashboard рисует таблицу лидеров и статистику в терминале.
package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/leaderboard"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const (
	maxBarWidth = 30
	noPlayer    = "-"
)

var medals = map[int]string{1: "🏆", 2: "🥈", 3: "🥉"}

type Options struct {
	Color bool
	// RetryIn показывается в подсказке при недоступном источнике. 0 - ручной повтор.
	RetryIn time.Duration
}

type Renderer struct {
	out     io.Writer
	retryIn time.Duration

	up    *color.Color
	down  *color.Color
	muted *color.Color
	title *color.Color
	warn  *color.Color
}

func NewRenderer(out io.Writer, opts Options) *Renderer {
	r := &Renderer{
		out:     out,
		retryIn: opts.RetryIn,
		up:      color.New(color.FgGreen),
		down:    color.New(color.FgRed),
		muted:   color.New(color.FgHiBlack),
		title:   color.New(color.FgCyan, color.Bold),
		warn:    color.New(color.FgYellow, color.Bold),
	}
	for _, c := range []*color.Color{r.up, r.down, r.muted, r.title, r.warn} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// RenderBoard выводит проекцию таблицы. Для состояний без строк выводится
// соответствующее сообщение вместо таблицы.
func (r *Renderer) RenderBoard(board leaderboard.Board, view leaderboard.View) error {
	switch view.State {
	case leaderboard.StateUnavailable:
		return r.renderUnavailable(board)
	case leaderboard.StateLoading:
		_, err := fmt.Fprintln(r.out, "Loading leaderboard...")
		return err
	case leaderboard.StateEmpty:
		_, err := fmt.Fprintf(r.out, "%s\nThe competition hasn't started or no teams have registered yet. Check back soon!\n",
			r.title.Sprint("No teams yet"))
		return err
	case leaderboard.StateNoMatches:
		_, err := fmt.Fprintf(r.out, "%s\nNo teams match your current search or filter. Try adjusting your criteria.\n",
			r.title.Sprint("No matches found"))
		return err
	}

	table := tablewriter.NewWriter(r.out)
	table.Header([]string{"Rank", "Team", "Player 1", "Player 2", "Score", "Trend"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, t := range view.Teams {
		data = append(data, []string{
			rankLabel(t.Rank),
			t.TeamName,
			t.MemberName(0, noPlayer),
			t.MemberName(1, noPlayer),
			strconv.Itoa(t.Score),
			r.trendLabel(t.Trend),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(r.out, "Showing %d of %d teams. %s\n", len(view.Teams), len(board.Teams), r.updatedLabel(board))
	return err
}

// RenderStats выводит сводку и гистограмму распределения счёта.
func (r *Renderer) RenderStats(board leaderboard.Board) error {
	if board.Err != nil {
		return r.renderUnavailable(board)
	}
	if !board.HasStats {
		_, err := fmt.Fprintln(r.out, r.title.Sprint("No teams yet"))
		return err
	}

	s := board.Stats
	lines := []string{
		r.title.Sprint("Summary"),
		fmt.Sprintf("  Teams:        %d", s.TeamCount),
		fmt.Sprintf("  Participants: %d", s.Participants),
		fmt.Sprintf("  Average:      %d", s.Mean),
		fmt.Sprintf("  Median:       %s", formatMedian(s.Median)),
		fmt.Sprintf("  Top score:    %d", s.Max),
		"",
		r.title.Sprint("Score distribution"),
	}

	labelWidth := 0
	for _, b := range s.Bins {
		labelWidth = max(labelWidth, len(b.Label))
	}
	maxCount := s.MaxBinCount()
	for _, b := range s.Bins {
		lines = append(lines, fmt.Sprintf("  %-*s %s %d", labelWidth, b.Label, bar(b.Count, maxCount), b.Count))
	}

	lines = append(lines, "", r.title.Sprint("Top teams"))
	for _, t := range s.Top {
		lines = append(lines, fmt.Sprintf("  %s %s (%d)", rankLabel(t.Rank), t.TeamName, t.Score))
	}

	_, err := fmt.Fprintln(r.out, strings.Join(lines, "\n"))
	return err
}

func (r *Renderer) renderUnavailable(board leaderboard.Board) error {
	hint := "Run the command again to retry."
	if r.retryIn > 0 {
		hint = fmt.Sprintf("Retrying in %s...", r.retryIn)
	}
	_, err := fmt.Fprintf(r.out, "%s\nThere was a problem fetching the leaderboard: %v\n%s\n",
		r.warn.Sprint("Unable to load data"), board.Err, r.muted.Sprint(hint))
	return err
}

func (r *Renderer) trendLabel(t leaderboard.Trend) string {
	switch t.Direction() {
	case leaderboard.DirectionUp:
		return r.up.Sprintf("▲ %d", t.Magnitude())
	case leaderboard.DirectionDown:
		return r.down.Sprintf("▼ %d", t.Magnitude())
	default:
		return r.muted.Sprint("=")
	}
}

func (r *Renderer) updatedLabel(board leaderboard.Board) string {
	if board.UpdatedAt.IsZero() {
		return ""
	}
	return r.muted.Sprintf("Updated %s", board.UpdatedAt.Format(time.TimeOnly))
}

func rankLabel(rank int) string {
	if medal, ok := medals[rank]; ok {
		return medal
	}
	return "#" + strconv.Itoa(rank)
}

// bar масштабирует count относительно самой высокой корзины.
func bar(count, maxCount int) string {
	if maxCount <= 0 || count <= 0 {
		return ""
	}
	width := max(1, count*maxBarWidth/maxCount)
	return strings.Repeat("█", width)
}

func formatMedian(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}
