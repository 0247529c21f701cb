package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mukul-only/emojileaderboard/internal/client"
	"github.com/Mukul-only/emojileaderboard/internal/dashboard"
	"github.com/Mukul-only/emojileaderboard/internal/export"
	"github.com/Mukul-only/emojileaderboard/internal/leaderboard"
	"github.com/Mukul-only/emojileaderboard/internal/refresher"
	"github.com/spf13/cobra"
)

// clearScreen переводит курсор в начало и очищает экран.
const clearScreen = "\033[H\033[2J"

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetch the leaderboard once and print it as a table.",
	Long: `Fetch the leaderboard once and print it as a table.

Examples:
  # Top 10 teams sorted by name
  dashboard show --category top10 --sort name_asc

  # Search by team or member name
  dashboard show -q alice`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runShow(rootCtx, cfg, os.Stdout)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Redraw the leaderboard on every refresh until interrupted.",
	RunE: func(_ *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runWatch(ctx, cfg, os.Stdout)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print summary statistics and the score distribution.",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runStats(rootCtx, cfg, os.Stdout)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the leaderboard as CSV in rank order.",
	RunE: func(_ *cobra.Command, _ []string) error {
		return writeWithFile(cfg.Output, func(w io.Writer) error {
			return runExport(rootCtx, cfg, w)
		})
	},
}

func newRefresher(c *dashboardConfig, opts ...refresher.Option) *refresher.Refresher {
	source := client.New(c.APIURL, c.Timeout)
	opts = append([]refresher.Option{
		refresher.WithInterval(c.Interval),
		refresher.WithTimeout(c.Timeout),
	}, opts...)
	return refresher.New(source, leaderboard.NewTracker(), opts...)
}

// newRenderer создает рендерер. В режиме watch подсказка обещает автоматический повтор.
func newRenderer(c *dashboardConfig, out io.Writer, watching bool) *dashboard.Renderer {
	opts := dashboard.Options{Color: c.Color}
	if watching {
		opts.RetryIn = c.Interval
	}
	return dashboard.NewRenderer(out, opts)
}

func viewOf(c *dashboardConfig, board leaderboard.Board) leaderboard.View {
	return board.View(c.Query, c.Category, c.Sort, leaderboard.ViewOptions{Locale: c.Locale})
}

func runShow(ctx context.Context, c *dashboardConfig, out io.Writer) error {
	board, fetchErr := newRefresher(c).Refresh(ctx)
	if err := newRenderer(c, out, false).RenderBoard(board, viewOf(c, board)); err != nil {
		return err
	}
	return fetchErr
}

func runStats(ctx context.Context, c *dashboardConfig, out io.Writer) error {
	board, fetchErr := newRefresher(c).Refresh(ctx)
	if err := newRenderer(c, out, false).RenderStats(board); err != nil {
		return err
	}
	return fetchErr
}

func runExport(ctx context.Context, c *dashboardConfig, out io.Writer) error {
	board, err := newRefresher(c).Refresh(ctx)
	if err != nil {
		return err
	}
	return export.WriteCSV(out, board.Teams)
}

// runWatch перерисовывает таблицу после каждого цикла. Тренды считаются
// между соседними циклами, поэтому появляются со второго обновления.
func runWatch(ctx context.Context, c *dashboardConfig, out io.Writer) error {
	renderer := newRenderer(c, out, true)
	r := newRefresher(c, refresher.WithOnBoard(func(board leaderboard.Board) {
		_, _ = fmt.Fprint(out, clearScreen)
		if err := renderer.RenderBoard(board, viewOf(c, board)); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warn render failed: %v\n", err)
		}
	}))

	if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// writeWithFile пишет в файл или, если путь пуст, в stdout.
func writeWithFile(outputFile string, write func(io.Writer) error) error {
	if outputFile == "" {
		return write(os.Stdout)
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputFile, err)
	}
	defer func() { _ = file.Close() }()

	if err := write(file); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stderr, "💾 Wrote CSV to %s\n", outputFile)
	return nil
}
