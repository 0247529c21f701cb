package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/config"
	"github.com/Mukul-only/emojileaderboard/internal/db"
	"github.com/Mukul-only/emojileaderboard/internal/handler"
	"github.com/Mukul-only/emojileaderboard/internal/handler/server"
	"github.com/Mukul-only/emojileaderboard/internal/leaderboard"
	"github.com/Mukul-only/emojileaderboard/internal/refresher"
	"github.com/Mukul-only/emojileaderboard/internal/repository/postgres"
	"github.com/Mukul-only/emojileaderboard/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	if cfg.Database.Migrate {
		if err := db.Migrate(database); err != nil {
			log.Fatalf("Migrations failed: %v", err)
		}
		log.Println("Migrations applied")
	}

	teamRepo := postgres.NewTeamRepository(database)
	teamService := service.NewTeamService(teamRepo)

	tracker := leaderboard.NewTracker()
	boardRefresher := refresher.New(
		refresher.SourceFunc(teamService.ListTeams),
		tracker,
		refresher.WithInterval(cfg.Refresh.Interval),
		refresher.WithTimeout(cfg.Refresh.FetchTimeout),
		refresher.WithAutoRefresh(cfg.Refresh.AutoRefresh),
	)
	boardService := service.NewBoardService(tracker, boardRefresher, cfg.Locale)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := boardRefresher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Refresher stopped: %v", err)
		}
	}()

	h := handler.NewHandler(teamService, boardService)
	srv := server.NewServer(h, cfg.HTTP.Addr, cfg.HTTP.CORSOrigins)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}
}
