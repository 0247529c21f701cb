package server

import (
	"net/http"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
)

const requestTimeout = 15 * time.Second

func NewRouter(h *handler.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/", h.GetLeaderboard)
			r.Get("/ranked", h.GetRanked)
			r.Get("/stats", h.GetStats)
			r.Get("/export.csv", h.ExportCSV)
		})

		r.Post("/teams", h.CreateTeam)
		r.Post("/teams/score", h.UpdateScore)

		r.Route("/refresh", func(r chi.Router) {
			r.Post("/", h.Refresh)
			r.Get("/interval", h.GetRefreshSettings)
			r.Post("/interval", h.UpdateRefreshSettings)
		})
	})

	return r
}

// WithCORS разрешает запросы с указанных источников ("*" - с любых).
func WithCORS(next http.Handler, origins []string) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(next)
}
