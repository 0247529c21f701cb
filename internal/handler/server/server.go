package server

import (
	"context"
	"log"
	"net/http"

	"github.com/Mukul-only/emojileaderboard/internal/handler"
)

type Server struct {
	server *http.Server
}

func NewServer(h *handler.Handler, addr string, corsOrigins []string) *Server {
	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: WithCORS(NewRouter(h), corsOrigins),
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	log.Printf("Server starting on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down...")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("Server stopped")
	return nil
}
