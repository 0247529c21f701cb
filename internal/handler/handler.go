package handler

import (
	"github.com/Mukul-only/emojileaderboard/internal/service"
	"github.com/unrolled/render"
)

type Handler struct {
	teamService  service.TeamService
	boardService service.BoardService
	render       *render.Render
}

func NewHandler(teamService service.TeamService, boardService service.BoardService) *Handler {
	return &Handler{
		teamService:  teamService,
		boardService: boardService,
		render:       render.New(),
	}
}
