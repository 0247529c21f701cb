package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
)

// GetLeaderboard отдаёт команды с участниками по убыванию счёта.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, domainTeamsToHTTP(teams))
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body: %v", err))
		return
	}

	createdTeam, err := h.teamService.CreateTeam(r.Context(), httpTeamToDomain(req))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.render.JSON(w, http.StatusCreated, domainTeamToHTTP(createdTeam))
}

func (h *Handler) UpdateScore(w http.ResponseWriter, r *http.Request) {
	var req UpdateScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body: %v", err))
		return
	}
	if req.Score == nil {
		h.handleError(w, domain.NewBadRequestError("score is required"))
		return
	}

	team, err := h.teamService.UpdateScore(r.Context(), req.TeamName, *req.Score)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, domainTeamToHTTP(team))
}
