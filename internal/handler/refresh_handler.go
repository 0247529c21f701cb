package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Mukul-only/emojileaderboard/internal/domain"
)

// Refresh запускает внеочередной цикл обновления.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	// цикл общий для всех клиентов, обрыв запроса не должен его прерывать
	board, err := h.boardService.Refresh(context.WithoutCancel(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, RefreshResponse{
		State:     string(board.State()),
		Seq:       board.Seq,
		UpdatedAt: formatTime(board.UpdatedAt),
		Total:     len(board.Teams),
	})
}

func (h *Handler) GetRefreshSettings(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, settingsToHTTP(h.boardService.Settings()))
}

func (h *Handler) UpdateRefreshSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewBadRequestError("invalid request body: %v", err))
		return
	}

	var interval *time.Duration
	if req.IntervalMS != nil {
		d := time.Duration(*req.IntervalMS) * time.Millisecond
		interval = &d
	}

	settings, err := h.boardService.UpdateSettings(interval, req.AutoRefresh)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.render.JSON(w, http.StatusOK, settingsToHTTP(settings))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.render.Text(w, http.StatusOK, "ok")
}
