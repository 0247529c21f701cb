package handler

import (
	"log"
	"net/http"

	"github.com/Mukul-only/emojileaderboard/internal/export"
	"github.com/Mukul-only/emojileaderboard/internal/leaderboard"
)

const exportFilename = "emoji_leaderboard.csv"

// GetRanked отдаёт таблицу с местами и трендами из последнего цикла обновления.
// Параметры: q (поиск), category, sort.
func (h *Handler) GetRanked(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	category, err := leaderboard.ParseCategory(query.Get("category"))
	if err != nil {
		h.handleError(w, err)
		return
	}
	sortKey, err := leaderboard.ParseSortKey(query.Get("sort"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	board, view := h.boardService.View(query.Get("q"), category, sortKey)

	h.render.JSON(w, http.StatusOK, viewToHTTP(board, view))
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.render.JSON(w, http.StatusOK, statsToHTTP(h.boardService.Board()))
}

// ExportCSV выгружает все команды в порядке мест.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	board := h.boardService.Board()
	if board.Err != nil {
		h.handleError(w, board.Err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.WriteHeader(http.StatusOK)
	if err := export.WriteCSV(w, board.Teams); err != nil {
		log.Printf("CSV export failed: %v", err)
	}
}
