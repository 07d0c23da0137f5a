package handlers

import (
	"net/http"

	"wordingo/internal/repository"
)

// StatsHandler serves the lifetime player statistics
type StatsHandler struct {
	stats *repository.StatsRepository
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats *repository.StatsRepository) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetStats returns the aggregate stats row
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetUserStats()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load stats", err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}
