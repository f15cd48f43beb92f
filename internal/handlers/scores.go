package handlers

import (
	"net/http"
	"strconv"
)

// RecentScores handles GET /api/v1/scores/recent
// @Summary List recently archived calculations
// @Tags Scores
// @Produce json
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {object} map[string]interface{}
// @Router /scores/recent [get]
func (h *Handler) RecentScores(w http.ResponseWriter, r *http.Request) {
	if h.archive == nil {
		h.errorResponse(w, http.StatusNotImplemented, "score archive is not configured")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	scores, err := h.archive.RecentScores(r.Context(), limit)
	if err != nil {
		h.logger.Errorw("failed to list recent scores", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "failed to list recent scores")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"scores": scores,
		"count":  len(scores),
	})
}
