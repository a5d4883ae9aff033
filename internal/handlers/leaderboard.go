package handlers

import (
	"net/http"

	"quizzer-backend/internal/repository"
)

type LeaderboardHandler struct {
	subRepo *repository.SubmissionRepo
}

func NewLeaderboardHandler(subRepo *repository.SubmissionRepo) *LeaderboardHandler {
	return &LeaderboardHandler{subRepo: subRepo}
}

func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	grade := parseIntParam(q.Get("grade"), 0)
	subject := q.Get("subject")
	limit := parseIntParam(q.Get("limit"), 10)
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := h.subRepo.Leaderboard(r.Context(), grade, subject, limit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"data": rows})
}
