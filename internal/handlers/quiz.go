package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"quizzer-backend/internal/middleware"
	"quizzer-backend/internal/models"
	"quizzer-backend/internal/repository"
	"quizzer-backend/internal/services"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	userID := middleware.GetUserID(r.Context())
	result, err := h.quizService.Generate(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"quiz": map[string]interface{}{
			"id":        result.Quiz.ID,
			"subject":   result.Quiz.Subject,
			"grade":     result.Quiz.Grade,
			"stream":    result.Quiz.Stream,
			"questions": result.Questions,
		},
		"difficulty_profile": result.DifficultyProfile,
	})
}

func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.QuizID == uuid.Nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "quiz_id is required", r))
		return
	}

	userID := middleware.GetUserID(r.Context())
	result, err := h.quizService.Submit(r.Context(), userID, req.QuizID, req.Responses)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"submission_id": result.SubmissionID,
		"score":         result.Score,
		"suggestions":   result.Suggestions,
	})
}

func (h *QuizHandler) Retry(w http.ResponseWriter, r *http.Request) {
	quizID, ok := parseQuizID(w, r)
	if !ok {
		return
	}

	var req models.RetryQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	userID := middleware.GetUserID(r.Context())
	result, err := h.quizService.Retry(r.Context(), userID, quizID, req.Responses)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"submission_id": result.SubmissionID,
		"score":         result.Score,
	})
}

func (h *QuizHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	params := services.HistoryParams{
		Page:     parseIntParam(q.Get("page"), 1),
		PageSize: parseIntParam(q.Get("page_size"), 10),
		Filter: repository.SubmissionFilter{
			Subject: q.Get("subject"),
			Stream:  q.Get("stream"),
			Grade:   parseIntParam(q.Get("grade"), 0),
		},
	}

	if v := q.Get("min_marks"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "min_marks must be between 0 and 100", r))
			return
		}
		params.Filter.MinMarks = &n
	}
	if v := q.Get("max_marks"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "max_marks must be between 0 and 100", r))
			return
		}
		params.Filter.MaxMarks = &n
	}
	if v := q.Get("from"); v != "" {
		t, err := parseDateParam(v, false)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "from must be an ISO or dd/mm/yyyy date", r))
			return
		}
		params.Filter.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := parseDateParam(v, true)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "to must be an ISO or dd/mm/yyyy date", r))
			return
		}
		params.Filter.To = &t
	}

	userID := middleware.GetUserID(r.Context())
	rows, total, err := h.quizService.History(r.Context(), userID, params)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data":      rows,
		"total":     total,
		"page":      params.Page,
		"page_size": params.PageSize,
	})
}

func (h *QuizHandler) Hint(w http.ResponseWriter, r *http.Request) {
	quizID, ok := parseQuizID(w, r)
	if !ok {
		return
	}

	var req models.HintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.QuestionID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "question_id is required", r))
		return
	}

	userID := middleware.GetUserID(r.Context())
	hint, err := h.quizService.Hint(r.Context(), userID, quizID, req.QuestionID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"hint": hint})
}

func (h *QuizHandler) SendResult(w http.ResponseWriter, r *http.Request) {
	quizID, ok := parseQuizID(w, r)
	if !ok {
		return
	}

	var req models.SendResultRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
			return
		}
	}

	userID := middleware.GetUserID(r.Context())
	queued, err := h.quizService.SendResult(r.Context(), userID, quizID, req.To)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]bool{"queued": queued})
}

func parseQuizID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	quizID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid quiz ID", r))
		return uuid.Nil, false
	}
	return quizID, true
}

func parseIntParam(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// parseDateParam accepts yyyy-mm-dd, dd/mm/yyyy or RFC3339. Bare dates used
// as a range end are extended to the end of the day.
func parseDateParam(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	var t time.Time
	var err error
	if t, err = time.Parse("2006-01-02", value); err != nil {
		t, err = time.Parse("02/01/2006", value)
	}
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t, nil
}
