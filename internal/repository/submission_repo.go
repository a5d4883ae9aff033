package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"quizzer-backend/internal/models"
)

type SubmissionRepo struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepo(pool *pgxpool.Pool) *SubmissionRepo {
	return &SubmissionRepo{pool: pool}
}

// SubmissionFilter narrows a user's submission history. Zero values mean
// "no constraint" except MinMarks/MaxMarks, which use pointers so a 0 bound
// still applies.
type SubmissionFilter struct {
	Subject  string
	Grade    int
	Stream   string
	MinMarks *int
	MaxMarks *int
	From     *time.Time
	To       *time.Time
	Offset   int
	Limit    int
}

func (r *SubmissionRepo) Create(ctx context.Context, sub *models.Submission) error {
	query := `
		INSERT INTO submissions (id, quiz_id, user_id, answers_json, evaluation_json, score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	sub.ID = uuid.New()

	return r.pool.QueryRow(ctx, query,
		sub.ID, sub.QuizID, sub.UserID, sub.AnswersJSON, sub.EvaluationJSON, sub.Score,
	).Scan(&sub.CreatedAt)
}

func (r *SubmissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	sub := &models.Submission{}
	query := `SELECT id, quiz_id, user_id, answers_json, evaluation_json, score, created_at
		FROM submissions WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&sub.ID, &sub.QuizID, &sub.UserID, &sub.AnswersJSON, &sub.EvaluationJSON,
		&sub.Score, &sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// LatestForQuiz returns the most recent submission for a quiz.
func (r *SubmissionRepo) LatestForQuiz(ctx context.Context, quizID uuid.UUID) (*models.Submission, error) {
	sub := &models.Submission{}
	query := `SELECT id, quiz_id, user_id, answers_json, evaluation_json, score, created_at
		FROM submissions WHERE quiz_id = $1 ORDER BY created_at DESC LIMIT 1`

	err := r.pool.QueryRow(ctx, query, quizID).Scan(
		&sub.ID, &sub.QuizID, &sub.UserID, &sub.AnswersJSON, &sub.EvaluationJSON,
		&sub.Score, &sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// FilterForUser returns a page of the user's submissions joined with quiz
// metadata, newest first, plus the unpaginated total for the same filter.
func (r *SubmissionRepo) FilterForUser(ctx context.Context, userID uuid.UUID, f SubmissionFilter) ([]models.HistoryRow, int, error) {
	where := []string{"s.user_id = $1"}
	args := []any{userID}

	add := func(clause string, value any) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if f.Subject != "" {
		add("q.subject = $%d", f.Subject)
	}
	if f.Grade != 0 {
		add("q.grade = $%d", f.Grade)
	}
	if f.Stream != "" {
		add("q.stream = $%d", f.Stream)
	}
	if f.MinMarks != nil {
		add("s.score >= $%d", *f.MinMarks)
	}
	if f.MaxMarks != nil {
		add("s.score <= $%d", *f.MaxMarks)
	}
	if f.From != nil {
		add("s.created_at >= $%d", *f.From)
	}
	if f.To != nil {
		add("s.created_at <= $%d", *f.To)
	}

	cond := strings.Join(where, " AND ")

	var total int
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM submissions s
		JOIN quizzes q ON q.id = s.quiz_id
		WHERE %s`, cond)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	query := fmt.Sprintf(`
		SELECT s.id, s.quiz_id, s.user_id, s.answers_json, s.evaluation_json, s.score, s.created_at,
			q.subject, q.grade, q.stream
		FROM submissions s
		JOIN quizzes q ON q.id = s.quiz_id
		WHERE %s
		ORDER BY s.created_at DESC
		LIMIT $%d OFFSET $%d`, cond, len(args)+1, len(args)+2)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	history := make([]models.HistoryRow, 0)
	for rows.Next() {
		var h models.HistoryRow
		if scanErr := rows.Scan(
			&h.ID, &h.QuizID, &h.UserID, &h.AnswersJSON, &h.EvaluationJSON,
			&h.Score, &h.CreatedAt, &h.Subject, &h.Grade, &h.Stream,
		); scanErr != nil {
			return nil, 0, scanErr
		}
		history = append(history, h)
	}

	return history, total, rows.Err()
}

// Leaderboard lists the top submissions by score, ties broken by earliest
// submission. Zero grade or empty subject leaves that dimension open.
func (r *SubmissionRepo) Leaderboard(ctx context.Context, grade int, subject string, limit int) ([]models.LeaderboardRow, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.pool.Query(ctx, `
		SELECT u.username, s.score, q.subject, q.grade, s.created_at
		FROM submissions s
		JOIN users u ON u.id = s.user_id
		JOIN quizzes q ON q.id = s.quiz_id
		WHERE ($1 = 0 OR q.grade = $1)
		  AND ($2 = '' OR q.subject = $2)
		ORDER BY s.score DESC, s.created_at ASC
		LIMIT $3`, grade, subject, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.LeaderboardRow, 0)
	for rows.Next() {
		var e models.LeaderboardRow
		if scanErr := rows.Scan(&e.Username, &e.Score, &e.Subject, &e.Grade, &e.CreatedAt); scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
