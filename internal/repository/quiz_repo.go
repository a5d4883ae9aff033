package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"quizzer-backend/internal/models"
)

type QuizRepo struct {
	pool *pgxpool.Pool
}

func NewQuizRepo(pool *pgxpool.Pool) *QuizRepo {
	return &QuizRepo{pool: pool}
}

func (r *QuizRepo) Create(ctx context.Context, quiz *models.Quiz) error {
	query := `
		INSERT INTO quizzes (id, user_id, subject, grade, stream, questions_json, difficulty_profile_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	quiz.ID = uuid.New()

	return r.pool.QueryRow(ctx, query,
		quiz.ID, quiz.UserID, quiz.Subject, quiz.Grade, quiz.Stream,
		quiz.QuestionsJSON, quiz.DifficultyProfile,
	).Scan(&quiz.CreatedAt)
}

func (r *QuizRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Quiz, error) {
	quiz := &models.Quiz{}
	query := `SELECT id, user_id, subject, grade, stream, questions_json, difficulty_profile_json, created_at
		FROM quizzes WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&quiz.ID, &quiz.UserID, &quiz.Subject, &quiz.Grade, &quiz.Stream,
		&quiz.QuestionsJSON, &quiz.DifficultyProfile, &quiz.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return quiz, nil
}
