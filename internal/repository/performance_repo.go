package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"quizzer-backend/internal/models"
)

type PerformanceRepo struct {
	pool *pgxpool.Pool
}

func NewPerformanceRepo(pool *pgxpool.Pool) *PerformanceRepo {
	return &PerformanceRepo{pool: pool}
}

func (r *PerformanceRepo) Get(ctx context.Context, userID uuid.UUID, subject string, grade int) (*models.Performance, error) {
	perf := &models.Performance{}
	query := `SELECT id, user_id, subject, grade, rolling_accuracy, attempts, last_updated
		FROM user_performance WHERE user_id = $1 AND subject = $2 AND grade = $3`

	err := r.pool.QueryRow(ctx, query, userID, subject, grade).Scan(
		&perf.ID, &perf.UserID, &perf.Subject, &perf.Grade,
		&perf.RollingAccuracy, &perf.Attempts, &perf.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return perf, nil
}

// RecordScore folds a new quiz score into the user's rolling accuracy for the
// subject and grade. First attempt seeds the accuracy with the score itself.
func (r *PerformanceRepo) RecordScore(ctx context.Context, userID uuid.UUID, subject string, grade, score int) error {
	existing, err := r.Get(ctx, userID, subject, grade)
	if errors.Is(err, pgx.ErrNoRows) {
		_, insertErr := r.pool.Exec(ctx, `
			INSERT INTO user_performance (id, user_id, subject, grade, rolling_accuracy, attempts)
			VALUES ($1, $2, $3, $4, $5, 1)`,
			uuid.New(), userID, subject, grade, float64(score),
		)
		return insertErr
	}
	if err != nil {
		return err
	}

	attempts := existing.Attempts + 1
	accuracy := (existing.RollingAccuracy*float64(existing.Attempts) + float64(score)) / float64(attempts)

	_, err = r.pool.Exec(ctx, `
		UPDATE user_performance SET rolling_accuracy = $1, attempts = $2, last_updated = NOW()
		WHERE id = $3`,
		accuracy, attempts, existing.ID,
	)
	return err
}
