package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
)

// ReviewRepository handles persistence for exercise reviews.
type ReviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review. The UNIQUE (user_id, exercise_id) constraint
// rejects a second review from the same user with ErrDuplicate, never
// an overwrite.
func (r *ReviewRepository) Create(ctx context.Context, review types.Review) (types.Review, error) {
	review.CreatedAt = time.Now()

	const query = `
		INSERT INTO reviews (user_id, exercise_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		review.UserID,
		review.ExerciseID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	).Scan(&review.ID); err != nil {
		if isUniqueViolation(err) {
			return types.Review{}, ErrDuplicate
		}
		return types.Review{}, err
	}
	return review, nil
}

// ListByExercise returns the reviews left on an exercise, newest first.
func (r *ReviewRepository) ListByExercise(ctx context.Context, exerciseID int) ([]types.Review, error) {
	const query = `
		SELECT id, user_id, exercise_id, rating, comment, created_at
		FROM reviews
		WHERE exercise_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, exerciseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]types.Review, 0)
	for rows.Next() {
		var review types.Review
		if err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.ExerciseID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}
