package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
)

// WorkoutRepository handles persistence for logged workouts.
type WorkoutRepository struct {
	db *sql.DB
}

func NewWorkoutRepository(db *sql.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

func (r *WorkoutRepository) GetByID(ctx context.Context, id int) (types.Workout, error) {
	const query = `
		SELECT id, user_id, workout_date, exercise, sets, reps, weight, created_at, updated_at
		FROM workouts
		WHERE id = $1`
	var workout types.Workout
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&workout.ID,
		&workout.UserID,
		&workout.Date,
		&workout.Exercise,
		&workout.Sets,
		&workout.Reps,
		&workout.Weight,
		&workout.CreatedAt,
		&workout.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Workout{}, ErrNotFound
		}
		return types.Workout{}, err
	}
	return workout, nil
}

// ListByUser returns the user's workouts, most recent first.
func (r *WorkoutRepository) ListByUser(ctx context.Context, userID int) ([]types.Workout, error) {
	const query = `
		SELECT id, user_id, workout_date, exercise, sets, reps, weight, created_at, updated_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY workout_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := make([]types.Workout, 0)
	for rows.Next() {
		var workout types.Workout
		if err := rows.Scan(
			&workout.ID,
			&workout.UserID,
			&workout.Date,
			&workout.Exercise,
			&workout.Sets,
			&workout.Reps,
			&workout.Weight,
			&workout.CreatedAt,
			&workout.UpdatedAt,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (r *WorkoutRepository) Create(ctx context.Context, workout types.Workout) (types.Workout, error) {
	now := time.Now()
	workout.CreatedAt = now
	workout.UpdatedAt = now

	const query = `
		INSERT INTO workouts (user_id, workout_date, exercise, sets, reps, weight, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		workout.UserID,
		workout.Date,
		workout.Exercise,
		workout.Sets,
		workout.Reps,
		workout.Weight,
		workout.CreatedAt,
		workout.UpdatedAt,
	).Scan(&workout.ID); err != nil {
		return types.Workout{}, err
	}
	return workout, nil
}

func (r *WorkoutRepository) Update(ctx context.Context, workout types.Workout) (types.Workout, error) {
	workout.UpdatedAt = time.Now()

	const query = `
		UPDATE workouts
		SET workout_date = $1,
			exercise = $2,
			sets = $3,
			reps = $4,
			weight = $5,
			updated_at = $6
		WHERE id = $7`
	result, err := r.db.ExecContext(
		ctx,
		query,
		workout.Date,
		workout.Exercise,
		workout.Sets,
		workout.Reps,
		workout.Weight,
		workout.UpdatedAt,
		workout.ID,
	)
	if err != nil {
		return types.Workout{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Workout{}, err
	}
	if affected == 0 {
		return types.Workout{}, ErrNotFound
	}
	return workout, nil
}

func (r *WorkoutRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM workouts WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
