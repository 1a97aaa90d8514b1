package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
)

// ExerciseRepository handles persistence for the exercise catalog.
type ExerciseRepository struct {
	db *sql.DB
}

func NewExerciseRepository(db *sql.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id int) (types.Exercise, error) {
	const query = `
		SELECT id, name, description, muscle_group, difficulty, image_url, trainer_id, created_at, updated_at
		FROM exercises
		WHERE id = $1`
	var exercise types.Exercise
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&exercise.ID,
		&exercise.Name,
		&exercise.Description,
		&exercise.MuscleGroup,
		&exercise.Difficulty,
		&exercise.ImageURL,
		&exercise.TrainerID,
		&exercise.CreatedAt,
		&exercise.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Exercise{}, ErrNotFound
		}
		return types.Exercise{}, err
	}
	return exercise, nil
}

// List returns the whole catalog ordered by name.
func (r *ExerciseRepository) List(ctx context.Context) ([]types.Exercise, error) {
	const query = `
		SELECT id, name, description, muscle_group, difficulty, image_url, trainer_id, created_at, updated_at
		FROM exercises
		ORDER BY name, id`
	return r.queryExercises(ctx, query)
}

// ListByTrainer returns the catalog entries authored by one trainer,
// newest first.
func (r *ExerciseRepository) ListByTrainer(ctx context.Context, trainerID int) ([]types.Exercise, error) {
	const query = `
		SELECT id, name, description, muscle_group, difficulty, image_url, trainer_id, created_at, updated_at
		FROM exercises
		WHERE trainer_id = $1
		ORDER BY created_at DESC, id DESC`
	return r.queryExercises(ctx, query, trainerID)
}

func (r *ExerciseRepository) queryExercises(ctx context.Context, query string, args ...any) ([]types.Exercise, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := make([]types.Exercise, 0)
	for rows.Next() {
		var exercise types.Exercise
		if err := rows.Scan(
			&exercise.ID,
			&exercise.Name,
			&exercise.Description,
			&exercise.MuscleGroup,
			&exercise.Difficulty,
			&exercise.ImageURL,
			&exercise.TrainerID,
			&exercise.CreatedAt,
			&exercise.UpdatedAt,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (r *ExerciseRepository) Create(ctx context.Context, exercise types.Exercise) (types.Exercise, error) {
	now := time.Now()
	exercise.CreatedAt = now
	exercise.UpdatedAt = now

	const query = `
		INSERT INTO exercises (name, description, muscle_group, difficulty, image_url, trainer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		exercise.Name,
		exercise.Description,
		exercise.MuscleGroup,
		exercise.Difficulty,
		exercise.ImageURL,
		exercise.TrainerID,
		exercise.CreatedAt,
		exercise.UpdatedAt,
	).Scan(&exercise.ID); err != nil {
		return types.Exercise{}, err
	}
	return exercise, nil
}
