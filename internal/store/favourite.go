package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
)

// FavouriteRepository handles persistence for favourited exercises.
type FavouriteRepository struct {
	db *sql.DB
}

func NewFavouriteRepository(db *sql.DB) *FavouriteRepository {
	return &FavouriteRepository{db: db}
}

// Toggle adds the (user, exercise) favourite if absent and removes it if
// present. It reports whether the exercise is favourited afterwards.
//
// The insert relies on the UNIQUE (user_id, exercise_id) constraint: ON
// CONFLICT DO NOTHING returns no row when the pair already exists, in
// which case the pair is deleted instead. Two concurrent toggles cannot
// produce duplicate rows; the losing writer simply observes the pair as
// existing and removes it.
func (r *FavouriteRepository) Toggle(ctx context.Context, userID, exerciseID int) (bool, error) {
	const insertQuery = `
		INSERT INTO favourites (user_id, exercise_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, exercise_id) DO NOTHING
		RETURNING id`
	var id int
	err := r.db.QueryRowContext(ctx, insertQuery, userID, exerciseID, time.Now()).Scan(&id)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	const deleteQuery = `DELETE FROM favourites WHERE user_id = $1 AND exercise_id = $2`
	if _, err := r.db.ExecContext(ctx, deleteQuery, userID, exerciseID); err != nil {
		return false, err
	}
	return false, nil
}

// Exists reports whether the user has favourited the exercise.
func (r *FavouriteRepository) Exists(ctx context.Context, userID, exerciseID int) (bool, error) {
	const query = `SELECT 1 FROM favourites WHERE user_id = $1 AND exercise_id = $2`
	var one int
	err := r.db.QueryRowContext(ctx, query, userID, exerciseID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListExercisesByUser returns the exercises the user has favourited,
// most recently favourited first.
func (r *FavouriteRepository) ListExercisesByUser(ctx context.Context, userID int) ([]types.Exercise, error) {
	const query = `
		SELECT e.id, e.name, e.description, e.muscle_group, e.difficulty, e.image_url, e.trainer_id, e.created_at, e.updated_at
		FROM exercises e
		JOIN favourites f ON f.exercise_id = e.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC, f.id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
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
