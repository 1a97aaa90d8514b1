package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
)

// CalorieEntryRepository handles persistence for calorie tracking.
type CalorieEntryRepository struct {
	db *sql.DB
}

func NewCalorieEntryRepository(db *sql.DB) *CalorieEntryRepository {
	return &CalorieEntryRepository{db: db}
}

func (r *CalorieEntryRepository) GetByID(ctx context.Context, id int) (types.CalorieEntry, error) {
	const query = `
		SELECT id, user_id, entry_time, meal, calories, created_at, updated_at
		FROM calorie_entries
		WHERE id = $1`
	var entry types.CalorieEntry
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.EntryTime,
		&entry.Meal,
		&entry.Calories,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.CalorieEntry{}, ErrNotFound
		}
		return types.CalorieEntry{}, err
	}
	return entry, nil
}

// ListByUser returns the user's calorie entries, most recent first.
func (r *CalorieEntryRepository) ListByUser(ctx context.Context, userID int) ([]types.CalorieEntry, error) {
	const query = `
		SELECT id, user_id, entry_time, meal, calories, created_at, updated_at
		FROM calorie_entries
		WHERE user_id = $1
		ORDER BY entry_time DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]types.CalorieEntry, 0)
	for rows.Next() {
		var entry types.CalorieEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.EntryTime,
			&entry.Meal,
			&entry.Calories,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *CalorieEntryRepository) Create(ctx context.Context, entry types.CalorieEntry) (types.CalorieEntry, error) {
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	const query = `
		INSERT INTO calorie_entries (user_id, entry_time, meal, calories, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		entry.UserID,
		entry.EntryTime,
		entry.Meal,
		entry.Calories,
		entry.CreatedAt,
		entry.UpdatedAt,
	).Scan(&entry.ID); err != nil {
		return types.CalorieEntry{}, err
	}
	return entry, nil
}

func (r *CalorieEntryRepository) Update(ctx context.Context, entry types.CalorieEntry) (types.CalorieEntry, error) {
	entry.UpdatedAt = time.Now()

	const query = `
		UPDATE calorie_entries
		SET entry_time = $1,
			meal = $2,
			calories = $3,
			updated_at = $4
		WHERE id = $5`
	result, err := r.db.ExecContext(
		ctx,
		query,
		entry.EntryTime,
		entry.Meal,
		entry.Calories,
		entry.UpdatedAt,
		entry.ID,
	)
	if err != nil {
		return types.CalorieEntry{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.CalorieEntry{}, err
	}
	if affected == 0 {
		return types.CalorieEntry{}, ErrNotFound
	}
	return entry, nil
}

func (r *CalorieEntryRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM calorie_entries WHERE id = $1`
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
