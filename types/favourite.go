package types

import "time"

// Favourite links a user to an exercise they bookmarked. At most one
// favourite exists per (user, exercise) pair.
type Favourite struct {
	ID         int       `json:"id" db:"id"`
	UserID     int       `json:"user_id" db:"user_id"`
	ExerciseID int       `json:"exercise_id" db:"exercise_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
