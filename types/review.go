package types

import "time"

// Rating bounds accepted on a review, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a rating plus comment a user left on an exercise. A user may
// review an exercise at most once; reviews have no edit path.
type Review struct {
	ID         int       `json:"id" db:"id"`
	UserID     int       `json:"user_id" db:"user_id"`
	ExerciseID int       `json:"exercise_id" db:"exercise_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
