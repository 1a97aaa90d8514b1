package types

import "time"

// Workout is a single logged training session entry owned by one user.
type Workout struct {
	ID     int `json:"id" db:"id"`
	UserID int `json:"user_id" db:"user_id"`

	// Date is the day the workout took place. Defaults to the day the
	// entry is logged.
	Date time.Time `json:"date" db:"workout_date"`

	// Exercise is the free-text name of the exercise performed.
	Exercise string  `json:"exercise" db:"exercise"`
	Sets     int     `json:"sets" db:"sets"`
	Reps     int     `json:"reps" db:"reps"`
	Weight   float64 `json:"weight" db:"weight"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
