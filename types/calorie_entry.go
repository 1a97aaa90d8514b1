package types

import "time"

// CalorieEntry records the calories of one meal, owned by one user.
type CalorieEntry struct {
	ID     int `json:"id" db:"id"`
	UserID int `json:"user_id" db:"user_id"`

	// EntryTime is when the meal was tracked, stored in UTC.
	EntryTime time.Time `json:"entry_time" db:"entry_time"`

	Meal     string  `json:"meal" db:"meal"`
	Calories float64 `json:"calories" db:"calories"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
