package types

import "time"

// Exercise is a catalog entry authored by a personal trainer.
type Exercise struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	MuscleGroup string `json:"muscle_group" db:"muscle_group"`
	Difficulty  string `json:"difficulty" db:"difficulty"`

	// ImageURL is the object storage key of an optional demo image.
	ImageURL string `json:"image_url,omitempty" db:"image_url"`

	// TrainerID references the personal trainer who authored the entry.
	TrainerID int `json:"trainer_id" db:"trainer_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
