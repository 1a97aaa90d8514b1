package types

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of account roles. Every user is exactly one of
// a gym-goer or a personal trainer; there is no admin tier.
type Role string

const (
	// RoleGymGoer marks a regular user who logs workouts and calories.
	RoleGymGoer Role = "gym_goer"

	// RolePersonalTrainer marks a user allowed to author catalog exercises.
	RolePersonalTrainer Role = "personal_trainer"
)

// ParseRole validates a client-supplied role string against the closed set.
// The role is chosen once at registration and is immutable afterwards.
func ParseRole(raw string) (Role, error) {
	switch role := Role(strings.TrimSpace(raw)); role {
	case RoleGymGoer, RolePersonalTrainer:
		return role, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// Valid reports whether the role is one of the two permitted values.
func (r Role) Valid() bool {
	return r == RoleGymGoer || r == RolePersonalTrainer
}

// User represents an account in the system.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Username is the unique login name chosen by the user.
	Username string `json:"username" db:"username"`

	// Role determines which dashboards and write operations the
	// user may reach.
	Role Role `json:"role" db:"role"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the user account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
