package services

import (
	"context"
	"strings"
	"time"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
)

// WorkoutRepository defines persistence operations for workouts.
type WorkoutRepository interface {
	GetByID(ctx context.Context, id int) (types.Workout, error)
	ListByUser(ctx context.Context, userID int) ([]types.Workout, error)
	Create(ctx context.Context, workout types.Workout) (types.Workout, error)
	Update(ctx context.Context, workout types.Workout) (types.Workout, error)
	Delete(ctx context.Context, id int) error
}

// WorkoutService encapsulates workout use-cases. Mutations check
// existence before ownership, so an absent record reports not-found and
// someone else's record reports forbidden.
type WorkoutService struct {
	repo WorkoutRepository
}

func NewWorkoutService(repo WorkoutRepository) *WorkoutService {
	return &WorkoutService{repo: repo}
}

// Log records a workout for the calling user. The date defaults to the
// day the entry is logged.
func (s *WorkoutService) Log(ctx context.Context, userID int, workout types.Workout) (types.Workout, error) {
	if err := validateWorkout(workout); err != nil {
		return types.Workout{}, err
	}
	workout.UserID = userID
	if workout.Date.IsZero() {
		workout.Date = today()
	}
	return s.repo.Create(ctx, workout)
}

// ListForUser returns the caller's workouts, most recent first.
func (s *WorkoutService) ListForUser(ctx context.Context, userID int) ([]types.Workout, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get loads a single workout, rejecting callers other than the owner.
func (s *WorkoutService) Get(ctx context.Context, currentUserID, id int) (types.Workout, error) {
	workout, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.Workout{}, err
	}
	if workout.UserID != currentUserID {
		return types.Workout{}, ErrForbidden
	}
	return workout, nil
}

// Update edits a workout owned by the caller.
func (s *WorkoutService) Update(ctx context.Context, currentUserID int, workout types.Workout) (types.Workout, error) {
	existing, err := s.repo.GetByID(ctx, workout.ID)
	if err != nil {
		return types.Workout{}, err
	}
	if existing.UserID != currentUserID {
		return types.Workout{}, ErrForbidden
	}
	if err := validateWorkout(workout); err != nil {
		return types.Workout{}, err
	}
	workout.UserID = existing.UserID
	if workout.Date.IsZero() {
		workout.Date = existing.Date
	}
	return s.repo.Update(ctx, workout)
}

// Delete removes a workout owned by the caller.
func (s *WorkoutService) Delete(ctx context.Context, currentUserID, id int) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != currentUserID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func validateWorkout(workout types.Workout) error {
	if strings.TrimSpace(workout.Exercise) == "" {
		return invalidField("exercise", "required")
	}
	if workout.Sets < 0 {
		return invalidField("sets", "must not be negative")
	}
	if workout.Reps < 0 {
		return invalidField("reps", "must not be negative")
	}
	if workout.Weight < 0 {
		return invalidField("weight", "must not be negative")
	}
	return nil
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
