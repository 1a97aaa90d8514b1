package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/mocks"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/services"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/store"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogWorkoutDefaultsToToday(t *testing.T) {
	repo := new(mocks.WorkoutRepository)
	var created types.Workout
	repo.On("Create", mock.Anything, mock.AnythingOfType("types.Workout")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(types.Workout)
		}).
		Return(types.Workout{ID: 1}, nil)

	svc := services.NewWorkoutService(repo)
	_, err := svc.Log(context.Background(), 3, types.Workout{
		Exercise: "bench press",
		Sets:     3,
		Reps:     10,
		Weight:   50,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, created.UserID)
	now := time.Now().UTC()
	assert.Equal(t, now.Year(), created.Date.Year())
	assert.Equal(t, now.YearDay(), created.Date.YearDay())
}

func TestLogWorkoutRejectsNegativeValues(t *testing.T) {
	repo := new(mocks.WorkoutRepository)
	svc := services.NewWorkoutService(repo)

	tests := []struct {
		name    string
		workout types.Workout
	}{
		{name: "negative sets", workout: types.Workout{Exercise: "squat", Sets: -1, Reps: 5, Weight: 60}},
		{name: "negative reps", workout: types.Workout{Exercise: "squat", Sets: 3, Reps: -5, Weight: 60}},
		{name: "negative weight", workout: types.Workout{Exercise: "squat", Sets: 3, Reps: 5, Weight: -60}},
		{name: "missing exercise", workout: types.Workout{Exercise: "  ", Sets: 3, Reps: 5, Weight: 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Log(context.Background(), 1, tt.workout)
			var validationErr *services.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateWorkoutForbiddenForNonOwner(t *testing.T) {
	repo := new(mocks.WorkoutRepository)
	repo.On("GetByID", mock.Anything, 5).
		Return(types.Workout{ID: 5, UserID: 1, Exercise: "deadlift"}, nil)

	svc := services.NewWorkoutService(repo)
	_, err := svc.Update(context.Background(), 2, types.Workout{
		ID:       5,
		Exercise: "deadlift",
		Sets:     5,
		Reps:     5,
		Weight:   100,
	})

	assert.ErrorIs(t, err, services.ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateWorkoutNotFoundBeforeOwnership(t *testing.T) {
	repo := new(mocks.WorkoutRepository)
	repo.On("GetByID", mock.Anything, 99).
		Return(types.Workout{}, store.ErrNotFound)

	svc := services.NewWorkoutService(repo)
	_, err := svc.Update(context.Background(), 2, types.Workout{ID: 99, Exercise: "row", Sets: 1, Reps: 1, Weight: 1})

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUpdateWorkoutKeepsOwnerAndDate(t *testing.T) {
	existingDate := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	repo := new(mocks.WorkoutRepository)
	repo.On("GetByID", mock.Anything, 5).
		Return(types.Workout{ID: 5, UserID: 1, Date: existingDate, Exercise: "deadlift"}, nil)
	var updated types.Workout
	repo.On("Update", mock.Anything, mock.AnythingOfType("types.Workout")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(types.Workout)
		}).
		Return(types.Workout{ID: 5}, nil)

	svc := services.NewWorkoutService(repo)
	_, err := svc.Update(context.Background(), 1, types.Workout{ID: 5, Exercise: "deadlift", Sets: 5, Reps: 3, Weight: 120})
	require.NoError(t, err)

	assert.Equal(t, 1, updated.UserID)
	assert.Equal(t, existingDate, updated.Date)
}

func TestDeleteWorkoutForbiddenForNonOwner(t *testing.T) {
	repo := new(mocks.WorkoutRepository)
	repo.On("GetByID", mock.Anything, 5).
		Return(types.Workout{ID: 5, UserID: 1}, nil)

	svc := services.NewWorkoutService(repo)
	err := svc.Delete(context.Background(), 2, 5)

	assert.ErrorIs(t, err, services.ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGetWorkoutForbiddenForNonOwner(t *testing.T) {
	repo := new(mocks.WorkoutRepository)
	repo.On("GetByID", mock.Anything, 5).
		Return(types.Workout{ID: 5, UserID: 1}, nil)

	svc := services.NewWorkoutService(repo)
	_, err := svc.Get(context.Background(), 2, 5)

	assert.ErrorIs(t, err, services.ErrForbidden)
}
