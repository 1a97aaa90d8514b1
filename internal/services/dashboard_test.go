package services_test

import (
	"context"
	"testing"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/mocks"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/services"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDashboardService(users *mocks.UserRepository, workouts *mocks.WorkoutRepository, calories *mocks.CalorieEntryRepository, exercises *mocks.ExerciseRepository) *services.DashboardService {
	return services.NewDashboardService(users, workouts, calories, exercises)
}

func TestGymGoerDashboardRejectsTrainer(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByID", mock.Anything, 9).
		Return(types.User{ID: 9, Role: types.RolePersonalTrainer}, nil)

	svc := newDashboardService(users, new(mocks.WorkoutRepository), new(mocks.CalorieEntryRepository), new(mocks.ExerciseRepository))
	_, err := svc.GymGoer(context.Background(), 9)

	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestTrainerDashboardRejectsGymGoer(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByID", mock.Anything, 1).
		Return(types.User{ID: 1, Role: types.RoleGymGoer}, nil)

	svc := newDashboardService(users, new(mocks.WorkoutRepository), new(mocks.CalorieEntryRepository), new(mocks.ExerciseRepository))
	_, err := svc.Trainer(context.Background(), 1)

	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestGymGoerDashboardAggregates(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByID", mock.Anything, 1).
		Return(types.User{ID: 1, Username: "alice", Role: types.RoleGymGoer}, nil)
	workouts := new(mocks.WorkoutRepository)
	workouts.On("ListByUser", mock.Anything, 1).
		Return([]types.Workout{{ID: 3, UserID: 1, Exercise: "squat"}}, nil)
	calories := new(mocks.CalorieEntryRepository)
	calories.On("ListByUser", mock.Anything, 1).
		Return([]types.CalorieEntry{{ID: 8, UserID: 1, Meal: "lunch", Calories: 600}}, nil)

	svc := newDashboardService(users, workouts, calories, new(mocks.ExerciseRepository))
	dashboard, err := svc.GymGoer(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "alice", dashboard.User.Username)
	assert.Len(t, dashboard.Workouts, 1)
	assert.Len(t, dashboard.CalorieEntries, 1)
}

func TestTrainerDashboardListsAuthoredExercises(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByID", mock.Anything, 9).
		Return(types.User{ID: 9, Username: "carol", Role: types.RolePersonalTrainer}, nil)
	exercises := new(mocks.ExerciseRepository)
	exercises.On("ListByTrainer", mock.Anything, 9).
		Return([]types.Exercise{{ID: 2, Name: "push up", TrainerID: 9}}, nil)

	svc := newDashboardService(users, new(mocks.WorkoutRepository), new(mocks.CalorieEntryRepository), exercises)
	dashboard, err := svc.Trainer(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, "carol", dashboard.User.Username)
	assert.Len(t, dashboard.Exercises, 1)
}
