package services_test

import (
	"context"
	"testing"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/mocks"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/services"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/store"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateExerciseRequiresTrainerRole(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByID", mock.Anything, 1).
		Return(types.User{ID: 1, Role: types.RoleGymGoer}, nil)
	repo := new(mocks.ExerciseRepository)

	svc := services.NewExerciseService(repo, users, nil)
	_, err := svc.Create(context.Background(), 1, types.Exercise{
		Name:        "push up",
		Description: "bodyweight push",
		MuscleGroup: "chest",
		Difficulty:  "easy",
	}, nil)

	assert.ErrorIs(t, err, services.ErrForbidden)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateExerciseSetsTrainerOfRecord(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByID", mock.Anything, 9).
		Return(types.User{ID: 9, Role: types.RolePersonalTrainer}, nil)
	repo := new(mocks.ExerciseRepository)
	var created types.Exercise
	repo.On("Create", mock.Anything, mock.AnythingOfType("types.Exercise")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(types.Exercise)
		}).
		Return(types.Exercise{ID: 1}, nil)

	svc := services.NewExerciseService(repo, users, nil)
	_, err := svc.Create(context.Background(), 9, types.Exercise{
		Name:        "push up",
		Description: "bodyweight push",
		MuscleGroup: "chest",
		Difficulty:  "easy",
		TrainerID:   42, // must be overwritten with the caller
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 9, created.TrainerID)
}

func TestCreateExerciseRoleCheckBeforeValidation(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByID", mock.Anything, 1).
		Return(types.User{ID: 1, Role: types.RoleGymGoer}, nil)
	repo := new(mocks.ExerciseRepository)

	svc := services.NewExerciseService(repo, users, nil)
	// Both the role and the fields are wrong; forbidden wins.
	_, err := svc.Create(context.Background(), 1, types.Exercise{}, nil)

	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestCreateExerciseValidatesFields(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByID", mock.Anything, 9).
		Return(types.User{ID: 9, Role: types.RolePersonalTrainer}, nil)
	repo := new(mocks.ExerciseRepository)

	svc := services.NewExerciseService(repo, users, nil)
	_, err := svc.Create(context.Background(), 9, types.Exercise{Name: "push up"}, nil)

	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateExerciseUnknownCallerForbidden(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByID", mock.Anything, 404).
		Return(types.User{}, store.ErrNotFound)
	repo := new(mocks.ExerciseRepository)

	svc := services.NewExerciseService(repo, users, nil)
	_, err := svc.Create(context.Background(), 404, types.Exercise{
		Name:        "x",
		Description: "y",
		MuscleGroup: "z",
		Difficulty:  "easy",
	}, nil)

	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestCreateExerciseImageWithoutStorage(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("GetByID", mock.Anything, 9).
		Return(types.User{ID: 9, Role: types.RolePersonalTrainer}, nil)
	repo := new(mocks.ExerciseRepository)

	svc := services.NewExerciseService(repo, users, nil)
	_, err := svc.Create(context.Background(), 9, types.Exercise{
		Name:        "push up",
		Description: "bodyweight push",
		MuscleGroup: "chest",
		Difficulty:  "easy",
	}, &services.ImageUpload{Filename: "demo.png", Data: []byte("png")})

	var validationErr *services.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
