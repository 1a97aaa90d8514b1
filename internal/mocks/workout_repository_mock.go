package mocks

import (
	"context"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
	"github.com/stretchr/testify/mock"
)

// WorkoutRepository is a testify mock of services.WorkoutRepository.
type WorkoutRepository struct{ mock.Mock }

func (m *WorkoutRepository) GetByID(ctx context.Context, id int) (types.Workout, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(types.Workout), args.Error(1)
}

func (m *WorkoutRepository) ListByUser(ctx context.Context, userID int) ([]types.Workout, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Workout), args.Error(1)
}

func (m *WorkoutRepository) Create(ctx context.Context, workout types.Workout) (types.Workout, error) {
	args := m.Called(ctx, workout)
	return args.Get(0).(types.Workout), args.Error(1)
}

func (m *WorkoutRepository) Update(ctx context.Context, workout types.Workout) (types.Workout, error) {
	args := m.Called(ctx, workout)
	return args.Get(0).(types.Workout), args.Error(1)
}

func (m *WorkoutRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
