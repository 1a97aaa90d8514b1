package mocks

import (
	"context"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
	"github.com/stretchr/testify/mock"
)

// ExerciseRepository is a testify mock of services.ExerciseRepository.
type ExerciseRepository struct{ mock.Mock }

func (m *ExerciseRepository) GetByID(ctx context.Context, id int) (types.Exercise, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(types.Exercise), args.Error(1)
}

func (m *ExerciseRepository) List(ctx context.Context) ([]types.Exercise, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Exercise), args.Error(1)
}

func (m *ExerciseRepository) ListByTrainer(ctx context.Context, trainerID int) ([]types.Exercise, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Exercise), args.Error(1)
}

func (m *ExerciseRepository) Create(ctx context.Context, exercise types.Exercise) (types.Exercise, error) {
	args := m.Called(ctx, exercise)
	return args.Get(0).(types.Exercise), args.Error(1)
}
