package mocks

import (
	"context"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
	"github.com/stretchr/testify/mock"
)

// ReviewRepository is a testify mock of services.ReviewRepository.
type ReviewRepository struct{ mock.Mock }

func (m *ReviewRepository) Create(ctx context.Context, review types.Review) (types.Review, error) {
	args := m.Called(ctx, review)
	return args.Get(0).(types.Review), args.Error(1)
}

func (m *ReviewRepository) ListByExercise(ctx context.Context, exerciseID int) ([]types.Review, error) {
	args := m.Called(ctx, exerciseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Review), args.Error(1)
}
