package mocks

import (
	"context"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
	"github.com/stretchr/testify/mock"
)

// CalorieEntryRepository is a testify mock of services.CalorieEntryRepository.
type CalorieEntryRepository struct{ mock.Mock }

func (m *CalorieEntryRepository) GetByID(ctx context.Context, id int) (types.CalorieEntry, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(types.CalorieEntry), args.Error(1)
}

func (m *CalorieEntryRepository) ListByUser(ctx context.Context, userID int) ([]types.CalorieEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.CalorieEntry), args.Error(1)
}

func (m *CalorieEntryRepository) Create(ctx context.Context, entry types.CalorieEntry) (types.CalorieEntry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(types.CalorieEntry), args.Error(1)
}

func (m *CalorieEntryRepository) Update(ctx context.Context, entry types.CalorieEntry) (types.CalorieEntry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(types.CalorieEntry), args.Error(1)
}

func (m *CalorieEntryRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}
