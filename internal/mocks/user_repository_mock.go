package mocks

import (
	"context"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
	"github.com/stretchr/testify/mock"
)

// UserRepository is a testify mock of services.UserRepository.
type UserRepository struct{ mock.Mock }

func (m *UserRepository) GetByID(ctx context.Context, id int) (types.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(types.User), args.Error(1)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (types.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(types.User), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(types.User), args.Error(1)
}
