package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/mocks"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/services"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/store"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterHashesPassword(t *testing.T) {
	repo := new(mocks.UserRepository)
	var created types.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("types.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(types.User)
		}).
		Return(types.User{ID: 1, Username: "alice", Role: types.RoleGymGoer}, nil)

	svc := services.NewAuthService(repo)
	user, err := svc.Register(context.Background(), "alice", "pw1", "gym_goer")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	assert.NotEqual(t, "pw1", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pw1")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pw2")))

	repo.AssertExpectations(t)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := new(mocks.UserRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("types.User")).
		Return(types.User{}, store.ErrDuplicate)

	svc := services.NewAuthService(repo)
	_, err := svc.Register(context.Background(), "alice", "pw1", "gym_goer")
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	repo := new(mocks.UserRepository)

	svc := services.NewAuthService(repo)
	_, err := svc.Register(context.Background(), "alice", "pw1", "superadmin")

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "role", validationErr.Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	repo := new(mocks.UserRepository)
	svc := services.NewAuthService(repo)

	var validationErr *services.ValidationError

	_, err := svc.Register(context.Background(), "  ", "pw1", "gym_goer")
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.Register(context.Background(), "alice", "", "gym_goer")
	assert.ErrorAs(t, err, &validationErr)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginReportsUnknownUserAndWrongPasswordIdentically(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(mocks.UserRepository)
	repo.On("GetByUsername", mock.Anything, "ghost").
		Return(types.User{}, store.ErrNotFound)
	repo.On("GetByUsername", mock.Anything, "alice").
		Return(types.User{ID: 1, Username: "alice", PasswordHash: string(hash)}, nil)

	svc := services.NewAuthService(repo)

	_, unknownErr := svc.Login(context.Background(), "ghost", "pw1")
	_, wrongErr := svc.Login(context.Background(), "alice", "wrongpw")

	assert.ErrorIs(t, unknownErr, services.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, services.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLoginSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := new(mocks.UserRepository)
	repo.On("GetByUsername", mock.Anything, "alice").
		Return(types.User{ID: 7, Username: "alice", PasswordHash: string(hash)}, nil)

	svc := services.NewAuthService(repo)
	user, err := svc.Login(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
}

func TestLoginPropagatesRepoErrors(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := new(mocks.UserRepository)
	repo.On("GetByUsername", mock.Anything, "alice").
		Return(types.User{}, repoErr)

	svc := services.NewAuthService(repo)
	_, err := svc.Login(context.Background(), "alice", "pw1")
	assert.ErrorIs(t, err, repoErr)
}
