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

// fakeFavouriteRepo mimics the store's toggle semantics in memory so the
// add/remove round trip can be observed.
type fakeFavouriteRepo struct {
	pairs map[[2]int]bool
}

func newFakeFavouriteRepo() *fakeFavouriteRepo {
	return &fakeFavouriteRepo{pairs: make(map[[2]int]bool)}
}

func (f *fakeFavouriteRepo) Toggle(ctx context.Context, userID, exerciseID int) (bool, error) {
	key := [2]int{userID, exerciseID}
	if f.pairs[key] {
		delete(f.pairs, key)
		return false, nil
	}
	f.pairs[key] = true
	return true, nil
}

func (f *fakeFavouriteRepo) Exists(ctx context.Context, userID, exerciseID int) (bool, error) {
	return f.pairs[[2]int{userID, exerciseID}], nil
}

func (f *fakeFavouriteRepo) ListExercisesByUser(ctx context.Context, userID int) ([]types.Exercise, error) {
	return nil, nil
}

func TestToggleFavouriteRoundTrip(t *testing.T) {
	exercises := new(mocks.ExerciseRepository)
	exercises.On("GetByID", mock.Anything, 10).
		Return(types.Exercise{ID: 10}, nil)

	svc := services.NewFavouriteService(newFakeFavouriteRepo(), exercises)
	ctx := context.Background()

	favourited, err := svc.Toggle(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, favourited)

	favourited, err = svc.Toggle(ctx, 1, 10)
	require.NoError(t, err)
	assert.False(t, favourited)

	// Two toggles return to the original state.
	exists, err := svc.IsFavourited(ctx, 1, 10)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestToggleFavouriteUnknownExercise(t *testing.T) {
	exercises := new(mocks.ExerciseRepository)
	exercises.On("GetByID", mock.Anything, 99).
		Return(types.Exercise{}, store.ErrNotFound)

	repo := newFakeFavouriteRepo()
	svc := services.NewFavouriteService(repo, exercises)

	_, err := svc.Toggle(context.Background(), 1, 99)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, repo.pairs)
}
