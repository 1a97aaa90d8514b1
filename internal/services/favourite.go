package services

import (
	"context"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
)

// FavouriteRepository defines persistence operations for favourites.
type FavouriteRepository interface {
	Toggle(ctx context.Context, userID, exerciseID int) (bool, error)
	Exists(ctx context.Context, userID, exerciseID int) (bool, error)
	ListExercisesByUser(ctx context.Context, userID int) ([]types.Exercise, error)
}

// FavouriteService encapsulates favourite use-cases. The toggle is
// idempotent over two calls: toggling twice restores the original state.
type FavouriteService struct {
	repo      FavouriteRepository
	exercises ExerciseRepository
}

func NewFavouriteService(repo FavouriteRepository, exercises ExerciseRepository) *FavouriteService {
	return &FavouriteService{repo: repo, exercises: exercises}
}

// Toggle favourites the exercise for the caller, or unfavourites it if
// it already is one. It reports whether the exercise is favourited
// afterwards.
func (s *FavouriteService) Toggle(ctx context.Context, userID, exerciseID int) (bool, error) {
	if _, err := s.exercises.GetByID(ctx, exerciseID); err != nil {
		return false, err
	}
	return s.repo.Toggle(ctx, userID, exerciseID)
}

// IsFavourited reports whether the caller has favourited the exercise.
func (s *FavouriteService) IsFavourited(ctx context.Context, userID, exerciseID int) (bool, error) {
	return s.repo.Exists(ctx, userID, exerciseID)
}

// ListForUser returns the exercises the caller has favourited.
func (s *FavouriteService) ListForUser(ctx context.Context, userID int) ([]types.Exercise, error) {
	return s.repo.ListExercisesByUser(ctx, userID)
}
