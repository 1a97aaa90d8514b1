package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review types.Review) (types.Review, error)
	ListByExercise(ctx context.Context, exerciseID int) ([]types.Review, error)
}

// ReviewService encapsulates review use-cases. A rating outside [1,5]
// is rejected before anything is written, never clamped; a second
// review of the same exercise fails with store.ErrDuplicate.
type ReviewService struct {
	repo      ReviewRepository
	exercises ExerciseRepository
}

func NewReviewService(repo ReviewRepository, exercises ExerciseRepository) *ReviewService {
	return &ReviewService{repo: repo, exercises: exercises}
}

// Submit records the caller's review of an exercise.
func (s *ReviewService) Submit(ctx context.Context, userID, exerciseID, rating int, comment string) (types.Review, error) {
	if _, err := s.exercises.GetByID(ctx, exerciseID); err != nil {
		return types.Review{}, err
	}
	if rating < types.MinRating || rating > types.MaxRating {
		return types.Review{}, invalidField("rating", fmt.Sprintf("must be between %d and %d", types.MinRating, types.MaxRating))
	}
	return s.repo.Create(ctx, types.Review{
		UserID:     userID,
		ExerciseID: exerciseID,
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
	})
}

// ListForExercise returns the reviews left on an exercise, newest first.
func (s *ReviewService) ListForExercise(ctx context.Context, exerciseID int) ([]types.Review, error) {
	return s.repo.ListByExercise(ctx, exerciseID)
}
