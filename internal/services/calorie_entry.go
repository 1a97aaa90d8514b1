package services

import (
	"context"
	"strings"
	"time"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
)

// CalorieEntryRepository defines persistence operations for calorie entries.
type CalorieEntryRepository interface {
	GetByID(ctx context.Context, id int) (types.CalorieEntry, error)
	ListByUser(ctx context.Context, userID int) ([]types.CalorieEntry, error)
	Create(ctx context.Context, entry types.CalorieEntry) (types.CalorieEntry, error)
	Update(ctx context.Context, entry types.CalorieEntry) (types.CalorieEntry, error)
	Delete(ctx context.Context, id int) error
}

// CalorieEntryService encapsulates calorie tracking use-cases with the
// same existence-then-ownership ordering as workouts.
type CalorieEntryService struct {
	repo CalorieEntryRepository
}

func NewCalorieEntryService(repo CalorieEntryRepository) *CalorieEntryService {
	return &CalorieEntryService{repo: repo}
}

// Track records a meal for the calling user. The entry time defaults to
// now, in UTC.
func (s *CalorieEntryService) Track(ctx context.Context, userID int, entry types.CalorieEntry) (types.CalorieEntry, error) {
	if err := validateCalorieEntry(entry); err != nil {
		return types.CalorieEntry{}, err
	}
	entry.UserID = userID
	if entry.EntryTime.IsZero() {
		entry.EntryTime = time.Now().UTC()
	}
	return s.repo.Create(ctx, entry)
}

// ListForUser returns the caller's entries, most recent first.
func (s *CalorieEntryService) ListForUser(ctx context.Context, userID int) ([]types.CalorieEntry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Get loads a single entry, rejecting callers other than the owner.
func (s *CalorieEntryService) Get(ctx context.Context, currentUserID, id int) (types.CalorieEntry, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.CalorieEntry{}, err
	}
	if entry.UserID != currentUserID {
		return types.CalorieEntry{}, ErrForbidden
	}
	return entry, nil
}

// Update edits an entry owned by the caller.
func (s *CalorieEntryService) Update(ctx context.Context, currentUserID int, entry types.CalorieEntry) (types.CalorieEntry, error) {
	existing, err := s.repo.GetByID(ctx, entry.ID)
	if err != nil {
		return types.CalorieEntry{}, err
	}
	if existing.UserID != currentUserID {
		return types.CalorieEntry{}, ErrForbidden
	}
	if err := validateCalorieEntry(entry); err != nil {
		return types.CalorieEntry{}, err
	}
	entry.UserID = existing.UserID
	if entry.EntryTime.IsZero() {
		entry.EntryTime = existing.EntryTime
	}
	return s.repo.Update(ctx, entry)
}

// Delete removes an entry owned by the caller.
func (s *CalorieEntryService) Delete(ctx context.Context, currentUserID, id int) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != currentUserID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func validateCalorieEntry(entry types.CalorieEntry) error {
	if strings.TrimSpace(entry.Meal) == "" {
		return invalidField("meal", "required")
	}
	if entry.Calories < 0 {
		return invalidField("calories", "must not be negative")
	}
	return nil
}
