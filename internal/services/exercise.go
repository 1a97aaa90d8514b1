package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/storage"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/store"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
)

// ExerciseRepository defines persistence operations for the catalog.
type ExerciseRepository interface {
	GetByID(ctx context.Context, id int) (types.Exercise, error)
	List(ctx context.Context) ([]types.Exercise, error)
	ListByTrainer(ctx context.Context, trainerID int) ([]types.Exercise, error)
	Create(ctx context.Context, exercise types.Exercise) (types.Exercise, error)
}

// ImageUpload carries an optional demo image received with a new exercise.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExerciseService encapsulates catalog use-cases. Authoring is gated on
// the personal trainer role; the catalog itself is readable by anyone.
type ExerciseService struct {
	repo   ExerciseRepository
	users  UserRepository
	images *storage.Storage
}

// NewExerciseService constructs the service. images may be nil, in which
// case exercise image uploads are rejected.
func NewExerciseService(repo ExerciseRepository, users UserRepository, images *storage.Storage) *ExerciseService {
	return &ExerciseService{repo: repo, users: users, images: images}
}

// Create adds a catalog entry. Only personal trainers may author
// exercises; the authenticated caller becomes the trainer of record.
func (s *ExerciseService) Create(ctx context.Context, currentUserID int, exercise types.Exercise, image *ImageUpload) (types.Exercise, error) {
	caller, err := s.users.GetByID(ctx, currentUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Exercise{}, ErrForbidden
		}
		return types.Exercise{}, err
	}
	if caller.Role != types.RolePersonalTrainer {
		return types.Exercise{}, ErrForbidden
	}

	if err := validateExercise(exercise); err != nil {
		return types.Exercise{}, err
	}

	if image != nil {
		key, err := s.uploadImage(ctx, image)
		if err != nil {
			return types.Exercise{}, err
		}
		exercise.ImageURL = key
	}

	exercise.TrainerID = caller.ID
	return s.repo.Create(ctx, exercise)
}

// List returns the whole catalog.
func (s *ExerciseService) List(ctx context.Context) ([]types.Exercise, error) {
	return s.repo.List(ctx)
}

// Get loads one catalog entry.
func (s *ExerciseService) Get(ctx context.Context, id int) (types.Exercise, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByTrainer returns the entries authored by one trainer.
func (s *ExerciseService) ListByTrainer(ctx context.Context, trainerID int) ([]types.Exercise, error) {
	return s.repo.ListByTrainer(ctx, trainerID)
}

// OpenImage opens the stored demo image of an exercise. It reports
// store.ErrNotFound when the exercise has no image.
func (s *ExerciseService) OpenImage(ctx context.Context, id int) (io.ReadCloser, error) {
	exercise, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if exercise.ImageURL == "" || s.images == nil {
		return nil, store.ErrNotFound
	}
	return s.images.Get(ctx, exercise.ImageURL)
}

func (s *ExerciseService) uploadImage(ctx context.Context, image *ImageUpload) (string, error) {
	if s.images == nil {
		return "", invalidField("image", "image uploads are not enabled")
	}
	if len(image.Data) == 0 {
		return "", invalidField("image", "empty file")
	}

	ext := strings.ToLower(path.Ext(image.Filename))
	key := fmt.Sprintf("exercise-images/%d%s", time.Now().UnixNano(), ext)
	reader := bytes.NewReader(image.Data)
	if err := s.images.Put(ctx, key, reader, int64(len(image.Data)), image.ContentType); err != nil {
		return "", err
	}
	return key, nil
}

func validateExercise(exercise types.Exercise) error {
	if strings.TrimSpace(exercise.Name) == "" {
		return invalidField("name", "required")
	}
	if strings.TrimSpace(exercise.Description) == "" {
		return invalidField("description", "required")
	}
	if strings.TrimSpace(exercise.MuscleGroup) == "" {
		return invalidField("muscle_group", "required")
	}
	if strings.TrimSpace(exercise.Difficulty) == "" {
		return invalidField("difficulty", "required")
	}
	return nil
}
