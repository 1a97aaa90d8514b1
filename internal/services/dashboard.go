package services

import (
	"context"
	"errors"

	"github.com/moyedaquib-cmd/fitfresh-apiserver/internal/store"
	"github.com/moyedaquib-cmd/fitfresh-apiserver/types"
)

// GymGoerDashboard is the landing view for gym-goers.
type GymGoerDashboard struct {
	User           types.User           `json:"user"`
	Workouts       []types.Workout      `json:"workouts"`
	CalorieEntries []types.CalorieEntry `json:"calorie_entries"`
}

// TrainerDashboard is the landing view for personal trainers.
type TrainerDashboard struct {
	User      types.User       `json:"user"`
	Exercises []types.Exercise `json:"exercises"`
}

// DashboardService assembles the role-gated landing views. Each
// dashboard rejects the other role with ErrForbidden.
type DashboardService struct {
	users     UserRepository
	workouts  WorkoutRepository
	calories  CalorieEntryRepository
	exercises ExerciseRepository
}

func NewDashboardService(
	users UserRepository,
	workouts WorkoutRepository,
	calories CalorieEntryRepository,
	exercises ExerciseRepository,
) *DashboardService {
	return &DashboardService{
		users:     users,
		workouts:  workouts,
		calories:  calories,
		exercises: exercises,
	}
}

// GymGoer returns the gym-goer dashboard for the caller.
func (s *DashboardService) GymGoer(ctx context.Context, userID int) (GymGoerDashboard, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return GymGoerDashboard{}, err
	}
	if user.Role != types.RoleGymGoer {
		return GymGoerDashboard{}, ErrForbidden
	}

	workouts, err := s.workouts.ListByUser(ctx, userID)
	if err != nil {
		return GymGoerDashboard{}, err
	}
	entries, err := s.calories.ListByUser(ctx, userID)
	if err != nil {
		return GymGoerDashboard{}, err
	}

	return GymGoerDashboard{User: user, Workouts: workouts, CalorieEntries: entries}, nil
}

// Trainer returns the personal trainer dashboard for the caller.
func (s *DashboardService) Trainer(ctx context.Context, userID int) (TrainerDashboard, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return TrainerDashboard{}, err
	}
	if user.Role != types.RolePersonalTrainer {
		return TrainerDashboard{}, ErrForbidden
	}

	exercises, err := s.exercises.ListByTrainer(ctx, userID)
	if err != nil {
		return TrainerDashboard{}, err
	}

	return TrainerDashboard{User: user, Exercises: exercises}, nil
}

func (s *DashboardService) loadUser(ctx context.Context, userID int) (types.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrForbidden
		}
		return types.User{}, err
	}
	return user, nil
}
