package service

import (
	"context"
	"errors"
	"time"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutValidation = errors.New("workout entry validation failed")
	ErrWorkoutLogEmpty   = errors.New("no workout log found for user")
)

const maxWorkoutMinutes = 300

type WorkoutService interface {
	LogWorkouts(ctx context.Context, userID, trainerID primitive.ObjectID, date time.Time, entries []domain.WorkoutEntry) error
	GetLogOfUser(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutLog, error)
}

// workoutService implements the WorkoutService interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	userRepo    repository.UserRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, userRepo repository.UserRepository) WorkoutService {
	return &workoutService{
		workoutRepo: workoutRepo,
		userRepo:    userRepo,
	}
}

// LogWorkouts appends a day of workout entries to the user's log. Entry
// dates collapse to start of day; calories default from type and duration.
func (s *workoutService) LogWorkouts(ctx context.Context, userID, trainerID primitive.ObjectID, date time.Time, entries []domain.WorkoutEntry) error {
	if userID == primitive.NilObjectID || len(entries) == 0 {
		return ErrWorkoutValidation
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	for i := range entries {
		entry := &entries[i]
		if entry.WorkoutName == "" || !domain.ValidWorkoutType(entry.WorkoutType) {
			return ErrWorkoutValidation
		}
		if entry.Duration < 1 || entry.Duration > maxWorkoutMinutes {
			return ErrWorkoutValidation
		}
		entry.FillCalories()
	}

	day := domain.DailyWorkout{
		Date:     domain.StartOfDay(date),
		Workouts: entries,
	}
	return s.workoutRepo.AppendDay(ctx, userID, trainerID, day)
}

// GetLogOfUser fetches the user's workout history document.
func (s *workoutService) GetLogOfUser(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutLog, error) {
	log, err := s.workoutRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutLogEmpty
		}
		return nil, err
	}
	return log, nil
}
