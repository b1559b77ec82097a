package service

import (
	"context"
	"errors"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrNutritionValidation = errors.New("nutrition log validation failed")
	ErrWaterIntakeExceeded = errors.New("water intake cannot exceed 8 glasses per day")
)

type NutritionService interface {
	LogMeals(ctx context.Context, userID primitive.ObjectID, trainerID *primitive.ObjectID, meals []domain.Meal, waterIntake int) (*domain.NutritionLog, error)
	GetLogsOfUser(ctx context.Context, userID primitive.ObjectID) ([]domain.NutritionLog, error)
}

// nutritionService implements the NutritionService interface.
type nutritionService struct {
	nutritionRepo repository.NutritionRepository
	userRepo      repository.UserRepository
}

// NewNutritionService creates a new instance of nutritionService.
func NewNutritionService(nutritionRepo repository.NutritionRepository, userRepo repository.UserRepository) NutritionService {
	return &nutritionService{
		nutritionRepo: nutritionRepo,
		userRepo:      userRepo,
	}
}

// LogMeals stores a day's meals for a user. Missing macros are defaulted
// from the meal's calories before persisting.
func (s *nutritionService) LogMeals(ctx context.Context, userID primitive.ObjectID, trainerID *primitive.ObjectID, meals []domain.Meal, waterIntake int) (*domain.NutritionLog, error) {
	if userID == primitive.NilObjectID || len(meals) == 0 {
		return nil, ErrNutritionValidation
	}
	if waterIntake < 0 || waterIntake > domain.MaxWaterGlasses {
		return nil, ErrWaterIntakeExceeded
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	for i := range meals {
		if !domain.ValidMealType(meals[i].MealType) || meals[i].FoodName == "" || meals[i].Calories <= 0 {
			return nil, ErrNutritionValidation
		}
		meals[i].FillMacros()
	}

	log := &domain.NutritionLog{
		UserID:      userID,
		TrainerID:   trainerID,
		Meals:       meals,
		WaterIntake: waterIntake,
	}

	logID, err := s.nutritionRepo.Create(ctx, log)
	if err != nil {
		return nil, err
	}
	log.ID = logID
	return log, nil
}

// GetLogsOfUser lists a user's nutrition logs, newest first.
func (s *nutritionService) GetLogsOfUser(ctx context.Context, userID primitive.ObjectID) ([]domain.NutritionLog, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	return s.nutritionRepo.GetByUserID(ctx, userID)
}
