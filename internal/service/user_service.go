package service

import (
	"context"
	"errors"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService exposes profile reads and updates.
type UserService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, update ProfileUpdate) (*domain.User, error)
}

// ProfileUpdate carries the fields a user may change. Nil pointers mean
// "leave unchanged". Role and password are deliberately absent.
type ProfileUpdate struct {
	FullName         *string
	Age              *int
	Gender           *string
	Weight           *float64
	Height           *float64
	FitnessGoal      *domain.FitnessGoal
	DailyCalorieGoal *int
	DailyWaterGoal   *int
	Phone            *string
	Address          *domain.Address
	ProfilePicURL    *string
}

// userService implements the UserService interface.
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetProfile fetches a user with the password hash cleared.
func (s *userService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile applies the provided fields and persists the result.
func (s *userService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update ProfileUpdate) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.Age != nil {
		user.Age = *update.Age
	}
	if update.Gender != nil {
		user.Gender = *update.Gender
	}
	if update.Weight != nil {
		user.Weight = *update.Weight
	}
	if update.Height != nil {
		user.Height = *update.Height
	}
	if update.FitnessGoal != nil {
		user.FitnessGoal = *update.FitnessGoal
	}
	if update.DailyCalorieGoal != nil {
		user.DailyCalorieGoal = *update.DailyCalorieGoal
	}
	if update.DailyWaterGoal != nil {
		user.DailyWaterGoal = *update.DailyWaterGoal
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if update.ProfilePicURL != nil {
		user.ProfilePicURL = *update.ProfilePicURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}
