package service

import (
	"context"
	"errors"
	"math"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrRatingValidation = errors.New("rating validation failed")
)

type RatingService interface {
	SubmitRating(ctx context.Context, userID, trainerID primitive.ObjectID, score int, feedback string) (*domain.Rating, error)
	GetTrainerRatings(ctx context.Context, trainerID primitive.ObjectID) (*domain.RatingSummary, error)
}

// ratingService records user feedback for trainers and aggregates it.
type ratingService struct {
	ratingRepo  repository.RatingRepository
	userRepo    repository.UserRepository
	trainerRepo repository.TrainerRepository
}

// NewRatingService creates a new instance of ratingService.
func NewRatingService(
	ratingRepo repository.RatingRepository,
	userRepo repository.UserRepository,
	trainerRepo repository.TrainerRepository,
) RatingService {
	return &ratingService{
		ratingRepo:  ratingRepo,
		userRepo:    userRepo,
		trainerRepo: trainerRepo,
	}
}

// SubmitRating stores a user's score and feedback for a trainer.
func (s *ratingService) SubmitRating(ctx context.Context, userID, trainerID primitive.ObjectID, score int, feedback string) (*domain.Rating, error) {
	if score < domain.MinRatingScore || score > domain.MaxRatingScore {
		return nil, ErrRatingValidation
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.trainerRepo.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	rating := &domain.Rating{
		UserID:    userID,
		TrainerID: trainerID,
		Score:     score,
		Feedback:  feedback,
	}

	ratingID, err := s.ratingRepo.Create(ctx, rating)
	if err != nil {
		return nil, err
	}
	rating.ID = ratingID
	return rating, nil
}

// GetTrainerRatings returns the trainer's ratings with their average score,
// rounded to one decimal. A trainer with no ratings averages zero.
func (s *ratingService) GetTrainerRatings(ctx context.Context, trainerID primitive.ObjectID) (*domain.RatingSummary, error) {
	if _, err := s.trainerRepo.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	ratings, err := s.ratingRepo.GetByTrainerID(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	summary := &domain.RatingSummary{
		TotalRatings: len(ratings),
		Ratings:      ratings,
	}
	if len(ratings) > 0 {
		total := 0
		for _, r := range ratings {
			total += r.Score
		}
		average := float64(total) / float64(len(ratings))
		summary.AverageScore = math.Round(average*10) / 10
	}
	return summary, nil
}
