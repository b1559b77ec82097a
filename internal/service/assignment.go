package service

import (
	"context"
	"errors"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"
)

// TrainerAssigner picks a trainer for a newly registered user. It is a
// policy, not part of the booking engine: swapping the strategy (random,
// least-loaded, specialization match) must not touch booking logic.
type TrainerAssigner interface {
	Assign(ctx context.Context, user *domain.User) (*domain.Trainer, error)
}

// randomAssigner samples one trainer uniformly at random.
type randomAssigner struct {
	trainerRepo repository.TrainerRepository
}

// NewRandomAssigner creates the default random assignment policy.
func NewRandomAssigner(trainerRepo repository.TrainerRepository) TrainerAssigner {
	return &randomAssigner{trainerRepo: trainerRepo}
}

// Assign returns a random trainer, or ErrTrainerNotFound when none exist yet.
func (a *randomAssigner) Assign(ctx context.Context, _ *domain.User) (*domain.Trainer, error) {
	trainer, err := a.trainerRepo.GetRandom(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return trainer, nil
}
