package service

import (
	"context"
	"errors"
	"regexp"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrTrainerAlreadyExists = errors.New("trainer profile with this email already exists")
	ErrTrainerValidation    = errors.New("trainer profile validation failed")
)

const maxTrainerExperienceYears = 60

var hhmmPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// TrainerInput carries the fields for creating or updating a trainer profile.
type TrainerInput struct {
	FullName       string
	Email          string
	Password       string
	Specialization []domain.Specialization
	Experience     int
	Bio            string
	Availability   domain.Availability
	ProfilePicURL  string
}

type TrainerService interface {
	CreateTrainer(ctx context.Context, input TrainerInput) (*domain.Trainer, error)
	GetAllTrainers(ctx context.Context) ([]domain.Trainer, error)
	GetTrainerByID(ctx context.Context, trainerID primitive.ObjectID) (*domain.Trainer, error)
	UpdateTrainer(ctx context.Context, trainerID primitive.ObjectID, input TrainerInput) (*domain.Trainer, error)
	DeleteTrainer(ctx context.Context, trainerID primitive.ObjectID) error
}

// --- Service Implementation ---

// trainerService implements the TrainerService interface.
type trainerService struct {
	trainerRepo repository.TrainerRepository
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(trainerRepo repository.TrainerRepository) TrainerService {
	return &trainerService{trainerRepo: trainerRepo}
}

// CreateTrainer registers a new trainer profile.
func (s *trainerService) CreateTrainer(ctx context.Context, input TrainerInput) (*domain.Trainer, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return nil, ErrTrainerValidation
	}
	if err := validateTrainerInput(input); err != nil {
		return nil, err
	}

	_, err := s.trainerRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrTrainerAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	trainer := &domain.Trainer{
		FullName:       input.FullName,
		Email:          input.Email,
		PasswordHash:   string(hashedPassword),
		Specialization: input.Specialization,
		Experience:     input.Experience,
		Bio:            input.Bio,
		Availability:   input.Availability,
		ProfilePicURL:  input.ProfilePicURL,
	}

	trainerID, err := s.trainerRepo.Create(ctx, trainer)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrTrainerAlreadyExists
		}
		return nil, err
	}
	trainer.ID = trainerID

	trainer.PasswordHash = ""
	return trainer, nil
}

// GetAllTrainers lists every trainer profile, hashes cleared.
func (s *trainerService) GetAllTrainers(ctx context.Context) ([]domain.Trainer, error) {
	trainers, err := s.trainerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trainers {
		trainers[i].PasswordHash = ""
	}
	return trainers, nil
}

// GetTrainerByID fetches one trainer profile.
func (s *trainerService) GetTrainerByID(ctx context.Context, trainerID primitive.ObjectID) (*domain.Trainer, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	trainer.PasswordHash = ""
	return trainer, nil
}

// UpdateTrainer modifies a trainer's profile fields. Email and password are
// not changed through this path.
func (s *trainerService) UpdateTrainer(ctx context.Context, trainerID primitive.ObjectID, input TrainerInput) (*domain.Trainer, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	if input.FullName != "" {
		trainer.FullName = input.FullName
	}
	if input.Specialization != nil {
		trainer.Specialization = input.Specialization
	}
	if input.Experience != 0 {
		trainer.Experience = input.Experience
	}
	if input.Bio != "" {
		trainer.Bio = input.Bio
	}
	if input.Availability.Days != nil || input.Availability.TimeSlots != nil {
		trainer.Availability = input.Availability
	}
	if input.ProfilePicURL != "" {
		trainer.ProfilePicURL = input.ProfilePicURL
	}

	if err := validateTrainerInput(TrainerInput{
		FullName:       trainer.FullName,
		Email:          trainer.Email,
		Password:       "unchanged",
		Specialization: trainer.Specialization,
		Experience:     trainer.Experience,
		Availability:   trainer.Availability,
	}); err != nil {
		return nil, err
	}

	if err := s.trainerRepo.Update(ctx, trainer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	trainer.PasswordHash = ""
	return trainer, nil
}

// DeleteTrainer removes a trainer profile.
func (s *trainerService) DeleteTrainer(ctx context.Context, trainerID primitive.ObjectID) error {
	err := s.trainerRepo.Delete(ctx, trainerID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTrainerNotFound
	}
	return err
}

// validateTrainerInput checks specialization values, experience range and
// availability windows (HH:MM format, start strictly before end).
func validateTrainerInput(input TrainerInput) error {
	for _, spec := range input.Specialization {
		if !domain.ValidSpecialization(spec) {
			return ErrTrainerValidation
		}
	}
	if input.Experience < 0 || input.Experience > maxTrainerExperienceYears {
		return ErrTrainerValidation
	}
	for _, window := range input.Availability.TimeSlots {
		if !hhmmPattern.MatchString(window.Start) || !hhmmPattern.MatchString(window.End) {
			return ErrTrainerValidation
		}
		if window.Start >= window.End {
			return ErrTrainerValidation
		}
	}
	return nil
}
