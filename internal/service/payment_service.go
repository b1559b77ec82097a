package service

import (
	"context"
	"errors"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPaymentNotFound   = errors.New("payment not found")
	ErrPaymentValidation = errors.New("payment validation failed")
)

type PaymentService interface {
	RecordPayment(ctx context.Context, userID primitive.ObjectID, trainerID *primitive.ObjectID, amount float64, method domain.PaymentMethod) (*domain.Payment, error)
	GetPaymentsOfUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Payment, error)
	UpdateStatus(ctx context.Context, paymentID primitive.ObjectID, status domain.PaymentStatus) (*domain.Payment, error)
}

// paymentService implements the PaymentService interface. No gateway is
// involved; this keeps status records only.
type paymentService struct {
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
}

// NewPaymentService creates a new instance of paymentService.
func NewPaymentService(paymentRepo repository.PaymentRepository, userRepo repository.UserRepository) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
	}
}

// RecordPayment stores a pending payment record.
func (s *paymentService) RecordPayment(ctx context.Context, userID primitive.ObjectID, trainerID *primitive.ObjectID, amount float64, method domain.PaymentMethod) (*domain.Payment, error) {
	if amount <= 0 || !domain.ValidPaymentMethod(method) {
		return nil, ErrPaymentValidation
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	payment := &domain.Payment{
		UserID:    userID,
		TrainerID: trainerID,
		Amount:    amount,
		Method:    method,
		Status:    domain.PaymentPending,
	}

	paymentID, err := s.paymentRepo.Create(ctx, payment)
	if err != nil {
		return nil, err
	}
	payment.ID = paymentID
	return payment, nil
}

// GetPaymentsOfUser lists a user's payment records, newest first.
func (s *paymentService) GetPaymentsOfUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Payment, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	return s.paymentRepo.GetByUserID(ctx, userID)
}

// UpdateStatus moves a payment to a new status. Completing a payment mints
// a transaction reference, since completed payments must carry one.
func (s *paymentService) UpdateStatus(ctx context.Context, paymentID primitive.ObjectID, status domain.PaymentStatus) (*domain.Payment, error) {
	if !domain.ValidPaymentStatus(status) {
		return nil, ErrPaymentValidation
	}

	transactionID := ""
	if status == domain.PaymentCompleted {
		transactionID = uuid.NewString()
	}

	payment, err := s.paymentRepo.SetStatus(ctx, paymentID, status, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}
