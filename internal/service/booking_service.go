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
	ErrUserNotFound        = errors.New("user not found")
	ErrTrainerNotFound     = errors.New("trainer not found")
	ErrAppointmentNotFound = errors.New("appointment not found or cannot be changed")
	ErrInvalidSchedule     = errors.New("appointment time must be in the future")
	ErrTrainerConflict     = errors.New("trainer is already booked at this time")
	ErrUserConflict        = errors.New("you already have an appointment at this time")
	ErrTerminalState       = errors.New("cannot modify a completed or cancelled appointment")
	ErrInvalidStatus       = errors.New("invalid status transition")
)

// BookingService is the appointment booking engine. It admits or rejects
// appointment state transitions against two invariants: a trainer holds at
// most one open appointment per slot, and so does a user. It also keeps the
// trainer's embedded booking ledger in step with the authoritative record.
type BookingService interface {
	CreateAppointment(ctx context.Context, userID, trainerID primitive.ObjectID, scheduledAt time.Time, serviceType domain.ServiceType, notes string) (*domain.Appointment, error)
	RescheduleAppointment(ctx context.Context, appointmentID primitive.ObjectID, newScheduledAt time.Time) (*domain.Appointment, error)
	CancelAppointment(ctx context.Context, appointmentID primitive.ObjectID) (*domain.Appointment, error)
	RespondToAppointment(ctx context.Context, appointmentID primitive.ObjectID, newStatus domain.AppointmentStatus) (*domain.Appointment, error)
	GetAppointmentsOfUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Appointment, error)
}

// --- Service Implementation ---

// bookingService implements the BookingService interface.
type bookingService struct {
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	trainerRepo     repository.TrainerRepository
	now             func() time.Time
}

// NewBookingService creates a new instance of bookingService.
func NewBookingService(
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	trainerRepo repository.TrainerRepository,
) BookingService {
	return &bookingService{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		trainerRepo:     trainerRepo,
		now:             time.Now,
	}
}

// CreateAppointment books a user with a trainer at the given time.
//
// The conflict pre-checks here are an early exit for the common case; the
// race between two concurrent creates that both pass them is closed by the
// repository's unique slot constraints, whose violations come back as the
// same conflict errors.
func (s *bookingService) CreateAppointment(ctx context.Context, userID, trainerID primitive.ObjectID, scheduledAt time.Time, serviceType domain.ServiceType, notes string) (*domain.Appointment, error) {
	if userID == primitive.NilObjectID || trainerID == primitive.NilObjectID {
		return nil, errors.New("user ID and trainer ID are required")
	}

	slot := domain.NormalizeSlot(scheduledAt)
	if !slot.After(s.now()) {
		return nil, ErrInvalidSchedule
	}

	// Both parties must exist before anything is written.
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

	if err := s.checkConflicts(ctx, trainerID, userID, slot, primitive.NilObjectID); err != nil {
		return nil, err
	}

	appointment := &domain.Appointment{
		UserID:      userID,
		TrainerID:   trainerID,
		ScheduledAt: slot,
		Status:      domain.AppointmentPending,
		ServiceType: serviceType,
		Notes:       notes,
	}

	appointmentID, err := s.appointmentRepo.Create(ctx, appointment)
	if err != nil {
		return nil, mapSlotError(err)
	}
	appointment.ID = appointmentID

	// Mirror into the trainer's ledger. The pair must land together: if the
	// mirror write fails, take the appointment back out.
	entry := domain.BookingEntry{
		UserID:      userID,
		ScheduledAt: slot,
		Status:      domain.AppointmentPending,
		ServiceType: serviceType,
	}
	if err := s.trainerRepo.AppendBooking(ctx, trainerID, entry); err != nil {
		if delErr := s.appointmentRepo.Delete(ctx, appointmentID); delErr != nil {
			// The orphaned appointment still holds the slot; the caller
			// needs to see both failures.
			return nil, errors.Join(err, delErr)
		}
		return nil, err
	}

	return appointment, nil
}

// RescheduleAppointment moves a non-terminal appointment to a new time,
// resetting it to pending. The appointment's own slot is excluded from
// conflict detection so it can move to a time only it occupied.
func (s *bookingService) RescheduleAppointment(ctx context.Context, appointmentID primitive.ObjectID, newScheduledAt time.Time) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if appointment.IsTerminal() {
		return nil, ErrTerminalState
	}

	newSlot := domain.NormalizeSlot(newScheduledAt)
	if !newSlot.After(s.now()) {
		return nil, ErrInvalidSchedule
	}

	if err := s.checkConflicts(ctx, appointment.TrainerID, appointment.UserID, newSlot, appointment.ID); err != nil {
		return nil, err
	}

	oldSlot := appointment.ScheduledAt
	updated, err := s.appointmentRepo.UpdateSchedule(ctx, appointmentID, newSlot)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Lost a race with a completion or cancellation.
			return nil, ErrTerminalState
		}
		return nil, mapSlotError(err)
	}

	// Retarget the mirrored ledger entry; re-append if the mirror drifted.
	err = s.trainerRepo.UpdateBookingSlot(ctx, updated.TrainerID, updated.UserID, oldSlot, newSlot, domain.AppointmentPending)
	if errors.Is(err, repository.ErrNotFound) {
		err = s.trainerRepo.AppendBooking(ctx, updated.TrainerID, domain.BookingEntry{
			UserID:      updated.UserID,
			ScheduledAt: newSlot,
			Status:      domain.AppointmentPending,
			ServiceType: updated.ServiceType,
		})
	}
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CancelAppointment transitions an open appointment to cancelled.
//
// The update is compare-and-set on the open statuses, so a missing
// appointment and an already-terminal one are indistinguishable here; both
// report ErrAppointmentNotFound and neither is double-applied.
func (s *bookingService) CancelAppointment(ctx context.Context, appointmentID primitive.ObjectID) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.CancelIfOpen(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	if err := s.mirrorStatus(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// RespondToAppointment applies a trainer-side status change. No conflict
// re-check happens here: once admitted, an appointment keeps its slot through
// confirm/complete, and cancellation frees it via the open-status indexes.
func (s *bookingService) RespondToAppointment(ctx context.Context, appointmentID primitive.ObjectID, newStatus domain.AppointmentStatus) (*domain.Appointment, error) {
	if !domain.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if !domain.CanTransition(appointment.Status, newStatus) {
		return nil, ErrInvalidStatus
	}

	// Compare-and-set against the status the transition was validated on.
	// A concurrent respond that committed first makes this miss rather than
	// letting a stale validation overwrite its result.
	updated, err := s.appointmentRepo.SetStatusIf(ctx, appointmentID, appointment.Status, newStatus)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			if _, getErr := s.appointmentRepo.GetByID(ctx, appointmentID); errors.Is(getErr, repository.ErrNotFound) {
				return nil, ErrAppointmentNotFound
			}
			return nil, ErrInvalidStatus
		}
		return nil, err
	}

	if err := s.mirrorStatus(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// GetAppointmentsOfUser lists a user's appointments, soonest first.
func (s *bookingService) GetAppointmentsOfUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Appointment, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID is required")
	}
	return s.appointmentRepo.GetByUserID(ctx, userID)
}

// checkConflicts verifies that neither the trainer nor the user holds an
// open appointment at the slot. excludeID removes the appointment being
// rescheduled from the conflict set.
func (s *bookingService) checkConflicts(ctx context.Context, trainerID, userID primitive.ObjectID, slot time.Time, excludeID primitive.ObjectID) error {
	_, err := s.appointmentRepo.FindOpenByTrainerSlot(ctx, trainerID, slot, excludeID)
	if err == nil {
		return ErrTrainerConflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	_, err = s.appointmentRepo.FindOpenByUserSlot(ctx, userID, slot, excludeID)
	if err == nil {
		return ErrUserConflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

// mirrorStatus propagates the appointment's current status to the matching
// ledger entry, re-appending the entry if the mirror drifted. Keyed on
// (userId, scheduledAt) so unrelated entries are never touched.
func (s *bookingService) mirrorStatus(ctx context.Context, appointment *domain.Appointment) error {
	err := s.trainerRepo.SetBookingStatus(ctx, appointment.TrainerID, appointment.UserID, appointment.ScheduledAt, appointment.Status)
	if errors.Is(err, repository.ErrNotFound) {
		err = s.trainerRepo.AppendBooking(ctx, appointment.TrainerID, domain.BookingEntry{
			UserID:      appointment.UserID,
			ScheduledAt: appointment.ScheduledAt,
			Status:      appointment.Status,
			ServiceType: appointment.ServiceType,
		})
	}
	return err
}

// mapSlotError converts commit-time slot constraint violations into the
// conflict errors the pre-checks would have produced.
func mapSlotError(err error) error {
	switch {
	case errors.Is(err, repository.ErrTrainerSlotTaken):
		return ErrTrainerConflict
	case errors.Is(err, repository.ErrUserSlotTaken):
		return ErrUserConflict
	}
	return err
}
