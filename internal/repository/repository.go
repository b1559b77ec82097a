package repository

import (
	"context"
	"time"

	"fitlife/fitness-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate record")
	ErrUpdateFailed = RepositoryError("update failed")

	// Slot errors surface unique-index violations on the open-booking
	// constraints. They are the commit-time guarantee behind the
	// application-level conflict checks.
	ErrTrainerSlotTaken = RepositoryError("trainer slot already taken")
	ErrUserSlotTaken    = RepositoryError("user slot already taken")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// TrainerRepository defines the interface for interacting with trainer data,
// including the embedded booking ledger.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.Trainer, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error)
	GetAll(ctx context.Context) ([]domain.Trainer, error)
	GetRandom(ctx context.Context) (*domain.Trainer, error)
	Update(ctx context.Context, trainer *domain.Trainer) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Ledger mirror mutations. All of them target the matching array
	// element by (userID, scheduledAt); none rewrite the whole array.
	AppendBooking(ctx context.Context, trainerID primitive.ObjectID, entry domain.BookingEntry) error
	UpdateBookingSlot(ctx context.Context, trainerID, userID primitive.ObjectID, oldSlot, newSlot time.Time, status domain.AppointmentStatus) error
	SetBookingStatus(ctx context.Context, trainerID, userID primitive.ObjectID, slot time.Time, status domain.AppointmentStatus) error
}

// AppointmentRepository defines the interface for interacting with the
// authoritative appointment records.
type AppointmentRepository interface {
	// Create inserts the appointment. The implementation must reject a
	// second open booking for the same (trainer, slot) or (user, slot)
	// at commit time with ErrTrainerSlotTaken / ErrUserSlotTaken even if
	// the caller's pre-checks interleaved with a concurrent insert.
	Create(ctx context.Context, appointment *domain.Appointment) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Appointment, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Appointment, error)

	// FindOpenByTrainerSlot / FindOpenByUserSlot return the open-status
	// appointment occupying the slot, excluding excludeID when non-nil
	// (a reschedule must not conflict with itself). ErrNotFound when free.
	FindOpenByTrainerSlot(ctx context.Context, trainerID primitive.ObjectID, slot time.Time, excludeID primitive.ObjectID) (*domain.Appointment, error)
	FindOpenByUserSlot(ctx context.Context, userID primitive.ObjectID, slot time.Time, excludeID primitive.ObjectID) (*domain.Appointment, error)

	// UpdateSchedule moves a non-terminal appointment to a new slot and
	// resets it to pending. Terminal appointments do not match the update
	// filter and yield ErrNotFound. Slot constraint violations surface as
	// ErrTrainerSlotTaken / ErrUserSlotTaken.
	UpdateSchedule(ctx context.Context, id primitive.ObjectID, newSlot time.Time) (*domain.Appointment, error)

	// CancelIfOpen atomically sets status=cancelled if the current status
	// is still open (compare-and-set). ErrNotFound when the appointment is
	// missing or already terminal.
	CancelIfOpen(ctx context.Context, id primitive.ObjectID) (*domain.Appointment, error)

	// SetStatusIf records a trainer-side transition without touching the
	// slot, only if the current status still equals from (compare-and-set).
	// ErrNotFound when the appointment is missing or the status moved on.
	SetStatusIf(ctx context.Context, id primitive.ObjectID, from, to domain.AppointmentStatus) (*domain.Appointment, error)

	// Delete removes an appointment document. Used only to compensate a
	// failed ledger append during create; cancellation never deletes.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// NutritionRepository defines the interface for nutrition log data.
type NutritionRepository interface {
	Create(ctx context.Context, log *domain.NutritionLog) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.NutritionLog, error)
}

// WorkoutRepository defines the interface for workout log data.
type WorkoutRepository interface {
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*domain.WorkoutLog, error)
	// AppendDay adds a daily workout to the user's log, creating the log
	// document on first use.
	AppendDay(ctx context.Context, userID, trainerID primitive.ObjectID, day domain.DailyWorkout) error
}

// PaymentRepository defines the interface for payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Payment, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Payment, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status domain.PaymentStatus, transactionID string) (*domain.Payment, error)
}

// MessageRepository defines the interface for stored messages.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (primitive.ObjectID, error)
	GetConversation(ctx context.Context, a, b primitive.ObjectID) ([]domain.Message, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) error
}

// RatingRepository defines the interface for trainer ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) (primitive.ObjectID, error)
	GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Rating, error)
}

// ReminderRepository defines the interface for reminder records.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.Reminder) (primitive.ObjectID, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Reminder, error)
	GetAll(ctx context.Context) ([]domain.Reminder, error)
	Snooze(ctx context.Context, id primitive.ObjectID, until time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
