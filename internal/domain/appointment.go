package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppointmentStatus type for the appointment lifecycle
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// ServiceType classifies what a booking is for.
type ServiceType string

const (
	ServicePersonalTraining ServiceType = "personal_training"
	ServiceGroupTraining    ServiceType = "group_training"
	ServiceNutritionPlan    ServiceType = "nutrition_plan"
)

// OpenStatuses are the statuses that count toward double-booking detection.
// Completed and cancelled appointments free their slot.
var OpenStatuses = []AppointmentStatus{AppointmentPending, AppointmentConfirmed}

// Appointment is the authoritative booking record between a user and a trainer.
type Appointment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	TrainerID   primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	ScheduledAt time.Time          `bson:"scheduledAt" json:"scheduledAt"`
	Status      AppointmentStatus  `bson:"status" json:"status"`
	ServiceType ServiceType        `bson:"serviceType,omitempty" json:"serviceType,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsOpen reports whether the appointment still occupies its slot.
func (a *Appointment) IsOpen() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}

// IsTerminal reports whether the appointment can no longer be mutated
// except through an explicit reschedule.
func (a *Appointment) IsTerminal() bool {
	return a.Status == AppointmentCompleted || a.Status == AppointmentCancelled
}

// ValidStatus reports whether s is one of the four appointment statuses.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

// transitions enumerates the allowed direct status changes. A reschedule
// resets a non-terminal appointment back to pending and is handled
// separately; completed and cancelled are final.
var transitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentPending, AppointmentCompleted, AppointmentCancelled},
	AppointmentCompleted: {},
	AppointmentCancelled: {},
}

// CanTransition reports whether a direct status change from one status to
// another is allowed by the appointment state machine.
func CanTransition(from, to AppointmentStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// SlotGranularity is the scheduling granularity for conflict detection.
// Two bookings conflict when their normalized times are equal.
const SlotGranularity = time.Minute

// NormalizeSlot maps a requested time onto the canonical slot key used for
// conflict checks, unique indexes and ledger entries: UTC, truncated to the
// minute. Every code path that stores or compares a scheduled time must go
// through this.
func NormalizeSlot(t time.Time) time.Time {
	return t.UTC().Truncate(SlotGranularity)
}
