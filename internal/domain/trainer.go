package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Specialization describes what a trainer coaches for.
type Specialization string

const (
	SpecWeightLoss  Specialization = "weight loss"
	SpecMuscleGain  Specialization = "muscle gain"
	SpecEndurance   Specialization = "endurance"
	SpecMaintenance Specialization = "maintenance"
)

// AvailabilityWindow is a recurring time window (HH:MM strings) a trainer works.
type AvailabilityWindow struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Availability lists the weekdays and time windows a trainer accepts bookings.
type Availability struct {
	Days      []string             `bson:"days,omitempty" json:"days,omitempty"`
	TimeSlots []AvailabilityWindow `bson:"timeSlots,omitempty" json:"timeSlots,omitempty"`
}

// BookingEntry is the trainer-side mirror of an appointment: a denormalized
// projection kept on the Trainer document for fast availability queries.
// The Appointment record stays authoritative; every status/schedule change
// must be propagated here. An entry is keyed by (UserID, ScheduledAt).
type BookingEntry struct {
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	ScheduledAt time.Time          `bson:"scheduledAt" json:"scheduledAt"`
	Status      AppointmentStatus  `bson:"status" json:"status"`
	ServiceType ServiceType        `bson:"serviceType,omitempty" json:"serviceType,omitempty"`
}

// Trainer represents a trainer profile, including the embedded booking ledger.
type Trainer struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Email          string             `bson:"email" json:"email"` // Should be unique
	PasswordHash   string             `bson:"passwordHash" json:"-"`
	Specialization []Specialization   `bson:"specialization" json:"specialization"`
	Experience     int                `bson:"experience" json:"experience"` // years, 0-60
	Bio            string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Availability   Availability       `bson:"availability,omitempty" json:"availability,omitempty"`
	ProfilePicURL  string             `bson:"profilePicUrl,omitempty" json:"profilePicUrl,omitempty"`
	Bookings       []BookingEntry     `bson:"bookings,omitempty" json:"bookings,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidSpecialization reports whether s is a known specialization.
func ValidSpecialization(s Specialization) bool {
	switch s {
	case SpecWeightLoss, SpecMuscleGain, SpecEndurance, SpecMaintenance:
		return true
	}
	return false
}
