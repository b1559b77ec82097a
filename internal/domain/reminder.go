package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReminderType says what a reminder nags about.
type ReminderType string

const (
	ReminderWorkout ReminderType = "workout"
	ReminderMeal    ReminderType = "meal"
)

// Reminder is a recurring per-user nudge. Time is an HH:MM wall-clock string,
// Days the weekdays it fires on. Delivery is out of scope; the sweep only
// resolves which reminders are due.
type Reminder struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Type        ReminderType       `bson:"type" json:"type"`
	Message     string             `bson:"message" json:"message"`
	Time        string             `bson:"time" json:"time"` // "HH:MM"
	Days        []string           `bson:"days,omitempty" json:"days,omitempty"`
	SnoozeUntil *time.Time         `bson:"snoozeUntil,omitempty" json:"snoozeUntil,omitempty"`
	Frequency   int                `bson:"frequency" json:"frequency"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidReminderType checks whether the given reminder type is supported.
func ValidReminderType(t ReminderType) bool {
	return t == ReminderWorkout || t == ReminderMeal
}

// ValidWeekday checks whether day is a full English weekday name.
func ValidWeekday(day string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == day {
			return true
		}
	}
	return false
}

// DueAt reports whether the reminder should fire at the given instant:
// matching weekday, matching HH:MM, and not snoozed past it.
func (r *Reminder) DueAt(t time.Time) bool {
	if r.SnoozeUntil != nil && t.Before(*r.SnoozeUntil) {
		return false
	}
	if r.Time != t.Format("15:04") {
		return false
	}
	if len(r.Days) == 0 {
		return true
	}
	weekday := t.Weekday().String()
	for _, day := range r.Days {
		if day == weekday {
			return true
		}
	}
	return false
}
