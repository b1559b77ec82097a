package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderDueAt(t *testing.T) {
	// 2025-03-17 is a Monday.
	monday := time.Date(2025, 3, 17, 7, 30, 0, 0, time.UTC)

	r := Reminder{Type: ReminderWorkout, Time: "07:30", Days: []string{"Monday", "Wednesday"}}
	assert.True(t, r.DueAt(monday))
	assert.False(t, r.DueAt(monday.Add(time.Minute)), "wrong minute")
	assert.False(t, r.DueAt(monday.AddDate(0, 0, 1)), "Tuesday not listed")
}

func TestReminderDueAtNoDaysMeansEveryDay(t *testing.T) {
	r := Reminder{Type: ReminderMeal, Time: "12:00"}
	assert.True(t, r.DueAt(time.Date(2025, 3, 18, 12, 0, 0, 0, time.UTC)))
	assert.True(t, r.DueAt(time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)))
}

func TestReminderSnoozeSuppresses(t *testing.T) {
	monday := time.Date(2025, 3, 17, 7, 30, 0, 0, time.UTC)
	until := monday.Add(time.Hour)

	r := Reminder{Type: ReminderWorkout, Time: "07:30", SnoozeUntil: &until}
	assert.False(t, r.DueAt(monday))

	// A week later the snooze has expired.
	assert.True(t, r.DueAt(monday.AddDate(0, 0, 7)))
}

func TestValidWeekday(t *testing.T) {
	assert.True(t, ValidWeekday("Sunday"))
	assert.True(t, ValidWeekday("Wednesday"))
	assert.False(t, ValidWeekday("wednesday"))
	assert.False(t, ValidWeekday("Someday"))
}
