package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
		allowed  bool
	}{
		{AppointmentPending, AppointmentConfirmed, true},
		{AppointmentPending, AppointmentCancelled, true},
		{AppointmentPending, AppointmentCompleted, false},
		{AppointmentPending, AppointmentPending, false},
		{AppointmentConfirmed, AppointmentPending, true},
		{AppointmentConfirmed, AppointmentCompleted, true},
		{AppointmentConfirmed, AppointmentCancelled, true},
		{AppointmentCompleted, AppointmentCancelled, false},
		{AppointmentCompleted, AppointmentPending, false},
		{AppointmentCancelled, AppointmentConfirmed, false},
		{AppointmentCancelled, AppointmentPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanTransition(tc.from, tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestAppointmentOpenAndTerminal(t *testing.T) {
	open := []AppointmentStatus{AppointmentPending, AppointmentConfirmed}
	for _, status := range open {
		a := Appointment{Status: status}
		assert.True(t, a.IsOpen(), "status %s", status)
		assert.False(t, a.IsTerminal(), "status %s", status)
	}

	terminal := []AppointmentStatus{AppointmentCompleted, AppointmentCancelled}
	for _, status := range terminal {
		a := Appointment{Status: status}
		assert.False(t, a.IsOpen(), "status %s", status)
		assert.True(t, a.IsTerminal(), "status %s", status)
	}
}

func TestNormalizeSlot(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2025, 3, 14, 15, 30, 45, 123456789, loc)

	got := NormalizeSlot(in)

	assert.Equal(t, time.UTC, got.Location())
	assert.Zero(t, got.Second())
	assert.Zero(t, got.Nanosecond())
	assert.Equal(t, time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC), got)

	// Two requests inside the same minute collapse to the same slot key.
	a := NormalizeSlot(time.Date(2025, 3, 14, 10, 0, 1, 0, time.UTC))
	b := NormalizeSlot(time.Date(2025, 3, 14, 10, 0, 59, 0, time.UTC))
	assert.True(t, a.Equal(b))
}
