package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFillCaloriesByIntensity(t *testing.T) {
	cases := []struct {
		workoutType WorkoutType
		duration    int
		expected    int
	}{
		{WorkoutStrength, 30, 240},
		{WorkoutCardio, 30, 300},
		{WorkoutFlexibility, 30, 150},
		{WorkoutHIIT, 30, 360},
	}
	for _, tc := range cases {
		entry := WorkoutEntry{WorkoutType: tc.workoutType, Duration: tc.duration}
		entry.FillCalories()
		assert.Equal(t, tc.expected, entry.CaloriesBurned, "type %s", tc.workoutType)
	}
}

func TestFillCaloriesCapped(t *testing.T) {
	entry := WorkoutEntry{WorkoutType: WorkoutHIIT, Duration: 600}
	entry.FillCalories()
	assert.Equal(t, MaxCaloriesBurned, entry.CaloriesBurned)
}

func TestFillCaloriesKeepsExplicitValue(t *testing.T) {
	entry := WorkoutEntry{WorkoutType: WorkoutCardio, Duration: 30, CaloriesBurned: 111}
	entry.FillCalories()
	assert.Equal(t, 111, entry.CaloriesBurned)
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	in := time.Date(2025, 6, 10, 0, 30, 0, 0, loc) // 2025-06-09T23:30Z

	got := StartOfDay(in)

	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), got)
}
