package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutType classifies a workout entry.
type WorkoutType string

const (
	WorkoutStrength    WorkoutType = "strength"
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutFlexibility WorkoutType = "flexibility"
	WorkoutHIIT        WorkoutType = "HIIT"
)

// MaxCaloriesBurned caps the defaulted calorie estimate for one entry.
const MaxCaloriesBurned = 5000

// WorkoutEntry is one exercise performed within a daily workout.
type WorkoutEntry struct {
	WorkoutName    string      `bson:"workoutName" json:"workoutName"`
	WorkoutType    WorkoutType `bson:"workoutType" json:"workoutType"`
	Duration       int         `bson:"duration" json:"duration"` // minutes
	CaloriesBurned int         `bson:"caloriesBurned" json:"caloriesBurned"`
	Sets           int         `bson:"sets" json:"sets"`
	Reps           int         `bson:"reps" json:"reps"`
	Weights        float64     `bson:"weights" json:"weights"` // kg
	Completed      bool        `bson:"completed" json:"completed"`
	TrainerComment string      `bson:"trainerComment,omitempty" json:"trainerComment,omitempty"`
}

// DailyWorkout groups the entries performed on one calendar day.
type DailyWorkout struct {
	Date     time.Time      `bson:"date" json:"date"` // start of day, UTC
	Workouts []WorkoutEntry `bson:"workouts" json:"workouts"`
}

// WorkoutLog is a user's workout history, one document per user.
type WorkoutLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	TrainerID primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Entries   []DailyWorkout     `bson:"workoutEntries" json:"workoutEntries"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// intensityFactor estimates calories burned per minute by workout type.
var intensityFactor = map[WorkoutType]int{
	WorkoutStrength:    8,
	WorkoutCardio:      10,
	WorkoutFlexibility: 5,
	WorkoutHIIT:        12,
}

// FillCalories defaults CaloriesBurned from duration and workout type when
// the caller did not supply an estimate.
func (w *WorkoutEntry) FillCalories() {
	if w.CaloriesBurned != 0 || w.Duration <= 0 {
		return
	}
	factor, ok := intensityFactor[w.WorkoutType]
	if !ok {
		factor = 5
	}
	calories := w.Duration * factor
	if calories > MaxCaloriesBurned {
		calories = MaxCaloriesBurned
	}
	w.CaloriesBurned = calories
}

// ValidWorkoutType reports whether t is a known workout type.
func ValidWorkoutType(t WorkoutType) bool {
	_, ok := intensityFactor[t]
	return ok
}

// StartOfDay normalizes a workout date to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
