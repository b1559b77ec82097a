package domain

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// FitnessGoal mirrors the trainer specialization values.
type FitnessGoal string

const (
	GoalWeightLoss  FitnessGoal = "weight loss"
	GoalMuscleGain  FitnessGoal = "muscle gain"
	GoalEndurance   FitnessGoal = "endurance"
	GoalMaintenance FitnessGoal = "maintenance"
)

// Address holds a user's postal address.
type Address struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Pincode string `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

// User represents a member of the platform (regular user or admin).
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role               `bson:"role" json:"role"`

	// Assigned trainer; picked by the assignment policy at registration.
	TrainerID *primitive.ObjectID `bson:"trainerId,omitempty" json:"trainerId,omitempty"`

	Age    int     `bson:"age,omitempty" json:"age,omitempty"`
	Gender string  `bson:"gender,omitempty" json:"gender,omitempty"`
	Weight float64 `bson:"weight" json:"weight"` // kg
	Height float64 `bson:"height" json:"height"` // cm

	FitnessGoal      FitnessGoal `bson:"fitnessGoal" json:"fitnessGoal"`
	DailyCalorieGoal int         `bson:"dailyCalorieGoal" json:"dailyCalorieGoal"`
	DailyWaterGoal   int         `bson:"dailyWaterGoal" json:"dailyWaterGoal"` // glasses

	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address       Address   `bson:"address,omitempty" json:"address,omitempty"`
	ProfilePicURL string    `bson:"profilePicUrl,omitempty" json:"profilePicUrl,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// BMI computes the body mass index from weight/height, rounded to two decimals.
// Returns 0 when either measurement is missing.
func (u *User) BMI() float64 {
	if u.Weight <= 0 || u.Height <= 0 {
		return 0
	}
	meters := u.Height / 100
	return math.Round(u.Weight/(meters*meters)*100) / 100
}
