package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Score bounds for a trainer rating.
const (
	MinRatingScore = 1
	MaxRatingScore = 5
)

// Rating is one user's score and feedback for a trainer.
type Rating struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	TrainerID primitive.ObjectID `bson:"trainerId" json:"trainerId"`
	Score     int                `bson:"score" json:"score"`
	Feedback  string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// RatingSummary aggregates a trainer's ratings for display.
type RatingSummary struct {
	AverageScore float64  `json:"averageScore"`
	TotalRatings int      `json:"totalRatings"`
	Ratings      []Rating `json:"ratings"`
}
