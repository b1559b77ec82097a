package mongo

import (
	"context"
	"errors"
	"time"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ratingCollectionName = "ratings"

// mongoRatingRepository implements repository.RatingRepository
type mongoRatingRepository struct {
	collection *mongo.Collection
}

// NewMongoRatingRepository creates a new rating repository backed by MongoDB.
func NewMongoRatingRepository(db *mongo.Database) repository.RatingRepository {
	return &mongoRatingRepository{
		collection: db.Collection(ratingCollectionName),
	}
}

// Create stores a rating.
func (r *mongoRatingRepository) Create(ctx context.Context, rating *domain.Rating) (primitive.ObjectID, error) {
	if rating.UserID == primitive.NilObjectID || rating.TrainerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("rating requires userId and trainerId")
	}

	rating.ID = primitive.NewObjectID()
	rating.CreatedAt = time.Now().UTC()

	result, err := r.collection.InsertOne(ctx, rating)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted rating ID")
	}
	return insertedID, nil
}

// GetByTrainerID retrieves a trainer's ratings, newest first.
func (r *mongoRatingRepository) GetByTrainerID(ctx context.Context, trainerID primitive.ObjectID) ([]domain.Rating, error) {
	var ratings []domain.Rating
	filter := bson.M{"trainerId": trainerID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}

// EnsureRatingIndexes creates necessary indexes for the ratings collection.
func EnsureRatingIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
