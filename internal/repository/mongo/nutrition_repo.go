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

const nutritionCollectionName = "nutrition_logs"

// mongoNutritionRepository implements repository.NutritionRepository
type mongoNutritionRepository struct {
	collection *mongo.Collection
}

// NewMongoNutritionRepository creates a new nutrition log repository backed by MongoDB.
func NewMongoNutritionRepository(db *mongo.Database) repository.NutritionRepository {
	return &mongoNutritionRepository{
		collection: db.Collection(nutritionCollectionName),
	}
}

// Create inserts a new nutrition log.
func (r *mongoNutritionRepository) Create(ctx context.Context, log *domain.NutritionLog) (primitive.ObjectID, error) {
	if log.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("nutrition log requires userId")
	}

	log.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	log.CreatedAt = now
	log.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, log)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted nutrition log ID")
	}
	return insertedID, nil
}

// GetByUserID retrieves a user's nutrition logs, newest first.
func (r *mongoNutritionRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.NutritionLog, error) {
	var logs []domain.NutritionLog
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

// EnsureNutritionIndexes creates necessary indexes for the nutrition_logs collection.
func EnsureNutritionIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
