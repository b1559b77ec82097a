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

const reminderCollectionName = "reminders"

// mongoReminderRepository implements repository.ReminderRepository
type mongoReminderRepository struct {
	collection *mongo.Collection
}

// NewMongoReminderRepository creates a new reminder repository backed by MongoDB.
func NewMongoReminderRepository(db *mongo.Database) repository.ReminderRepository {
	return &mongoReminderRepository{
		collection: db.Collection(reminderCollectionName),
	}
}

// Create inserts a new reminder.
func (r *mongoReminderRepository) Create(ctx context.Context, reminder *domain.Reminder) (primitive.ObjectID, error) {
	if reminder.UserID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("reminder requires userId")
	}

	reminder.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	reminder.CreatedAt = now
	reminder.UpdatedAt = now
	if reminder.Frequency == 0 {
		reminder.Frequency = 1
	}

	result, err := r.collection.InsertOne(ctx, reminder)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted reminder ID")
	}
	return insertedID, nil
}

// GetByUserID retrieves a user's reminders.
func (r *mongoReminderRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Reminder, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// GetAll retrieves every reminder. The sweep walks this list once per tick.
func (r *mongoReminderRepository) GetAll(ctx context.Context) ([]domain.Reminder, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoReminderRepository) find(ctx context.Context, filter bson.M) ([]domain.Reminder, error) {
	var reminders []domain.Reminder
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return reminders, nil
}

// Snooze pushes the reminder's next firing past the given time.
func (r *mongoReminderRepository) Snooze(ctx context.Context, id primitive.ObjectID, until time.Time) error {
	update := bson.M{"$set": bson.M{
		"snoozeUntil": until,
		"updatedAt":   time.Now().UTC(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a reminder.
func (r *mongoReminderRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureReminderIndexes creates necessary indexes for the reminders collection.
func EnsureReminderIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
