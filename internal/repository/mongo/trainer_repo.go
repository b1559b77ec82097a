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

const trainerCollectionName = "trainers"

// mongoTrainerRepository implements the repository.TrainerRepository interface using MongoDB.
type mongoTrainerRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainerRepository creates a new instance of mongoTrainerRepository.
func NewMongoTrainerRepository(db *mongo.Database) repository.TrainerRepository {
	return &mongoTrainerRepository{
		collection: db.Collection(trainerCollectionName),
	}
}

// Create inserts a new trainer profile.
func (r *mongoTrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) (primitive.ObjectID, error) {
	if trainer.Email == "" || trainer.PasswordHash == "" {
		return primitive.NilObjectID, errors.New("trainer email and password hash are required")
	}

	trainer.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	trainer.CreatedAt = now
	trainer.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, trainer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted trainer ID")
	}
	return insertedID, nil
}

// GetByEmail retrieves a trainer by email address.
func (r *mongoTrainerRepository) GetByEmail(ctx context.Context, email string) (*domain.Trainer, error) {
	var trainer domain.Trainer
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&trainer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

// GetByID retrieves a trainer by ObjectID.
func (r *mongoTrainerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Trainer, error) {
	var trainer domain.Trainer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&trainer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

// GetAll retrieves every trainer profile.
func (r *mongoTrainerRepository) GetAll(ctx context.Context) ([]domain.Trainer, error) {
	var trainers []domain.Trainer
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &trainers); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return trainers, nil
}

// GetRandom samples one trainer uniformly at random. Used by the default
// assignment policy at user registration.
func (r *mongoTrainerRepository) GetRandom(ctx context.Context) (*domain.Trainer, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trainers []domain.Trainer
	if err = cursor.All(ctx, &trainers); err != nil {
		return nil, err
	}
	if len(trainers) == 0 {
		return nil, repository.ErrNotFound
	}
	return &trainers[0], nil
}

// Update modifies the mutable profile fields of a trainer. The booking
// ledger is never written through this path.
func (r *mongoTrainerRepository) Update(ctx context.Context, trainer *domain.Trainer) error {
	if trainer.ID == primitive.NilObjectID {
		return errors.New("trainer ID is required for update")
	}

	filter := bson.M{"_id": trainer.ID}
	update := bson.M{"$set": bson.M{
		"fullName":       trainer.FullName,
		"specialization": trainer.Specialization,
		"experience":     trainer.Experience,
		"bio":            trainer.Bio,
		"availability":   trainer.Availability,
		"profilePicUrl":  trainer.ProfilePicURL,
		"updatedAt":      time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a trainer profile.
func (r *mongoTrainerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AppendBooking pushes a ledger entry onto the trainer's bookings array.
func (r *mongoTrainerRepository) AppendBooking(ctx context.Context, trainerID primitive.ObjectID, entry domain.BookingEntry) error {
	filter := bson.M{"_id": trainerID}
	update := bson.M{
		"$push": bson.M{"bookings": entry},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// UpdateBookingSlot retargets the ledger entry keyed by (userID, oldSlot) to
// a new slot and status. The $elemMatch filter plus positional $ update only
// the matching element; unrelated entries are untouched even under
// concurrent ledger writes.
func (r *mongoTrainerRepository) UpdateBookingSlot(ctx context.Context, trainerID, userID primitive.ObjectID, oldSlot, newSlot time.Time, status domain.AppointmentStatus) error {
	filter := bson.M{
		"_id": trainerID,
		"bookings": bson.M{"$elemMatch": bson.M{
			"userId":      userID,
			"scheduledAt": oldSlot,
		}},
	}
	update := bson.M{"$set": bson.M{
		"bookings.$.scheduledAt": newSlot,
		"bookings.$.status":      status,
		"updatedAt":              time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// SetBookingStatus updates the status of the ledger entry keyed by
// (userID, slot).
func (r *mongoTrainerRepository) SetBookingStatus(ctx context.Context, trainerID, userID primitive.ObjectID, slot time.Time, status domain.AppointmentStatus) error {
	filter := bson.M{
		"_id": trainerID,
		"bookings": bson.M{"$elemMatch": bson.M{
			"userId":      userID,
			"scheduledAt": slot,
		}},
	}
	update := bson.M{"$set": bson.M{
		"bookings.$.status": status,
		"updatedAt":         time.Now().UTC(),
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureTrainerIndexes creates necessary indexes for the trainers collection.
func EnsureTrainerIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "specialization", Value: 1}},
			Options: options.Index(),
		},
		{
			// Trainer-side availability lookups against the ledger mirror
			Keys:    bson.D{{Key: "bookings.scheduledAt", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		// log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
