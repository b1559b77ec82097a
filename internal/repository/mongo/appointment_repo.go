package mongo

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const appointmentCollectionName = "appointments"

// Partial unique index names. The duplicate-key error text carries the index
// name, which is how a constraint violation is mapped back to the right
// conflict error.
const (
	trainerSlotIndexName = "trainer_open_slot"
	userSlotIndexName    = "user_open_slot"
)

// mongoAppointmentRepository implements repository.AppointmentRepository
type mongoAppointmentRepository struct {
	collection *mongo.Collection
}

// NewMongoAppointmentRepository creates a new Appointment repository backed by MongoDB.
func NewMongoAppointmentRepository(db *mongo.Database) repository.AppointmentRepository {
	return &mongoAppointmentRepository{
		collection: db.Collection(appointmentCollectionName),
	}
}

// openStatusFilter matches appointments that still occupy their slot.
func openStatusFilter() bson.M {
	return bson.M{"$in": bson.A{string(domain.AppointmentPending), string(domain.AppointmentConfirmed)}}
}

// mapDuplicateKey translates a unique-index violation into the matching
// slot error. Non-duplicate errors pass through unchanged.
func mapDuplicateKey(err error) error {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return err
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, trainerSlotIndexName):
		return repository.ErrTrainerSlotTaken
	case strings.Contains(msg, userSlotIndexName):
		return repository.ErrUserSlotTaken
	}
	return repository.ErrDuplicate
}

// Create inserts a new appointment. The partial unique indexes reject a
// second open booking for the same trainer/slot or user/slot even when two
// concurrent creates both passed their pre-checks.
func (r *mongoAppointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) (primitive.ObjectID, error) {
	if appointment.UserID == primitive.NilObjectID || appointment.TrainerID == primitive.NilObjectID {
		return primitive.NilObjectID, errors.New("appointment requires userId and trainerId")
	}

	appointment.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	if appointment.Status == "" {
		appointment.Status = domain.AppointmentPending
	}

	result, err := r.collection.InsertOne(ctx, appointment)
	if err != nil {
		return primitive.NilObjectID, mapDuplicateKey(err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted appointment ID")
	}
	return insertedID, nil
}

// GetByID retrieves an appointment by its ID.
func (r *mongoAppointmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Appointment, error) {
	var appointment domain.Appointment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// GetByUserID retrieves all appointments of a user, soonest first.
func (r *mongoAppointmentRepository) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "scheduledAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	if err = cursor.Err(); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *mongoAppointmentRepository) findOpenBySlot(ctx context.Context, key string, owner primitive.ObjectID, slot time.Time, excludeID primitive.ObjectID) (*domain.Appointment, error) {
	filter := bson.M{
		key:           owner,
		"scheduledAt": slot,
		"status":      openStatusFilter(),
	}
	if excludeID != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	var appointment domain.Appointment
	err := r.collection.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// FindOpenByTrainerSlot returns the open appointment holding the trainer's slot.
func (r *mongoAppointmentRepository) FindOpenByTrainerSlot(ctx context.Context, trainerID primitive.ObjectID, slot time.Time, excludeID primitive.ObjectID) (*domain.Appointment, error) {
	return r.findOpenBySlot(ctx, "trainerId", trainerID, slot, excludeID)
}

// FindOpenByUserSlot returns the open appointment holding the user's slot.
func (r *mongoAppointmentRepository) FindOpenByUserSlot(ctx context.Context, userID primitive.ObjectID, slot time.Time, excludeID primitive.ObjectID) (*domain.Appointment, error) {
	return r.findOpenBySlot(ctx, "userId", userID, slot, excludeID)
}

// UpdateSchedule moves a non-terminal appointment to a new slot and resets
// its status to pending. The filter excludes terminal statuses, so a
// completed/cancelled appointment yields ErrNotFound rather than moving.
func (r *mongoAppointmentRepository) UpdateSchedule(ctx context.Context, id primitive.ObjectID, newSlot time.Time) (*domain.Appointment, error) {
	filter := bson.M{"_id": id, "status": openStatusFilter()}
	update := bson.M{"$set": bson.M{
		"scheduledAt": newSlot,
		"status":      domain.AppointmentPending,
		"updatedAt":   time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment domain.Appointment
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, mapDuplicateKey(err)
	}
	return &appointment, nil
}

// CancelIfOpen transitions the appointment to cancelled only if its status
// is still open. Compare-and-set: a concurrent cancel or completion makes
// the filter miss and the call reports ErrNotFound.
func (r *mongoAppointmentRepository) CancelIfOpen(ctx context.Context, id primitive.ObjectID) (*domain.Appointment, error) {
	filter := bson.M{"_id": id, "status": openStatusFilter()}
	update := bson.M{"$set": bson.M{
		"status":    domain.AppointmentCancelled,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment domain.Appointment
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// SetStatusIf records a status change without touching the schedule.
// Compare-and-set on the expected current status: a write that validated a
// transition against a stale read misses the filter instead of clobbering
// whatever a concurrent transition committed first.
func (r *mongoAppointmentRepository) SetStatusIf(ctx context.Context, id primitive.ObjectID, from, to domain.AppointmentStatus) (*domain.Appointment, error) {
	filter := bson.M{"_id": id, "status": from}
	update := bson.M{"$set": bson.M{
		"status":    to,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appointment domain.Appointment
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appointment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// Delete removes an appointment document outright. Only the create
// compensation path uses this.
func (r *mongoAppointmentRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// EnsureAppointmentIndexes creates the indexes for the appointments
// collection. The two partial unique indexes are the commit-time enforcement
// of the no-double-booking invariants: uniqueness applies only to documents
// whose status is still open, so completed/cancelled appointments free their
// slot. Requires MongoDB >= 6.0 for $in in partialFilterExpression.
func EnsureAppointmentIndexes(ctx context.Context, collection *mongo.Collection) {
	openPartial := bson.M{"status": openStatusFilter()}
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "trainerId", Value: 1}, {Key: "scheduledAt", Value: 1}},
			Options: options.Index().
				SetName(trainerSlotIndexName).
				SetUnique(true).
				SetPartialFilterExpression(openPartial),
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "scheduledAt", Value: 1}},
			Options: options.Index().
				SetName(userSlotIndexName).
				SetUnique(true).
				SetPartialFilterExpression(openPartial),
		},
		{
			// Listing a user's appointments sorted by time. The partial
			// unique index above cannot serve this query (it only covers
			// open statuses), and the trailing status key keeps the key
			// pattern distinct from it: servers reject two indexes over an
			// identical pattern, which would abort the whole CreateMany.
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "scheduledAt", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("user_schedule"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index(),
		},
	}

	// Unlike the other collections these indexes are not an optimization:
	// without them the double-booking invariants lose their commit-time
	// enforcement, so a failure here must be visible.
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Printf("ERROR: Failed to create slot indexes for collection %s: %v", collection.Name(), err)
	}
}
