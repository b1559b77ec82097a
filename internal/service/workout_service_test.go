package service

import (
	"context"
	"testing"
	"time"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeWorkoutRepo struct {
	logs map[primitive.ObjectID]*domain.WorkoutLog
}

func newFakeWorkoutRepo() *fakeWorkoutRepo {
	return &fakeWorkoutRepo{logs: make(map[primitive.ObjectID]*domain.WorkoutLog)}
}

func (r *fakeWorkoutRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) (*domain.WorkoutLog, error) {
	log, ok := r.logs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *log
	return &copy, nil
}

func (r *fakeWorkoutRepo) AppendDay(_ context.Context, userID, trainerID primitive.ObjectID, day domain.DailyWorkout) error {
	log, ok := r.logs[userID]
	if !ok {
		log = &domain.WorkoutLog{ID: primitive.NewObjectID(), UserID: userID, TrainerID: trainerID}
		r.logs[userID] = log
	}
	log.Entries = append(log.Entries, day)
	return nil
}

var _ repository.WorkoutRepository = (*fakeWorkoutRepo)(nil)

func newWorkoutFixture(t *testing.T) (WorkoutService, *domain.User) {
	t.Helper()
	users := newFakeUserRepo()
	user := &domain.User{FullName: "Asha Rao", Email: "asha@example.com", Role: domain.RoleUser}
	_, err := users.Create(context.Background(), user)
	require.NoError(t, err)
	return NewWorkoutService(newFakeWorkoutRepo(), users), user
}

func TestLogWorkouts(t *testing.T) {
	svc, user := newWorkoutFixture(t)
	ctx := context.Background()

	date := time.Date(2025, 6, 10, 18, 45, 0, 0, time.UTC)
	err := svc.LogWorkouts(ctx, user.ID, primitive.NilObjectID, date, []domain.WorkoutEntry{
		{WorkoutName: "bench press", WorkoutType: domain.WorkoutStrength, Duration: 45},
	})
	require.NoError(t, err)

	log, err := svc.GetLogOfUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, log.Entries, 1)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), log.Entries[0].Date, "date collapses to start of day")
	require.Len(t, log.Entries[0].Workouts, 1)
	assert.Equal(t, 360, log.Entries[0].Workouts[0].CaloriesBurned, "calories defaulted from type and duration")
}

func TestLogWorkoutsValidation(t *testing.T) {
	svc, user := newWorkoutFixture(t)
	ctx := context.Background()
	date := time.Now().UTC()

	err := svc.LogWorkouts(ctx, user.ID, primitive.NilObjectID, date, nil)
	assert.ErrorIs(t, err, ErrWorkoutValidation)

	err = svc.LogWorkouts(ctx, user.ID, primitive.NilObjectID, date, []domain.WorkoutEntry{
		{WorkoutName: "spin", WorkoutType: "zumba", Duration: 30},
	})
	assert.ErrorIs(t, err, ErrWorkoutValidation)

	err = svc.LogWorkouts(ctx, user.ID, primitive.NilObjectID, date, []domain.WorkoutEntry{
		{WorkoutName: "ultra", WorkoutType: domain.WorkoutCardio, Duration: 400},
	})
	assert.ErrorIs(t, err, ErrWorkoutValidation)
}

func TestGetLogOfUserEmpty(t *testing.T) {
	svc, user := newWorkoutFixture(t)

	_, err := svc.GetLogOfUser(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrWorkoutLogEmpty)
}
