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

type fakeReminderRepo struct {
	reminders map[primitive.ObjectID]*domain.Reminder
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{reminders: make(map[primitive.ObjectID]*domain.Reminder)}
}

func (r *fakeReminderRepo) Create(_ context.Context, reminder *domain.Reminder) (primitive.ObjectID, error) {
	reminder.ID = primitive.NewObjectID()
	stored := *reminder
	r.reminders[reminder.ID] = &stored
	return reminder.ID, nil
}

func (r *fakeReminderRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.Reminder, error) {
	var out []domain.Reminder
	for _, rem := range r.reminders {
		if rem.UserID == userID {
			out = append(out, *rem)
		}
	}
	return out, nil
}

func (r *fakeReminderRepo) GetAll(_ context.Context) ([]domain.Reminder, error) {
	out := make([]domain.Reminder, 0, len(r.reminders))
	for _, rem := range r.reminders {
		out = append(out, *rem)
	}
	return out, nil
}

func (r *fakeReminderRepo) Snooze(_ context.Context, id primitive.ObjectID, until time.Time) error {
	rem, ok := r.reminders[id]
	if !ok {
		return repository.ErrNotFound
	}
	rem.SnoozeUntil = &until
	return nil
}

func (r *fakeReminderRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.reminders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.reminders, id)
	return nil
}

var _ repository.ReminderRepository = (*fakeReminderRepo)(nil)

func TestCreateReminder(t *testing.T) {
	svc := NewReminderService(newFakeReminderRepo())

	reminder, err := svc.CreateReminder(context.Background(), &domain.Reminder{
		UserID:  primitive.NewObjectID(),
		Type:    domain.ReminderWorkout,
		Message: "leg day",
		Time:    "07:30",
		Days:    []string{"Monday", "Thursday"},
	})
	require.NoError(t, err)
	assert.NotEqual(t, primitive.NilObjectID, reminder.ID)
}

func TestCreateReminderValidation(t *testing.T) {
	svc := NewReminderService(newFakeReminderRepo())
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := svc.CreateReminder(ctx, &domain.Reminder{UserID: userID, Type: "sleep", Time: "07:30"})
	assert.ErrorIs(t, err, ErrReminderValidation)

	_, err = svc.CreateReminder(ctx, &domain.Reminder{UserID: userID, Type: domain.ReminderMeal, Time: "25:99"})
	assert.ErrorIs(t, err, ErrReminderValidation)

	_, err = svc.CreateReminder(ctx, &domain.Reminder{UserID: userID, Type: domain.ReminderMeal, Time: "12:00", Days: []string{"Funday"}})
	assert.ErrorIs(t, err, ErrReminderValidation)
}

func TestSnoozeReminder(t *testing.T) {
	repo := newFakeReminderRepo()
	svc := NewReminderService(repo).(*reminderService)
	now := time.Date(2025, 3, 17, 7, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	reminder, err := svc.CreateReminder(ctx, &domain.Reminder{
		UserID: primitive.NewObjectID(),
		Type:   domain.ReminderWorkout,
		Time:   "07:30",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SnoozeReminder(ctx, reminder.ID, now.Add(2*time.Hour)))

	stored := repo.reminders[reminder.ID]
	require.NotNil(t, stored.SnoozeUntil)
	assert.False(t, stored.DueAt(now.Add(30*time.Minute)), "snoozed reminder stays quiet")

	// Snoozing into the past makes no sense.
	err = svc.SnoozeReminder(ctx, reminder.ID, now.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrReminderValidation)
}

func TestDeleteReminder(t *testing.T) {
	svc := NewReminderService(newFakeReminderRepo())
	ctx := context.Background()

	reminder, err := svc.CreateReminder(ctx, &domain.Reminder{
		UserID: primitive.NewObjectID(),
		Type:   domain.ReminderMeal,
		Time:   "12:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReminder(ctx, reminder.ID))
	assert.ErrorIs(t, svc.DeleteReminder(ctx, reminder.ID), ErrReminderNotFound)
}

func TestSchedulerStartStop(t *testing.T) {
	svc := NewReminderService(newFakeReminderRepo())

	_, err := svc.StartScheduler("not a cron spec")
	assert.Error(t, err)

	stop, err := svc.StartScheduler("* * * * *")
	require.NoError(t, err)
	stop()
}
