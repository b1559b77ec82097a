package service

import (
	"context"
	"errors"
	"log"
	"regexp"
	"time"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrReminderNotFound   = errors.New("reminder not found")
	ErrReminderValidation = errors.New("reminder validation failed")
)

var reminderTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

type ReminderService interface {
	CreateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
	GetRemindersOfUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Reminder, error)
	SnoozeReminder(ctx context.Context, reminderID primitive.ObjectID, until time.Time) error
	DeleteReminder(ctx context.Context, reminderID primitive.ObjectID) error

	// StartScheduler begins the periodic due-reminder sweep. Stop with
	// the returned function.
	StartScheduler(cronSpec string) (stop func(), err error)
}

// reminderService implements the ReminderService interface.
type reminderService struct {
	reminderRepo repository.ReminderRepository
	now          func() time.Time
}

// NewReminderService creates a new instance of reminderService.
func NewReminderService(reminderRepo repository.ReminderRepository) ReminderService {
	return &reminderService{
		reminderRepo: reminderRepo,
		now:          time.Now,
	}
}

// CreateReminder validates and stores a reminder.
func (s *reminderService) CreateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	if reminder.UserID == primitive.NilObjectID || !domain.ValidReminderType(reminder.Type) {
		return nil, ErrReminderValidation
	}
	if !reminderTimePattern.MatchString(reminder.Time) {
		return nil, ErrReminderValidation
	}
	for _, day := range reminder.Days {
		if !domain.ValidWeekday(day) {
			return nil, ErrReminderValidation
		}
	}

	reminderID, err := s.reminderRepo.Create(ctx, reminder)
	if err != nil {
		return nil, err
	}
	reminder.ID = reminderID
	return reminder, nil
}

// GetRemindersOfUser lists a user's reminders.
func (s *reminderService) GetRemindersOfUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Reminder, error) {
	if userID == primitive.NilObjectID {
		return nil, ErrReminderValidation
	}
	return s.reminderRepo.GetByUserID(ctx, userID)
}

// SnoozeReminder suppresses a reminder until the given time.
func (s *reminderService) SnoozeReminder(ctx context.Context, reminderID primitive.ObjectID, until time.Time) error {
	if until.Before(s.now()) {
		return ErrReminderValidation
	}
	err := s.reminderRepo.Snooze(ctx, reminderID, until)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrReminderNotFound
	}
	return err
}

// DeleteReminder removes a reminder.
func (s *reminderService) DeleteReminder(ctx context.Context, reminderID primitive.ObjectID) error {
	err := s.reminderRepo.Delete(ctx, reminderID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrReminderNotFound
	}
	return err
}

// StartScheduler runs the sweep on the given cron spec (standard five-field
// syntax). Each tick loads all reminders and logs the ones due at that
// minute; snoozed reminders stay quiet until their snooze expires.
func (s *reminderService) StartScheduler(cronSpec string) (func(), error) {
	c := cron.New()
	_, err := c.AddFunc(cronSpec, s.sweep)
	if err != nil {
		return nil, err
	}
	c.Start()
	return func() {
		ctx := c.Stop()
		<-ctx.Done()
	}, nil
}

func (s *reminderService) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	reminders, err := s.reminderRepo.GetAll(ctx)
	if err != nil {
		log.Printf("Reminder sweep failed: %v", err)
		return
	}

	now := s.now()
	for i := range reminders {
		if reminders[i].DueAt(now) {
			log.Printf("Reminder due: user=%s type=%s message=%q",
				reminders[i].UserID.Hex(), reminders[i].Type, reminders[i].Message)
		}
	}
}
