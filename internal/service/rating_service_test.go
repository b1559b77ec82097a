package service

import (
	"context"
	"testing"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeRatingRepo struct {
	ratings []domain.Rating
}

func (r *fakeRatingRepo) Create(_ context.Context, rating *domain.Rating) (primitive.ObjectID, error) {
	rating.ID = primitive.NewObjectID()
	r.ratings = append(r.ratings, *rating)
	return rating.ID, nil
}

func (r *fakeRatingRepo) GetByTrainerID(_ context.Context, trainerID primitive.ObjectID) ([]domain.Rating, error) {
	var out []domain.Rating
	for _, rt := range r.ratings {
		if rt.TrainerID == trainerID {
			out = append(out, rt)
		}
	}
	return out, nil
}

var _ repository.RatingRepository = (*fakeRatingRepo)(nil)

func newRatingFixture(t *testing.T) (RatingService, *domain.User, *domain.Trainer) {
	t.Helper()

	users := newFakeUserRepo()
	user := &domain.User{FullName: "Asha Rao", Email: "asha@example.com", Role: domain.RoleUser}
	_, err := users.Create(context.Background(), user)
	require.NoError(t, err)

	trainers := newFakeTrainerRepo()
	trainer := &domain.Trainer{FullName: "Marco Silva", Email: "marco@example.com"}
	_, err = trainers.Create(context.Background(), trainer)
	require.NoError(t, err)

	return NewRatingService(&fakeRatingRepo{}, users, trainers), user, trainer
}

func TestSubmitRating(t *testing.T) {
	svc, user, trainer := newRatingFixture(t)

	rating, err := svc.SubmitRating(context.Background(), user.ID, trainer.ID, 4, "great sessions")
	require.NoError(t, err)
	assert.Equal(t, 4, rating.Score)
	assert.Equal(t, "great sessions", rating.Feedback)
	assert.NotEqual(t, primitive.NilObjectID, rating.ID)
}

func TestSubmitRatingValidation(t *testing.T) {
	svc, user, trainer := newRatingFixture(t)
	ctx := context.Background()

	_, err := svc.SubmitRating(ctx, user.ID, trainer.ID, 0, "")
	assert.ErrorIs(t, err, ErrRatingValidation)

	_, err = svc.SubmitRating(ctx, user.ID, trainer.ID, 6, "")
	assert.ErrorIs(t, err, ErrRatingValidation)

	_, err = svc.SubmitRating(ctx, primitive.NewObjectID(), trainer.ID, 3, "")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.SubmitRating(ctx, user.ID, primitive.NewObjectID(), 3, "")
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}

func TestGetTrainerRatings(t *testing.T) {
	svc, user, trainer := newRatingFixture(t)
	ctx := context.Background()

	_, err := svc.SubmitRating(ctx, user.ID, trainer.ID, 5, "excellent")
	require.NoError(t, err)
	_, err = svc.SubmitRating(ctx, user.ID, trainer.ID, 4, "")
	require.NoError(t, err)

	summary, err := svc.GetTrainerRatings(ctx, trainer.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalRatings)
	assert.Equal(t, 4.5, summary.AverageScore)
	assert.Len(t, summary.Ratings, 2)
}

func TestGetTrainerRatingsEmpty(t *testing.T) {
	svc, _, trainer := newRatingFixture(t)

	summary, err := svc.GetTrainerRatings(context.Background(), trainer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalRatings)
	assert.Zero(t, summary.AverageScore)
}

func TestGetTrainerRatingsUnknownTrainer(t *testing.T) {
	svc, _, _ := newRatingFixture(t)

	_, err := svc.GetTrainerRatings(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrTrainerNotFound)
}
