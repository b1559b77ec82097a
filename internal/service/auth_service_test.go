package service

import (
	"context"
	"testing"
	"time"

	"fitlife/fitness-backend/internal/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *fakeTrainerRepo) {
	t.Helper()
	users := newFakeUserRepo()
	trainers := newFakeTrainerRepo()
	svc := NewAuthService(users, NewRandomAssigner(trainers), "test-secret", time.Hour)
	return svc, users, trainers
}

func TestRegisterAssignsTrainerAndDefaults(t *testing.T) {
	svc, _, trainers := newAuthFixture(t)
	ctx := context.Background()

	trainer := &domain.Trainer{FullName: "Marco Silva", Email: "marco@example.com"}
	_, err := trainers.Create(ctx, trainer)
	require.NoError(t, err)

	token, user, err := svc.Register(ctx, RegisterInput{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Password: "secret-password",
		Role:     domain.RoleUser,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	require.NotNil(t, user.TrainerID)
	assert.Equal(t, trainer.ID, *user.TrainerID)
	assert.Equal(t, 2200, user.DailyCalorieGoal)
	assert.Equal(t, domain.MaxWaterGlasses, user.DailyWaterGoal)
	assert.Empty(t, user.PasswordHash)
}

func TestRegisterWithoutTrainersSucceeds(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, user, err := svc.Register(context.Background(), RegisterInput{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Password: "secret-password",
		Role:     domain.RoleUser,
	})
	require.NoError(t, err)
	assert.Nil(t, user.TrainerID, "no trainers registered yet means unassigned")
}

func TestRegisterAdminGetsNoTrainer(t *testing.T) {
	svc, _, trainers := newAuthFixture(t)
	ctx := context.Background()

	_, err := trainers.Create(ctx, &domain.Trainer{FullName: "Marco Silva", Email: "marco@example.com"})
	require.NoError(t, err)

	_, user, err := svc.Register(ctx, RegisterInput{
		FullName: "Root",
		Email:    "root@example.com",
		Password: "secret-password",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Nil(t, user.TrainerID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	input := RegisterInput{FullName: "Asha Rao", Email: "asha@example.com", Password: "secret-password", Role: domain.RoleUser}
	_, _, err := svc.Register(ctx, input)
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, input)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, registered, err := svc.Register(ctx, RegisterInput{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Password: "secret-password",
		Role:     domain.RoleUser,
	})
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "asha@example.com", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.PasswordHash)

	// The token must carry the uid and role claims the middleware reads.
	claims := struct {
		UserID string      `json:"uid"`
		Role   domain.Role `json:"role"`
		jwt.RegisteredClaims
	}{}
	_, err = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{
		FullName: "Asha Rao",
		Email:    "asha@example.com",
		Password: "secret-password",
		Role:     domain.RoleUser,
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
