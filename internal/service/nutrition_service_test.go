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

type fakeNutritionRepo struct {
	logs []domain.NutritionLog
}

func (r *fakeNutritionRepo) Create(_ context.Context, log *domain.NutritionLog) (primitive.ObjectID, error) {
	log.ID = primitive.NewObjectID()
	r.logs = append(r.logs, *log)
	return log.ID, nil
}

func (r *fakeNutritionRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.NutritionLog, error) {
	var out []domain.NutritionLog
	for _, l := range r.logs {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

var _ repository.NutritionRepository = (*fakeNutritionRepo)(nil)

func newNutritionFixture(t *testing.T) (NutritionService, *domain.User) {
	t.Helper()
	users := newFakeUserRepo()
	user := &domain.User{FullName: "Asha Rao", Email: "asha@example.com", Role: domain.RoleUser}
	_, err := users.Create(context.Background(), user)
	require.NoError(t, err)
	return NewNutritionService(&fakeNutritionRepo{}, users), user
}

func TestLogMeals(t *testing.T) {
	svc, user := newNutritionFixture(t)

	log, err := svc.LogMeals(context.Background(), user.ID, nil, []domain.Meal{
		{MealType: domain.MealBreakfast, FoodName: "oatmeal", Calories: 400},
	}, 3)
	require.NoError(t, err)
	require.Len(t, log.Meals, 1)
	assert.Equal(t, 25, log.Meals[0].Protein, "macros defaulted before persisting")
	assert.Equal(t, 3, log.WaterIntake)
}

func TestLogMealsValidation(t *testing.T) {
	svc, user := newNutritionFixture(t)
	ctx := context.Background()

	_, err := svc.LogMeals(ctx, user.ID, nil, nil, 0)
	assert.ErrorIs(t, err, ErrNutritionValidation)

	_, err = svc.LogMeals(ctx, user.ID, nil, []domain.Meal{
		{MealType: "brunch", FoodName: "toast", Calories: 200},
	}, 0)
	assert.ErrorIs(t, err, ErrNutritionValidation)

	_, err = svc.LogMeals(ctx, user.ID, nil, []domain.Meal{
		{MealType: domain.MealLunch, FoodName: "salad", Calories: 300},
	}, 9)
	assert.ErrorIs(t, err, ErrWaterIntakeExceeded)
}

func TestLogMealsUnknownUser(t *testing.T) {
	svc, _ := newNutritionFixture(t)

	_, err := svc.LogMeals(context.Background(), primitive.NewObjectID(), nil, []domain.Meal{
		{MealType: domain.MealDinner, FoodName: "pasta", Calories: 700},
	}, 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
