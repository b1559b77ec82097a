package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillMacrosDefaultsFromCalories(t *testing.T) {
	meal := Meal{MealType: MealBreakfast, FoodName: "oatmeal", Calories: 400}
	meal.FillMacros()

	// 25% protein and fats, 50% carbs; protein/carbs at 4 kcal per g, fats at 9.
	assert.Equal(t, 25, meal.Protein)
	assert.Equal(t, 50, meal.Carbs)
	assert.Equal(t, 11, meal.Fats)
}

func TestFillMacrosKeepsExplicitValues(t *testing.T) {
	meal := Meal{MealType: MealLunch, FoodName: "chicken salad", Calories: 600, Protein: 55}
	meal.FillMacros()

	assert.Equal(t, 55, meal.Protein, "caller-provided macros must survive")
	assert.NotZero(t, meal.Carbs)
	assert.NotZero(t, meal.Fats)
}

func TestFillMacrosUnknownMealType(t *testing.T) {
	meal := Meal{MealType: MealType("brunch"), Calories: 500}
	meal.FillMacros()

	assert.Zero(t, meal.Protein)
	assert.Zero(t, meal.Carbs)
	assert.Zero(t, meal.Fats)
}

func TestValidMealType(t *testing.T) {
	assert.True(t, ValidMealType(MealSnack))
	assert.False(t, ValidMealType(MealType("brunch")))
}
