package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType classifies a meal entry.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MaxWaterGlasses caps the daily water intake field.
const MaxWaterGlasses = 8

// Meal is a single food entry inside a nutrition log.
type Meal struct {
	MealType    MealType `bson:"mealType" json:"mealType"`
	FoodName    string   `bson:"foodName" json:"foodName"`
	Calories    int      `bson:"calories" json:"calories"`
	Protein     int      `bson:"protein" json:"protein"` // grams
	Carbs       int      `bson:"carbs" json:"carbs"`
	Fiber       int      `bson:"fiber" json:"fiber"`
	Fats        int      `bson:"fats" json:"fats"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
}

// NutritionLog groups a user's meals and water intake for one day.
type NutritionLog struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID  `bson:"userId" json:"userId"`
	TrainerID   *primitive.ObjectID `bson:"trainerId,omitempty" json:"trainerId,omitempty"`
	Meals       []Meal              `bson:"meals" json:"meals"`
	WaterIntake int                 `bson:"waterIntake" json:"waterIntake"` // glasses, 0-8
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// macroRatios gives the calorie split used to default missing macros
// per meal type. Protein and carbs count 4 kcal per gram, fats 9.
var macroRatios = map[MealType]struct{ protein, carbs, fats float64 }{
	MealBreakfast: {0.25, 0.50, 0.25},
	MealLunch:     {0.30, 0.45, 0.25},
	MealDinner:    {0.30, 0.40, 0.30},
	MealSnack:     {0.20, 0.60, 0.20},
}

// FillMacros defaults any zero macro fields from the meal's calories and
// the per-meal-type ratios.
func (m *Meal) FillMacros() {
	ratios, ok := macroRatios[m.MealType]
	if !ok {
		return
	}
	if m.Protein == 0 {
		m.Protein = int(float64(m.Calories)*ratios.protein/4 + 0.5)
	}
	if m.Carbs == 0 {
		m.Carbs = int(float64(m.Calories)*ratios.carbs/4 + 0.5)
	}
	if m.Fats == 0 {
		m.Fats = int(float64(m.Calories)*ratios.fats/9 + 0.5)
	}
}

// ValidMealType reports whether t is a known meal type.
func ValidMealType(t MealType) bool {
	_, ok := macroRatios[t]
	return ok
}
