package api

import (
	"errors"
	"net/http"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NutritionHandler struct {
	nutritionService service.NutritionService
	userService      service.UserService
}

func NewNutritionHandler(nutritionService service.NutritionService, userService service.UserService) *NutritionHandler {
	return &NutritionHandler{
		nutritionService: nutritionService,
		userService:      userService,
	}
}

// --- DTOs ---

type MealRequest struct {
	MealType    domain.MealType `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	FoodName    string          `json:"foodName" binding:"required"`
	Calories    int             `json:"calories" binding:"required,gt=0"`
	Protein     int             `json:"protein" binding:"omitempty,gte=0"`
	Carbs       int             `json:"carbs" binding:"omitempty,gte=0"`
	Fiber       int             `json:"fiber" binding:"omitempty,gte=0"`
	Fats        int             `json:"fats" binding:"omitempty,gte=0"`
	Description string          `json:"description"`
}

type CreateNutritionLogRequest struct {
	Meals       []MealRequest `json:"meals" binding:"required,min=1,dive"`
	WaterIntake int           `json:"waterIntake" binding:"gte=0,lte=8"`
}

// --- Handlers ---

// CreateLog godoc
// @Summary Log a day's meals
// @Description Stores meals for the authenticated user; missing macros are defaulted from calories.
// @Tags Nutrition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param logRequest body CreateNutritionLogRequest true "Meals and water intake"
// @Success 201 {object} gin.H "Created log"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /nutrition [post]
func (h *NutritionHandler) CreateLog(c *gin.Context) {
	var req CreateNutritionLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	meals := make([]domain.Meal, len(req.Meals))
	for i, m := range req.Meals {
		meals[i] = domain.Meal{
			MealType:    m.MealType,
			FoodName:    m.FoodName,
			Calories:    m.Calories,
			Protein:     m.Protein,
			Carbs:       m.Carbs,
			Fiber:       m.Fiber,
			Fats:        m.Fats,
			Description: m.Description,
		}
	}

	log, err := h.nutritionService.LogMeals(c.Request.Context(), userID, h.trainerOf(c, userID), meals, req.WaterIntake)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNutritionValidation), errors.Is(err, service.ErrWaterIntakeExceeded):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to store nutrition log.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Nutrition log saved",
		"log":     log,
	})
}

// GetLogs godoc
// @Summary List the authenticated user's nutrition logs
// @Tags Nutrition
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "Logs, newest first"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /nutrition [get]
func (h *NutritionHandler) GetLogs(c *gin.Context) {
	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	logs, err := h.nutritionService.GetLogsOfUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list nutrition logs.")
		return
	}
	if logs == nil {
		logs = []domain.NutritionLog{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "logs": logs})
}

// trainerOf looks up the caller's assigned trainer so logs can carry it.
// A missing assignment is not an error.
func (h *NutritionHandler) trainerOf(c *gin.Context, userID primitive.ObjectID) *primitive.ObjectID {
	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return nil
	}
	return user.TrainerID
}
