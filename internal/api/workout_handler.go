package api

import (
	"errors"
	"net/http"
	"time"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
	userService    service.UserService
}

func NewWorkoutHandler(workoutService service.WorkoutService, userService service.UserService) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
		userService:    userService,
	}
}

// --- DTOs ---

type WorkoutEntryRequest struct {
	WorkoutName    string             `json:"workoutName" binding:"required"`
	WorkoutType    domain.WorkoutType `json:"workoutType" binding:"required,oneof=strength cardio flexibility HIIT"`
	Duration       int                `json:"duration" binding:"required,gte=1,lte=300"`
	CaloriesBurned int                `json:"caloriesBurned" binding:"omitempty,gte=0,lte=5000"`
	Sets           int                `json:"sets" binding:"omitempty,gte=0"`
	Reps           int                `json:"reps" binding:"omitempty,gte=0"`
	Weights        float64            `json:"weights" binding:"omitempty,gte=0"`
	Completed      bool               `json:"completed"`
}

type LogWorkoutsRequest struct {
	Date     time.Time             `json:"date" binding:"required"`
	Workouts []WorkoutEntryRequest `json:"workouts" binding:"required,min=1,dive"`
}

// --- Handlers ---

// LogWorkouts godoc
// @Summary Append a day of workouts to the user's log
// @Description Entry dates collapse to start of day; calories are defaulted from type and duration.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workoutRequest body LogWorkoutsRequest true "Day of workouts"
// @Success 201 {object} gin.H "Appended"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workouts [post]
func (h *WorkoutHandler) LogWorkouts(c *gin.Context) {
	var req LogWorkoutsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	entries := make([]domain.WorkoutEntry, len(req.Workouts))
	for i, w := range req.Workouts {
		entries[i] = domain.WorkoutEntry{
			WorkoutName:    w.WorkoutName,
			WorkoutType:    w.WorkoutType,
			Duration:       w.Duration,
			CaloriesBurned: w.CaloriesBurned,
			Sets:           w.Sets,
			Reps:           w.Reps,
			Weights:        w.Weights,
			Completed:      w.Completed,
		}
	}

	trainerID := primitive.NilObjectID
	if user, err := h.userService.GetProfile(c.Request.Context(), userID); err == nil && user.TrainerID != nil {
		trainerID = *user.TrainerID
	}

	if err := h.workoutService.LogWorkouts(c.Request.Context(), userID, trainerID, req.Date, entries); err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to store workout log.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Workout log saved"})
}

// GetLog godoc
// @Summary Get the authenticated user's workout history
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "Workout log"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "No workout log yet"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workouts [get]
func (h *WorkoutHandler) GetLog(c *gin.Context) {
	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	log, err := h.workoutService.GetLogOfUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutLogEmpty) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout log.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "log": log})
}
