package api

import (
	"errors"
	"net/http"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- DTOs ---

// UpdateProfileRequest uses pointers so absent fields stay untouched.
// Role and password cannot be changed here.
type UpdateProfileRequest struct {
	FullName         *string             `json:"fullName"`
	Age              *int                `json:"age" binding:"omitempty,gte=0"`
	Gender           *string             `json:"gender"`
	Weight           *float64            `json:"weight" binding:"omitempty,gte=0"`
	Height           *float64            `json:"height" binding:"omitempty,gte=0"`
	FitnessGoal      *domain.FitnessGoal `json:"fitnessGoal"`
	DailyCalorieGoal *int                `json:"dailyCalorieGoal" binding:"omitempty,gte=0"`
	DailyWaterGoal   *int                `json:"dailyWaterGoal" binding:"omitempty,gte=0,lte=8"`
	Phone            *string             `json:"phone"`
	Address          *domain.Address     `json:"address"`
	ProfilePicURL    *string             `json:"profilePicUrl"`
}

// --- Handlers ---

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "Profile"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "User not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users/me [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch profile.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": MapUserToResponse(user)})
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateRequest body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} gin.H "Updated profile"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "User not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users/me [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, service.ProfileUpdate{
		FullName:         req.FullName,
		Age:              req.Age,
		Gender:           req.Gender,
		Weight:           req.Weight,
		Height:           req.Height,
		FitnessGoal:      req.FitnessGoal,
		DailyCalorieGoal: req.DailyCalorieGoal,
		DailyWaterGoal:   req.DailyWaterGoal,
		Phone:            req.Phone,
		Address:          req.Address,
		ProfilePicURL:    req.ProfilePicURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated",
		"user":    MapUserToResponse(user),
	})
}

// callerObjectID resolves the authenticated caller's ObjectID from the JWT
// context, aborting with the right status on failure.
func callerObjectID(c *gin.Context) (primitive.ObjectID, bool) {
	idStr, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format in token.")
		return primitive.NilObjectID, false
	}
	return id, true
}
