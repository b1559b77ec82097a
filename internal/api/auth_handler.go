package api

import (
	"errors"
	"net/http"
	"time"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- DTOs ---

type RegisterRequest struct {
	FullName         string             `json:"fullName" binding:"required"`
	Email            string             `json:"email" binding:"required,email"`
	Password         string             `json:"password" binding:"required,min=8"`
	Role             domain.Role        `json:"role" binding:"required,oneof=user admin"`
	Age              int                `json:"age" binding:"omitempty,gte=0"`
	Gender           string             `json:"gender"`
	Weight           float64            `json:"weight" binding:"omitempty,gte=0"`
	Height           float64            `json:"height" binding:"omitempty,gte=0"`
	FitnessGoal      domain.FitnessGoal `json:"fitnessGoal"`
	DailyCalorieGoal int                `json:"dailyCalorieGoal" binding:"omitempty,gte=0"`
	DailyWaterGoal   int                `json:"dailyWaterGoal" binding:"omitempty,gte=0,lte=8"`
	Phone            string             `json:"phone"`
	Address          domain.Address     `json:"address"`
	ProfilePicURL    string             `json:"profilePicUrl"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the JSON shape for users; the password hash never leaves
// the service layer anyway, but the DTO makes the surface explicit.
type UserResponse struct {
	ID               string             `json:"id"`
	FullName         string             `json:"fullName"`
	Email            string             `json:"email"`
	Role             domain.Role        `json:"role"`
	TrainerID        string             `json:"trainerId,omitempty"`
	Age              int                `json:"age,omitempty"`
	Gender           string             `json:"gender,omitempty"`
	Weight           float64            `json:"weight,omitempty"`
	Height           float64            `json:"height,omitempty"`
	BMI              float64            `json:"bmi,omitempty"`
	FitnessGoal      domain.FitnessGoal `json:"fitnessGoal,omitempty"`
	DailyCalorieGoal int                `json:"dailyCalorieGoal,omitempty"`
	DailyWaterGoal   int                `json:"dailyWaterGoal,omitempty"`
	Phone            string             `json:"phone,omitempty"`
	Address          domain.Address     `json:"address,omitempty"`
	ProfilePicURL    string             `json:"profilePicUrl,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
}

// MapUserToResponse converts a domain.User to its API representation.
func MapUserToResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:               user.ID.Hex(),
		FullName:         user.FullName,
		Email:            user.Email,
		Role:             user.Role,
		Age:              user.Age,
		Gender:           user.Gender,
		Weight:           user.Weight,
		Height:           user.Height,
		BMI:              user.BMI(),
		FitnessGoal:      user.FitnessGoal,
		DailyCalorieGoal: user.DailyCalorieGoal,
		DailyWaterGoal:   user.DailyWaterGoal,
		Phone:            user.Phone,
		Address:          user.Address,
		ProfilePicURL:    user.ProfilePicURL,
		CreatedAt:        user.CreatedAt,
	}
	if user.TrainerID != nil {
		resp.TrainerID = user.TrainerID.Hex()
	}
	return resp
}

// --- Handlers ---

// Register godoc
// @Summary Register a new user
// @Description Creates a user account, assigns a trainer to regular users, and returns a JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerRequest body RegisterRequest true "Registration details"
// @Success 201 {object} gin.H "Token and created user"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 409 {object} gin.H "Email already registered"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	token, user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		FullName:         req.FullName,
		Email:            req.Email,
		Password:         req.Password,
		Role:             req.Role,
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
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Registration failed.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"token":   token,
		"user":    MapUserToResponse(user),
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticates by email/password and returns a JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginRequest body LoginRequest true "Credentials"
// @Success 200 {object} gin.H "Token and user"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Invalid credentials"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Login failed.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    MapUserToResponse(user),
	})
}
