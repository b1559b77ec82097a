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

type TrainerHandler struct {
	trainerService service.TrainerService
}

func NewTrainerHandler(trainerService service.TrainerService) *TrainerHandler {
	return &TrainerHandler{trainerService: trainerService}
}

// --- DTOs ---

type TrainerRequest struct {
	FullName       string                  `json:"fullName" binding:"required"`
	Email          string                  `json:"email" binding:"required,email"`
	Password       string                  `json:"password" binding:"required,min=8"`
	Specialization []domain.Specialization `json:"specialization" binding:"required,min=1"`
	Experience     int                     `json:"experience" binding:"gte=0,lte=60"`
	Bio            string                  `json:"bio"`
	Availability   domain.Availability     `json:"availability"`
	ProfilePicURL  string                  `json:"profilePicUrl"`
}

// UpdateTrainerRequest reuses the create shape minus the mandatory password.
type UpdateTrainerRequest struct {
	FullName       string                  `json:"fullName"`
	Email          string                  `json:"email" binding:"omitempty,email"`
	Password       string                  `json:"password" binding:"omitempty,min=8"`
	Specialization []domain.Specialization `json:"specialization"`
	Experience     int                     `json:"experience" binding:"gte=0,lte=60"`
	Bio            string                  `json:"bio"`
	Availability   domain.Availability     `json:"availability"`
	ProfilePicURL  string                  `json:"profilePicUrl"`
}

type TrainerResponse struct {
	ID             string                  `json:"id"`
	FullName       string                  `json:"fullName"`
	Email          string                  `json:"email"`
	Specialization []domain.Specialization `json:"specialization"`
	Experience     int                     `json:"experience"`
	Bio            string                  `json:"bio,omitempty"`
	Availability   domain.Availability     `json:"availability,omitempty"`
	ProfilePicURL  string                  `json:"profilePicUrl,omitempty"`
	Bookings       []domain.BookingEntry   `json:"bookings,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
}

// MapTrainerToResponse converts a domain.Trainer to its API representation.
func MapTrainerToResponse(trainer *domain.Trainer) TrainerResponse {
	return TrainerResponse{
		ID:             trainer.ID.Hex(),
		FullName:       trainer.FullName,
		Email:          trainer.Email,
		Specialization: trainer.Specialization,
		Experience:     trainer.Experience,
		Bio:            trainer.Bio,
		Availability:   trainer.Availability,
		ProfilePicURL:  trainer.ProfilePicURL,
		Bookings:       trainer.Bookings,
		CreatedAt:      trainer.CreatedAt,
	}
}

// MapTrainersToResponse converts a slice of trainers to DTOs. The embedded
// ledgers are omitted from list views.
func MapTrainersToResponse(trainers []domain.Trainer) []TrainerResponse {
	responses := make([]TrainerResponse, len(trainers))
	for i := range trainers {
		responses[i] = MapTrainerToResponse(&trainers[i])
		responses[i].Bookings = nil
	}
	return responses
}

// --- Handlers ---

// CreateTrainer godoc
// @Summary Create a trainer profile
// @Tags Trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param trainerRequest body TrainerRequest true "Trainer details"
// @Success 201 {object} gin.H "Created trainer"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden"
// @Failure 409 {object} gin.H "Email already registered"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers [post]
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainer, err := h.trainerService.CreateTrainer(c.Request.Context(), service.TrainerInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       req.Password,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Bio:            req.Bio,
		Availability:   req.Availability,
		ProfilePicURL:  req.ProfilePicURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrainerAlreadyExists):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrTrainerValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create trainer.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Trainer created",
		"trainer": MapTrainerToResponse(trainer),
	})
}

// GetAllTrainers godoc
// @Summary List all trainers
// @Tags Trainers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "Trainer list"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers [get]
func (h *TrainerHandler) GetAllTrainers(c *gin.Context) {
	trainers, err := h.trainerService.GetAllTrainers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list trainers.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "trainers": MapTrainersToResponse(trainers)})
}

// GetTrainerByID godoc
// @Summary Get a trainer by ID
// @Tags Trainers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer ID"
// @Success 200 {object} gin.H "Trainer"
// @Failure 400 {object} gin.H "Invalid ID"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Trainer not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers/{id} [get]
func (h *TrainerHandler) GetTrainerByID(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format.")
		return
	}

	trainer, err := h.trainerService.GetTrainerByID(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch trainer.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "trainer": MapTrainerToResponse(trainer)})
}

// UpdateTrainer godoc
// @Summary Update a trainer profile
// @Tags Trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer ID"
// @Param updateRequest body UpdateTrainerRequest true "Fields to change"
// @Success 200 {object} gin.H "Updated trainer"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden"
// @Failure 404 {object} gin.H "Trainer not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers/{id} [put]
func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format.")
		return
	}

	var req UpdateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	trainer, err := h.trainerService.UpdateTrainer(c.Request.Context(), trainerID, service.TrainerInput{
		FullName:       req.FullName,
		Email:          req.Email,
		Password:       req.Password,
		Specialization: req.Specialization,
		Experience:     req.Experience,
		Bio:            req.Bio,
		Availability:   req.Availability,
		ProfilePicURL:  req.ProfilePicURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrainerNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrTrainerValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update trainer.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Trainer updated",
		"trainer": MapTrainerToResponse(trainer),
	})
}

// DeleteTrainer godoc
// @Summary Delete a trainer profile
// @Tags Trainers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer ID"
// @Success 200 {object} gin.H "Deleted"
// @Failure 400 {object} gin.H "Invalid ID"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 403 {object} gin.H "Forbidden (admin only)"
// @Failure 404 {object} gin.H "Trainer not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers/{id} [delete]
func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format.")
		return
	}

	if err := h.trainerService.DeleteTrainer(c.Request.Context(), trainerID); err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete trainer.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Trainer deleted"})
}
