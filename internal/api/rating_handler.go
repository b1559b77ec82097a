package api

import (
	"errors"
	"net/http"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// --- DTOs ---

type SubmitRatingRequest struct {
	TrainerID string `json:"trainerId" binding:"required"`
	Score     int    `json:"score" binding:"required,min=1,max=5"`
	Feedback  string `json:"feedback"`
}

// --- Handlers ---

// SubmitRating godoc
// @Summary Rate a trainer
// @Description Stores the authenticated caller's score and feedback for a trainer.
// @Tags Ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ratingRequest body SubmitRatingRequest true "Trainer, score and feedback"
// @Success 201 {object} gin.H "Stored rating"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Trainer not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /ratings [post]
func (h *RatingHandler) SubmitRating(c *gin.Context) {
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := callerObjectID(c)
	if !ok {
		return
	}
	trainerID, err := primitive.ObjectIDFromHex(req.TrainerID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format.")
		return
	}

	rating, err := h.ratingService.SubmitRating(c.Request.Context(), userID, trainerID, req.Score, req.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRatingValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrTrainerNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to submit rating.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Rating submitted successfully!",
		"rating":  rating,
	})
}

// GetTrainerRatings godoc
// @Summary List a trainer's ratings
// @Description Returns the trainer's ratings with their average score.
// @Tags Ratings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trainer ID"
// @Success 200 {object} gin.H "Average score, total and ratings"
// @Failure 400 {object} gin.H "Invalid ID"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Trainer not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /trainers/{id}/ratings [get]
func (h *RatingHandler) GetTrainerRatings(c *gin.Context) {
	trainerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid trainer ID format.")
		return
	}

	summary, err := h.ratingService.GetTrainerRatings(c.Request.Context(), trainerID)
	if err != nil {
		if errors.Is(err, service.ErrTrainerNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to list ratings.")
		}
		return
	}
	if summary.Ratings == nil {
		summary.Ratings = []domain.Rating{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"averageScore": summary.AverageScore,
		"totalRatings": summary.TotalRatings,
		"ratings":      summary.Ratings,
	})
}
