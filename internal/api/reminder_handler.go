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

type ReminderHandler struct {
	reminderService service.ReminderService
}

func NewReminderHandler(reminderService service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// --- DTOs ---

type CreateReminderRequest struct {
	Type      domain.ReminderType `json:"type" binding:"required,oneof=workout meal"`
	Message   string              `json:"message"`
	Time      string              `json:"time" binding:"required"`
	Days      []string            `json:"days"`
	Frequency int                 `json:"frequency" binding:"omitempty,gte=0"`
}

type SnoozeReminderRequest struct {
	Until time.Time `json:"until" binding:"required"`
}

// --- Handlers ---

// CreateReminder godoc
// @Summary Create a recurring reminder
// @Tags Reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reminderRequest body CreateReminderRequest true "Reminder details"
// @Success 201 {object} gin.H "Created reminder"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /reminders [post]
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var req CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	reminder, err := h.reminderService.CreateReminder(c.Request.Context(), &domain.Reminder{
		UserID:    userID,
		Type:      req.Type,
		Message:   req.Message,
		Time:      req.Time,
		Days:      req.Days,
		Frequency: req.Frequency,
	})
	if err != nil {
		if errors.Is(err, service.ErrReminderValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create reminder.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Reminder created",
		"reminder": reminder,
	})
}

// GetReminders godoc
// @Summary List the authenticated user's reminders
// @Tags Reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "Reminders"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /reminders [get]
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	reminders, err := h.reminderService.GetRemindersOfUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list reminders.")
		return
	}
	if reminders == nil {
		reminders = []domain.Reminder{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reminders": reminders})
}

// SnoozeReminder godoc
// @Summary Snooze a reminder until a given time
// @Tags Reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Param snoozeRequest body SnoozeReminderRequest true "Snooze deadline"
// @Success 200 {object} gin.H "Snoozed"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Reminder not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /reminders/{id}/snooze [put]
func (h *ReminderHandler) SnoozeReminder(c *gin.Context) {
	reminderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid reminder ID format.")
		return
	}

	var req SnoozeReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.reminderService.SnoozeReminder(c.Request.Context(), reminderID, req.Until); err != nil {
		switch {
		case errors.Is(err, service.ErrReminderValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrReminderNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to snooze reminder.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reminder snoozed"})
}

// DeleteReminder godoc
// @Summary Delete a reminder
// @Tags Reminders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reminder ID"
// @Success 200 {object} gin.H "Deleted"
// @Failure 400 {object} gin.H "Invalid ID"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Reminder not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /reminders/{id} [delete]
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	reminderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid reminder ID format.")
		return
	}

	if err := h.reminderService.DeleteReminder(c.Request.Context(), reminderID); err != nil {
		if errors.Is(err, service.ErrReminderNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete reminder.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reminder deleted"})
}
