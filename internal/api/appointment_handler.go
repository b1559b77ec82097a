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

type AppointmentHandler struct {
	bookingService service.BookingService
}

func NewAppointmentHandler(bookingService service.BookingService) *AppointmentHandler {
	return &AppointmentHandler{bookingService: bookingService}
}

// --- DTOs ---

type CreateAppointmentRequest struct {
	TrainerID   string             `json:"trainerId" binding:"required"`
	ScheduledAt time.Time          `json:"scheduledAt" binding:"required"`
	ServiceType domain.ServiceType `json:"serviceType" binding:"omitempty,oneof=personal_training group_training nutrition_plan"`
	Notes       string             `json:"notes"`
}

type RescheduleRequest struct {
	NewScheduledAt time.Time `json:"newScheduledAt" binding:"required"`
}

type RespondRequest struct {
	Status domain.AppointmentStatus `json:"status" binding:"required"`
}

type AppointmentResponse struct {
	ID          string                   `json:"id"`
	UserID      string                   `json:"userId"`
	TrainerID   string                   `json:"trainerId"`
	ScheduledAt time.Time                `json:"scheduledAt"`
	Status      domain.AppointmentStatus `json:"status"`
	ServiceType domain.ServiceType       `json:"serviceType,omitempty"`
	Notes       string                   `json:"notes,omitempty"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

// MapAppointmentToResponse converts a domain.Appointment to its API shape.
func MapAppointmentToResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID.Hex(),
		UserID:      a.UserID.Hex(),
		TrainerID:   a.TrainerID.Hex(),
		ScheduledAt: a.ScheduledAt,
		Status:      a.Status,
		ServiceType: a.ServiceType,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// MapAppointmentsToResponse converts a slice of appointments to DTOs.
func MapAppointmentsToResponse(appointments []domain.Appointment) []AppointmentResponse {
	responses := make([]AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = MapAppointmentToResponse(&appointments[i])
	}
	return responses
}

// --- Handlers ---

// CreateAppointment godoc
// @Summary Book an appointment with a trainer
// @Description Creates a pending appointment for the authenticated user, subject to slot conflict checks.
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param appointmentRequest body CreateAppointmentRequest true "Booking details"
// @Success 201 {object} gin.H "Created appointment"
// @Failure 400 {object} gin.H "Validation error or appointment time in the past"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "User or trainer not found"
// @Failure 409 {object} gin.H "Trainer or user already booked at that time"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
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

	serviceType := req.ServiceType
	if serviceType == "" {
		serviceType = domain.ServicePersonalTraining
	}

	appointment, err := h.bookingService.CreateAppointment(c.Request.Context(), userID, trainerID, req.ScheduledAt, serviceType, req.Notes)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Appointment booked",
		"appointment": MapAppointmentToResponse(appointment),
	})
}

// GetAppointments godoc
// @Summary List the authenticated user's appointments
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "Appointments, soonest first"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /appointments [get]
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	appointments, err := h.bookingService.GetAppointmentsOfUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list appointments.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"appointments": MapAppointmentsToResponse(appointments),
	})
}

// RescheduleAppointment godoc
// @Summary Move an appointment to a new time
// @Description Reschedules a non-terminal appointment, resetting it to pending. The appointment's own slot never conflicts with itself.
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param rescheduleRequest body RescheduleRequest true "New time"
// @Success 200 {object} gin.H "Rescheduled appointment"
// @Failure 400 {object} gin.H "Validation error, past time, or terminal appointment"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Appointment not found"
// @Failure 409 {object} gin.H "New slot already taken"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /appointments/{id}/reschedule [put]
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	appointmentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid appointment ID format.")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	appointment, err := h.bookingService.RescheduleAppointment(c.Request.Context(), appointmentID, req.NewScheduledAt)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Appointment rescheduled",
		"appointment": MapAppointmentToResponse(appointment),
	})
}

// CancelAppointment godoc
// @Summary Cancel an open appointment
// @Description Cancels a pending or confirmed appointment; already-terminal appointments report not found.
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} gin.H "Cancelled appointment"
// @Failure 400 {object} gin.H "Invalid ID"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Appointment not found or already closed"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /appointments/{id}/cancel [put]
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	appointmentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid appointment ID format.")
		return
	}

	appointment, err := h.bookingService.CancelAppointment(c.Request.Context(), appointmentID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Appointment cancelled",
		"appointment": MapAppointmentToResponse(appointment),
	})
}

// RespondToAppointment godoc
// @Summary Apply a status change to an appointment
// @Description Applies confirm/complete/cancel style transitions, validated against the appointment state machine.
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param respondRequest body RespondRequest true "Target status"
// @Success 200 {object} gin.H "Updated appointment"
// @Failure 400 {object} gin.H "Invalid or disallowed status transition"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Appointment not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /appointments/{id}/respond [put]
func (h *AppointmentHandler) RespondToAppointment(c *gin.Context) {
	appointmentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid appointment ID format.")
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	appointment, err := h.bookingService.RespondToAppointment(c.Request.Context(), appointmentID, req.Status)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Appointment updated",
		"appointment": MapAppointmentToResponse(appointment),
	})
}

// writeBookingError maps booking engine errors to HTTP statuses: validation
// problems to 400, missing parties to 404, slot conflicts to 409.
func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidSchedule),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrTerminalState):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrTrainerNotFound),
		errors.Is(err, service.ErrAppointmentNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrTrainerConflict),
		errors.Is(err, service.ErrUserConflict):
		abortWithError(c, http.StatusConflict, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "Appointment operation failed.")
	}
}
