package api

import (
	"errors"
	"net/http"

	"fitlife/fitness-backend/internal/domain"
	"fitlife/fitness-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	userService    service.UserService
}

func NewPaymentHandler(paymentService service.PaymentService, userService service.UserService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		userService:    userService,
	}
}

// --- DTOs ---

type CreatePaymentRequest struct {
	Amount float64              `json:"amount" binding:"required,gt=0"`
	Method domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=credit_card debit_card net_banking upi cash"`
}

type UpdatePaymentStatusRequest struct {
	Status domain.PaymentStatus `json:"status" binding:"required,oneof=pending completed failed"`
}

// --- Handlers ---

// RecordPayment godoc
// @Summary Record a payment
// @Description Stores a pending payment record for the authenticated user.
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param paymentRequest body CreatePaymentRequest true "Amount and method"
// @Success 201 {object} gin.H "Created payment"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	var trainerID *primitive.ObjectID
	if user, err := h.userService.GetProfile(c.Request.Context(), userID); err == nil {
		trainerID = user.TrainerID
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), userID, trainerID, req.Amount, req.Method)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to record payment.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Payment recorded",
		"payment": payment,
	})
}

// GetPayments godoc
// @Summary List the authenticated user's payments
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} gin.H "Payments, newest first"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /payments [get]
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	userID, ok := callerObjectID(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.GetPaymentsOfUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list payments.")
		return
	}
	if payments == nil {
		payments = []domain.Payment{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments})
}

// UpdateStatus godoc
// @Summary Update a payment's status
// @Description Marks a payment pending/completed/failed. Completion mints a transaction reference.
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param statusRequest body UpdatePaymentStatusRequest true "Target status"
// @Success 200 {object} gin.H "Updated payment"
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "Payment not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /payments/{id}/status [put]
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	paymentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid payment ID format.")
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	payment, err := h.paymentService.UpdateStatus(c.Request.Context(), paymentID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrPaymentNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update payment.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment updated",
		"payment": payment,
	})
}
