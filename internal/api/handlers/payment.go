package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "bill-reminder-backend/internal/errors"
	"bill-reminder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentService service.PaymentServiceInterface
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService service.PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// ListPayments handles GET /api/payments
// @Summary List payment history
// @Description Get all payments joined with reminder titles, newest first
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {array} service.PaymentResponse "Successfully retrieved payments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// CreatePayment handles POST /api/payments
// @Summary Record a payment
// @Description Mark a reminder's (month, year) period as paid
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body service.CreatePaymentRequest true "Payment data"
// @Success 201 {object} service.PaymentResponse "Successfully recorded payment"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req service.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	payment, err := h.paymentService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// CheckPayments handles GET /api/payments/check
// @Summary Check paid reminders for a period
// @Description Get the reminder IDs with a payment recorded for the given month and year
// @Tags payments
// @Accept json
// @Produce json
// @Param month query int true "Period month (0-11)"
// @Param year query int true "Period year"
// @Success 200 {array} int "Paid reminder IDs"
// @Failure 400 {object} map[string]interface{} "Invalid period"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /payments/check [get]
func (h *PaymentHandler) CheckPayments(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month parameter"})
		return
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year parameter"})
		return
	}

	ids, err := h.paymentService.CheckPeriod(month, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check payments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ids)
}
