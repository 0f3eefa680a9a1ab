package service

import (
	"fmt"
	"time"

	"bill-reminder-backend/internal/database/models"
	apperrors "bill-reminder-backend/internal/errors"
	"bill-reminder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// PaymentService provides payment-related business logic
type PaymentService struct {
	repo      repository.PaymentRepositoryInterface
	validator *validator.Validate
}

// Ensure PaymentService implements PaymentServiceInterface
var _ PaymentServiceInterface = (*PaymentService)(nil)

// NewPaymentService creates a new PaymentService
func NewPaymentService(repo repository.PaymentRepositoryInterface, validator *validator.Validate) *PaymentService {
	return &PaymentService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePaymentRequest marks one reminder's (month, year) period as paid.
// period_month is 0-indexed. The reminder reference is not checked: a payment
// against a nonexistent reminder is stored and the history join omits it.
type CreatePaymentRequest struct {
	ReminderID  uint    `json:"reminder_id" validate:"required"`
	PeriodMonth int     `json:"period_month" validate:"gte=0,lte=11"`
	PeriodYear  int     `json:"period_year" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
}

// PaymentResponse represents a payment in API responses, including the
// reminder title for history rendering
type PaymentResponse struct {
	ID            uint      `json:"id"`
	ReminderID    uint      `json:"reminder_id"`
	PaidAt        time.Time `json:"paid_at"`
	PeriodMonth   int       `json:"period_month"`
	PeriodYear    int       `json:"period_year"`
	Amount        float64   `json:"amount"`
	ReminderTitle string    `json:"reminder_title,omitempty"`
}

// GetAll retrieves the full payment history, newest first
func (s *PaymentService) GetAll() ([]PaymentResponse, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	responses := make([]PaymentResponse, len(rows))
	for i, row := range rows {
		responses[i] = PaymentResponse{
			ID:            row.ID,
			ReminderID:    row.ReminderID,
			PaidAt:        row.PaidAt,
			PeriodMonth:   row.PeriodMonth,
			PeriodYear:    row.PeriodYear,
			Amount:        row.Amount,
			ReminderTitle: row.ReminderTitle,
		}
	}
	return responses, nil
}

// Create records a payment for one reminder period. No uniqueness per period
// is enforced, so paying the same period twice stores a second row.
func (s *PaymentService) Create(req *CreatePaymentRequest) (*PaymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	payment := &models.Payment{
		ReminderID:  req.ReminderID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Amount:      req.Amount,
	}
	if err := s.repo.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return &PaymentResponse{
		ID:          payment.ID,
		ReminderID:  payment.ReminderID,
		PaidAt:      payment.PaidAt,
		PeriodMonth: payment.PeriodMonth,
		PeriodYear:  payment.PeriodYear,
		Amount:      payment.Amount,
	}, nil
}

// CheckPeriod returns the reminder IDs paid for the given (month, year)
func (s *PaymentService) CheckPeriod(periodMonth, periodYear int) ([]uint, error) {
	if periodMonth < 0 || periodMonth > 11 {
		return nil, apperrors.ErrInvalidPeriod
	}
	ids, err := s.repo.GetPaidReminderIDs(periodMonth, periodYear)
	if err != nil {
		return nil, fmt.Errorf("failed to check paid reminders: %w", err)
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}
