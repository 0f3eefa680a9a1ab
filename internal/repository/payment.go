package repository

import (
	"bill-reminder-backend/internal/database/models"
	apperrors "bill-reminder-backend/internal/errors"

	"gorm.io/gorm"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *gorm.DB
}

// Ensure PaymentRepository implements PaymentRepositoryInterface
var _ PaymentRepositoryInterface = (*PaymentRepository)(nil)

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts a new payment. PaidAt is stamped by the database layer when
// zero. No uniqueness is enforced per (reminder, period); duplicates are
// allowed exactly as in the original schema.
func (r *PaymentRepository) Create(payment *models.Payment) error {
	if err := r.db.Create(payment).Error; err != nil {
		return apperrors.NewStorageError("create payment", err)
	}
	return nil
}

// GetAll retrieves the full payment history joined with reminder titles,
// newest first. Orphaned payments (deleted reminder) are omitted by the
// inner join.
func (r *PaymentRepository) GetAll() ([]models.PaymentWithReminder, error) {
	var rows []models.PaymentWithReminder
	err := r.db.Model(&models.Payment{}).
		Select("payments.*, reminders.title AS reminder_title").
		Joins("JOIN reminders ON reminders.id = payments.reminder_id").
		Order("payments.paid_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewStorageError("list payments", err)
	}
	return rows, nil
}

// GetPaidReminderIDs returns the reminder IDs with at least one payment for
// the given period. IDs repeat when duplicate payments exist, matching the
// original endpoint's raw rows.
func (r *PaymentRepository) GetPaidReminderIDs(periodMonth, periodYear int) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Payment{}).
		Where("period_month = ? AND period_year = ?", periodMonth, periodYear).
		Pluck("reminder_id", &ids).Error
	if err != nil {
		return nil, apperrors.NewStorageError("check paid reminders", err)
	}
	return ids, nil
}
