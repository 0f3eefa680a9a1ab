package repository

import (
	"bill-reminder-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CategoryRepositoryInterface defines the interface for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	Delete(id uint) (int64, error)
}

// ReminderRepositoryInterface defines the interface for reminder repository operations
type ReminderRepositoryInterface interface {
	Create(reminder *models.Reminder) error
	GetAll() ([]models.ReminderWithCategory, error)
	GetByID(id uint) (*models.Reminder, error)
	Update(id uint, reminder *models.Reminder) (int64, error)
	Delete(id uint) (int64, error)
}

// PaymentRepositoryInterface defines the interface for payment repository operations
type PaymentRepositoryInterface interface {
	Create(payment *models.Payment) error
	GetAll() ([]models.PaymentWithReminder, error)
	GetPaidReminderIDs(periodMonth, periodYear int) ([]uint, error)
}
