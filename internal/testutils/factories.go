package testutils

import (
	"time"

	"bill-reminder-backend/internal/database/models"
)

// CategoryFactory provides methods to create test Category data
type CategoryFactory struct{}

// NewCategoryFactory creates a new CategoryFactory
func NewCategoryFactory() *CategoryFactory {
	return &CategoryFactory{}
}

// Create creates a test Category with default values
func (f *CategoryFactory) Create() *models.Category {
	return &models.Category{
		Name:  "Internet",
		Color: "#3b82f6",
	}
}

// WithName sets a custom name for the category
func (f *CategoryFactory) WithName(name string) *models.Category {
	c := f.Create()
	c.Name = name
	return c
}

// WithColor sets a custom color for the category
func (f *CategoryFactory) WithColor(color string) *models.Category {
	c := f.Create()
	c.Color = color
	return c
}

// ReminderFactory provides methods to create test Reminder data
type ReminderFactory struct{}

// NewReminderFactory creates a new ReminderFactory
func NewReminderFactory() *ReminderFactory {
	return &ReminderFactory{}
}

// Create creates a test Reminder with default values
func (f *ReminderFactory) Create() *models.Reminder {
	amount := 120.50
	return &models.Reminder{
		Title:        "Electricity bill",
		DayOfMonth:   10,
		AmountApprox: &amount,
	}
}

// WithTitle sets a custom title for the reminder
func (f *ReminderFactory) WithTitle(title string) *models.Reminder {
	r := f.Create()
	r.Title = title
	return r
}

// WithCategory attaches a category reference to the reminder
func (f *ReminderFactory) WithCategory(categoryID uint) *models.Reminder {
	r := f.Create()
	r.CategoryID = &categoryID
	return r
}

// WithDayOfMonth sets a custom due day for the reminder
func (f *ReminderFactory) WithDayOfMonth(day int) *models.Reminder {
	r := f.Create()
	r.DayOfMonth = day
	return r
}

// WithoutAmount clears the approximate amount
func (f *ReminderFactory) WithoutAmount() *models.Reminder {
	r := f.Create()
	r.AmountApprox = nil
	return r
}

// PaymentFactory provides methods to create test Payment data
type PaymentFactory struct{}

// NewPaymentFactory creates a new PaymentFactory
func NewPaymentFactory() *PaymentFactory {
	return &PaymentFactory{}
}

// Create creates a test Payment for the given reminder and period
func (f *PaymentFactory) Create(reminderID uint, periodMonth, periodYear int) *models.Payment {
	return &models.Payment{
		ReminderID:  reminderID,
		PaidAt:      time.Now(),
		PeriodMonth: periodMonth,
		PeriodYear:  periodYear,
		Amount:      120.50,
	}
}

// WithAmount sets a custom amount for the payment
func (f *PaymentFactory) WithAmount(reminderID uint, periodMonth, periodYear int, amount float64) *models.Payment {
	p := f.Create(reminderID, periodMonth, periodYear)
	p.Amount = amount
	return p
}

// FactorySet provides access to all factories
type FactorySet struct {
	Category *CategoryFactory
	Reminder *ReminderFactory
	Payment  *PaymentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Category: NewCategoryFactory(),
		Reminder: NewReminderFactory(),
		Payment:  NewPaymentFactory(),
	}
}
