package models

import "time"

// Payment records that a reminder's obligation was satisfied for one
// (month, year) period. PeriodMonth is 0-indexed (0 = January), matching the
// wire format of the dashboard client. Nothing enforces one payment per
// period; status lookups treat any matching row as paid.
type Payment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ReminderID  uint      `json:"reminder_id" gorm:"not null;index" validate:"required"`
	PaidAt      time.Time `json:"paid_at" gorm:"autoCreateTime"`
	PeriodMonth int       `json:"period_month" gorm:"not null" validate:"min=0,max=11"`
	PeriodYear  int       `json:"period_year" gorm:"not null" validate:"required"`
	Amount      float64   `json:"amount" validate:"gte=0"`
}

// TableName returns the table name for Payment
func (Payment) TableName() string {
	return "payments"
}

// PaymentWithReminder is the history-query row shape: a payment joined with
// the title of the reminder it covers. Payments whose reminder was deleted
// are omitted by the inner join.
type PaymentWithReminder struct {
	Payment
	ReminderTitle string `json:"reminder_title"`
}
