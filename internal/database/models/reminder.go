package models

// Reminder is a recurring monthly payment obligation. CategoryID is a weak
// reference: the original schema declares the foreign key but never enforces
// it, so no constraint is emitted and a deleted category simply leaves the
// reminder uncategorized.
type Reminder struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Title        string   `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	CategoryID   *uint    `json:"category_id" gorm:"index"`
	DayOfMonth   int      `json:"day_of_month" gorm:"not null" validate:"required,min=1,max=31"`
	AmountApprox *float64 `json:"amount_approx" validate:"omitempty,gte=0"`
}

// TableName returns the table name for Reminder
func (Reminder) TableName() string {
	return "reminders"
}

// ReminderWithCategory is the list-query row shape: a reminder joined with its
// category's display fields. Both are nil when the category is missing.
type ReminderWithCategory struct {
	Reminder
	CategoryName  *string `json:"category_name"`
	CategoryColor *string `json:"category_color"`
}
