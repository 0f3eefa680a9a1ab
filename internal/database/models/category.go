package models

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#3b82f6"

// Category is a user-defined grouping for reminders with a display color.
type Category struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Color string `json:"color" gorm:"size:20;default:'#3b82f6'" validate:"max=20"`
}

// TableName returns the table name for Category
func (Category) TableName() string {
	return "categories"
}
