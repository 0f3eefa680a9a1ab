package repository

import (
	"errors"

	"bill-reminder-backend/internal/database/models"
	apperrors "bill-reminder-backend/internal/errors"

	"gorm.io/gorm"
)

// ReminderRepository handles database operations for reminders
type ReminderRepository struct {
	db *gorm.DB
}

// Ensure ReminderRepository implements ReminderRepositoryInterface
var _ ReminderRepositoryInterface = (*ReminderRepository)(nil)

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Create inserts a new reminder
func (r *ReminderRepository) Create(reminder *models.Reminder) error {
	if err := r.db.Create(reminder).Error; err != nil {
		return apperrors.NewStorageError("create reminder", err)
	}
	return nil
}

// GetAll retrieves every reminder joined with its category's name and color.
// Reminders whose category is missing come back with both fields nil.
func (r *ReminderRepository) GetAll() ([]models.ReminderWithCategory, error) {
	var rows []models.ReminderWithCategory
	err := r.db.Model(&models.Reminder{}).
		Select("reminders.*, categories.name AS category_name, categories.color AS category_color").
		Joins("LEFT JOIN categories ON categories.id = reminders.category_id").
		Order("reminders.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.NewStorageError("list reminders", err)
	}
	return rows, nil
}

// GetByID retrieves a reminder by its ID
func (r *ReminderRepository) GetByID(id uint) (*models.Reminder, error) {
	var reminder models.Reminder
	if err := r.db.First(&reminder, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReminderNotFound
		}
		return nil, apperrors.NewStorageError("get reminder", err)
	}
	return &reminder, nil
}

// Update replaces all mutable fields of a reminder and reports the affected
// row count. Select forces zero and nil values through so a cleared
// category_id or amount_approx is persisted.
func (r *ReminderRepository) Update(id uint, reminder *models.Reminder) (int64, error) {
	tx := r.db.Model(&models.Reminder{}).
		Where("id = ?", id).
		Select("title", "category_id", "day_of_month", "amount_approx").
		Updates(reminder)
	if tx.Error != nil {
		return 0, apperrors.NewStorageError("update reminder", tx.Error)
	}
	return tx.RowsAffected, nil
}

// Delete removes a reminder and reports the affected row count. Payments
// recorded against it are intentionally not cleaned up; the payment history
// join omits them.
func (r *ReminderRepository) Delete(id uint) (int64, error) {
	tx := r.db.Delete(&models.Reminder{}, id)
	if tx.Error != nil {
		return 0, apperrors.NewStorageError("delete reminder", tx.Error)
	}
	return tx.RowsAffected, nil
}
