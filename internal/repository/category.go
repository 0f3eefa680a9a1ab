package repository

import (
	"errors"

	"bill-reminder-backend/internal/database/models"
	apperrors "bill-reminder-backend/internal/errors"

	"gorm.io/gorm"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *gorm.DB
}

// Ensure CategoryRepository implements CategoryRepositoryInterface
var _ CategoryRepositoryInterface = (*CategoryRepository)(nil)

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a new category
func (r *CategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return apperrors.NewStorageError("create category", err)
	}
	return nil
}

// GetAll retrieves every category in insertion order
func (r *CategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.NewStorageError("list categories", err)
	}
	return categories, nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.NewStorageError("get category", err)
	}
	return &category, nil
}

// Delete removes a category and reports the affected row count. Dependent
// reminders are left untouched; their category_id simply dangles, which the
// list join renders as a missing category.
func (r *CategoryRepository) Delete(id uint) (int64, error) {
	tx := r.db.Delete(&models.Category{}, id)
	if tx.Error != nil {
		return 0, apperrors.NewStorageError("delete category", tx.Error)
	}
	return tx.RowsAffected, nil
}
