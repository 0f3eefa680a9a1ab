package service

import (
	"fmt"

	"bill-reminder-backend/internal/database/models"
	"bill-reminder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ChangeResponse reports the outcome of an update or delete, keeping the
// {message, changes} shape the dashboard client expects.
type ChangeResponse struct {
	Message string `json:"message"`
	Changes int64  `json:"changes"`
}

// CategoryService provides category-related business logic
type CategoryService struct {
	repo      repository.CategoryRepositoryInterface
	validator *validator.Validate
}

// Ensure CategoryService implements CategoryServiceInterface
var _ CategoryServiceInterface = (*CategoryService)(nil)

// NewCategoryService creates a new CategoryService
func NewCategoryService(repo repository.CategoryRepositoryInterface, validator *validator.Validate) *CategoryService {
	return &CategoryService{
		repo:      repo,
		validator: validator,
	}
}

// CreateCategoryRequest represents the request to create a category
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Color string `json:"color" validate:"max=20"`
}

// CategoryResponse represents a single category in API responses
type CategoryResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// GetAll retrieves all categories
func (s *CategoryService) GetAll() ([]CategoryResponse, error) {
	cats, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	responses := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		responses[i] = s.toResponse(&c)
	}
	return responses, nil
}

// Create creates a new category, applying the default color when none is given
func (s *CategoryService) Create(req *CreateCategoryRequest) (*CategoryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := &models.Category{
		Name:  req.Name,
		Color: req.Color,
	}
	if category.Color == "" {
		category.Color = models.DefaultCategoryColor
	}

	if err := s.repo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	resp := s.toResponse(category)
	return &resp, nil
}

// Delete removes a category. Dependent reminders survive with a dangling
// category reference. Deleting an unknown ID is not an error; changes is 0.
func (s *CategoryService) Delete(id uint) (*ChangeResponse, error) {
	changes, err := s.repo.Delete(id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	return &ChangeResponse{Message: "Deleted", Changes: changes}, nil
}

// toResponse converts a Category model to API response
func (s *CategoryService) toResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:    category.ID,
		Name:  category.Name,
		Color: category.Color,
	}
}
