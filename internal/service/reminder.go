package service

import (
	"fmt"

	"bill-reminder-backend/internal/database/models"
	apperrors "bill-reminder-backend/internal/errors"
	"bill-reminder-backend/internal/logger"
	"bill-reminder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// ReminderService provides reminder-related business logic
type ReminderService struct {
	repo         repository.ReminderRepositoryInterface
	categoryRepo repository.CategoryRepositoryInterface
	validator    *validator.Validate
}

// Ensure ReminderService implements ReminderServiceInterface
var _ ReminderServiceInterface = (*ReminderService)(nil)

// NewReminderService creates a new ReminderService
func NewReminderService(repo repository.ReminderRepositoryInterface, categoryRepo repository.CategoryRepositoryInterface, validator *validator.Validate) *ReminderService {
	return &ReminderService{
		repo:         repo,
		categoryRepo: categoryRepo,
		validator:    validator,
	}
}

// ReminderRequest carries all mutable reminder fields; create and update use
// the same shape since updates replace every field. day_of_month is only
// range-checked, never validated against real calendar length: day 31 in a
// 30-day month rolls into the next month at due-date construction.
type ReminderRequest struct {
	Title        string   `json:"title" validate:"required,min=1,max=200"`
	CategoryID   *uint    `json:"category_id"`
	DayOfMonth   int      `json:"day_of_month" validate:"required,min=1,max=31"`
	AmountApprox *float64 `json:"amount_approx" validate:"omitempty,gte=0"`
}

// ReminderResponse represents a reminder in API responses, including the
// joined category fields (nil when the category is absent or deleted)
type ReminderResponse struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	CategoryID    *uint    `json:"category_id"`
	DayOfMonth    int      `json:"day_of_month"`
	AmountApprox  *float64 `json:"amount_approx"`
	CategoryName  *string  `json:"category_name"`
	CategoryColor *string  `json:"category_color"`
}

// GetAll retrieves all reminders with their category name and color
func (s *ReminderService) GetAll() ([]ReminderResponse, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}

	responses := make([]ReminderResponse, len(rows))
	for i, r := range rows {
		responses[i] = toReminderResponse(&r)
	}
	return responses, nil
}

// Create creates a new reminder. The category reference is weak: an unknown
// category_id is stored as-is and simply renders uncategorized.
func (s *ReminderService) Create(req *ReminderRequest) (*ReminderResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	reminder := &models.Reminder{
		Title:        req.Title,
		CategoryID:   req.CategoryID,
		DayOfMonth:   req.DayOfMonth,
		AmountApprox: req.AmountApprox,
	}
	if err := s.repo.Create(reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	resp := toReminderResponse(&models.ReminderWithCategory{Reminder: *reminder})
	resp.CategoryName, resp.CategoryColor = s.lookupCategory(req.CategoryID)
	return &resp, nil
}

// Update replaces all mutable fields of a reminder
func (s *ReminderService) Update(id uint, req *ReminderRequest) (*ChangeResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	reminder := &models.Reminder{
		Title:        req.Title,
		CategoryID:   req.CategoryID,
		DayOfMonth:   req.DayOfMonth,
		AmountApprox: req.AmountApprox,
	}
	changes, err := s.repo.Update(id, reminder)
	if err != nil {
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}
	return &ChangeResponse{Message: "Updated", Changes: changes}, nil
}

// Delete removes a reminder. Its payments are left in place and disappear
// from the history listing via the join.
func (s *ReminderService) Delete(id uint) (*ChangeResponse, error) {
	changes, err := s.repo.Delete(id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete reminder: %w", err)
	}
	return &ChangeResponse{Message: "Deleted", Changes: changes}, nil
}

// lookupCategory resolves display fields for a freshly created reminder so
// the response matches what a list fetch would return.
func (s *ReminderService) lookupCategory(id *uint) (*string, *string) {
	if id == nil {
		return nil, nil
	}
	category, err := s.categoryRepo.GetByID(*id)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			logger.New().WithField("category_id", *id).WithField("error", err.Error()).Warn("category lookup failed")
		}
		return nil, nil
	}
	return &category.Name, &category.Color
}

// toReminderResponse converts a joined reminder row to an API response
func toReminderResponse(row *models.ReminderWithCategory) ReminderResponse {
	return ReminderResponse{
		ID:            row.ID,
		Title:         row.Title,
		CategoryID:    row.CategoryID,
		DayOfMonth:    row.DayOfMonth,
		AmountApprox:  row.AmountApprox,
		CategoryName:  row.CategoryName,
		CategoryColor: row.CategoryColor,
	}
}
