package service

import (
	"fmt"
	"time"

	"bill-reminder-backend/internal/database/models"
	"bill-reminder-backend/internal/repository"
)

// DuesService exposes the due-period computation server-side. The same logic
// runs in the dashboard; centralizing it here keeps one implementation under
// test and lets clients that don't want to replicate it call the API instead.
type DuesService struct {
	reminderRepo repository.ReminderRepositoryInterface
	paymentRepo  repository.PaymentRepositoryInterface
	now          func() time.Time
}

// Ensure DuesService implements DuesServiceInterface
var _ DuesServiceInterface = (*DuesService)(nil)

// NewDuesService creates a new DuesService
func NewDuesService(reminderRepo repository.ReminderRepositoryInterface, paymentRepo repository.PaymentRepositoryInterface) *DuesService {
	return &DuesService{
		reminderRepo: reminderRepo,
		paymentRepo:  paymentRepo,
		now:          time.Now,
	}
}

// SetClock overrides the time source.
func (s *DuesService) SetClock(now func() time.Time) {
	s.now = now
}

// UpcomingResponse is one page of the upcoming-dues list
type UpcomingResponse struct {
	Items      []UpcomingItem `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	PageSize   int            `json:"page_size"`
}

// MonthSummaryResponse holds the stat-tile numbers for the current period
type MonthSummaryResponse struct {
	PeriodMonth   int     `json:"period_month"`
	PeriodYear    int     `json:"period_year"`
	TotalPaid     float64 `json:"total_paid"`
	TotalPending  float64 `json:"total_pending"`
	UpcomingCount int     `json:"upcoming_count"`
}

// Upcoming computes the sorted upcoming-dues list and returns the requested
// page (size 5, out-of-range pages clamped, page 1 valid when empty).
func (s *DuesService) Upcoming(page int) (*UpcomingResponse, error) {
	reminders, payments, err := s.load()
	if err != nil {
		return nil, err
	}

	paid := BuildPaidSet(payments)
	items := UpcomingItems(s.now(), reminders, paid)
	page, totalPages := ClampPage(len(items), page)

	return &UpcomingResponse{
		Items:      PageSlice(items, page),
		Total:      len(items),
		Page:       page,
		TotalPages: totalPages,
		PageSize:   UpcomingPageSize,
	}, nil
}

// Summary computes paid/pending totals and the upcoming count for the
// current calendar month.
func (s *DuesService) Summary() (*MonthSummaryResponse, error) {
	reminders, payments, err := s.load()
	if err != nil {
		return nil, err
	}

	now := s.now()
	paid := BuildPaidSet(payments)
	totalPaid, totalPending := MonthlyTotals(now, reminders, payments, paid)
	items := UpcomingItems(now, reminders, paid)

	return &MonthSummaryResponse{
		PeriodMonth:   int(now.Month()) - 1,
		PeriodYear:    now.Year(),
		TotalPaid:     totalPaid,
		TotalPending:  totalPending,
		UpcomingCount: len(items),
	}, nil
}

// load fetches the full reminder and payment collections, the same snapshot
// shape the dashboard works from.
func (s *DuesService) load() ([]models.ReminderWithCategory, []models.Payment, error) {
	reminders, err := s.reminderRepo.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	rows, err := s.paymentRepo.GetAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get payments: %w", err)
	}
	payments := make([]models.Payment, len(rows))
	for i, row := range rows {
		payments[i] = row.Payment
	}
	return reminders, payments, nil
}
