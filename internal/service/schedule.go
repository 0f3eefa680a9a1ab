package service

import (
	"math"
	"sort"
	"time"

	"bill-reminder-backend/internal/database/models"
)

// UpcomingPageSize is the fixed page size for the upcoming-dues list.
const UpcomingPageSize = 5

// PeriodKey identifies one reminder's obligation for a single (month, year)
// period. Month is 0-indexed.
type PeriodKey struct {
	ReminderID uint
	Month      int
	Year       int
}

// PaidSet is the paid-status lookup built from the payment history. A period
// is paid iff its key is present; lookups are O(1).
type PaidSet map[PeriodKey]struct{}

// BuildPaidSet indexes every payment by (reminder, month, year). Duplicate
// payments for one period collapse into a single key.
func BuildPaidSet(payments []models.Payment) PaidSet {
	set := make(PaidSet, len(payments))
	for _, p := range payments {
		set[PeriodKey{ReminderID: p.ReminderID, Month: p.PeriodMonth, Year: p.PeriodYear}] = struct{}{}
	}
	return set
}

// Paid reports whether the reminder's period has at least one payment.
func (s PaidSet) Paid(reminderID uint, month, year int) bool {
	_, ok := s[PeriodKey{ReminderID: reminderID, Month: month, Year: year}]
	return ok
}

// UpcomingItem is a reminder's next unpaid period with its due date and the
// whole days remaining (negative when overdue).
type UpcomingItem struct {
	Reminder  models.ReminderWithCategory `json:"reminder"`
	DueDate   time.Time                   `json:"due_date"`
	DaysUntil int                         `json:"days_until"`
}

// UpcomingItems computes the upcoming-dues list for the given instant.
//
// For each reminder the target period starts at the current month; if that
// period is already paid it advances exactly one month (December rolls the
// year). Reminders whose advanced period is also paid are omitted, so a
// reminder contributes at most one item. The due date is built with
// time.Date, whose day normalization intentionally lets day_of_month 31 roll
// into the next month in shorter months. The result is stably sorted by due
// date ascending, preserving input order on ties.
func UpcomingItems(now time.Time, reminders []models.ReminderWithCategory, paid PaidSet) []UpcomingItem {
	currentMonth := int(now.Month()) - 1
	currentYear := now.Year()

	items := make([]UpcomingItem, 0, len(reminders))
	for _, rem := range reminders {
		dueMonth := currentMonth
		dueYear := currentYear
		if paid.Paid(rem.ID, dueMonth, dueYear) {
			dueMonth++
			if dueMonth > 11 {
				dueMonth = 0
				dueYear++
			}
		}
		if paid.Paid(rem.ID, dueMonth, dueYear) {
			continue
		}

		dueDate := time.Date(dueYear, time.Month(dueMonth+1), rem.DayOfMonth, 0, 0, 0, 0, now.Location())
		items = append(items, UpcomingItem{
			Reminder:  rem,
			DueDate:   dueDate,
			DaysUntil: daysUntil(now, dueDate),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueDate.Before(items[j].DueDate)
	})
	return items
}

// daysUntil is ceil((due − now) / 24h) in whole days.
func daysUntil(now, due time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// MonthlyTotals walks the full reminder set for the current period: paid
// reminders contribute the first matching payment's amount (falling back to
// amount_approx), unpaid ones contribute amount_approx, missing amounts count
// as zero. Independent of the upcoming-items computation.
func MonthlyTotals(now time.Time, reminders []models.ReminderWithCategory, payments []models.Payment, paid PaidSet) (totalPaid, totalPending float64) {
	currentMonth := int(now.Month()) - 1
	currentYear := now.Year()

	for _, rem := range reminders {
		approx := 0.0
		if rem.AmountApprox != nil {
			approx = *rem.AmountApprox
		}
		if paid.Paid(rem.ID, currentMonth, currentYear) {
			totalPaid += paymentAmount(payments, rem.ID, currentMonth, currentYear, approx)
		} else {
			totalPending += approx
		}
	}
	return totalPaid, totalPending
}

// paymentAmount returns the amount of the first payment matching the period,
// or fallback when none matches. First match is order-dependent when
// duplicate payments exist, mirroring the original behavior.
func paymentAmount(payments []models.Payment, reminderID uint, month, year int, fallback float64) float64 {
	for _, p := range payments {
		if p.ReminderID == reminderID && p.PeriodMonth == month && p.PeriodYear == year {
			return p.Amount
		}
	}
	return fallback
}

// ClampPage normalizes a 1-based page index against the item count: total
// pages is max(1, ceil(n/5)) and out-of-range pages snap to the nearest
// valid page, so page 1 is always valid even for an empty list.
func ClampPage(totalItems, page int) (clamped, totalPages int) {
	totalPages = (totalItems + UpcomingPageSize - 1) / UpcomingPageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return page, totalPages
}

// PageSlice returns the items belonging to the (already clamped) page.
func PageSlice(items []UpcomingItem, page int) []UpcomingItem {
	start := (page - 1) * UpcomingPageSize
	if start >= len(items) {
		return []UpcomingItem{}
	}
	end := start + UpcomingPageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
