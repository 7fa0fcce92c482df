package model

import "time"

// Frequency is the unit a recurring transaction advances by.
type Frequency string

const (
	// FrequencyDaily repeats every Interval days.
	FrequencyDaily Frequency = "daily"
	// FrequencyWeekly repeats every Interval weeks.
	FrequencyWeekly Frequency = "weekly"
	// FrequencyMonthly repeats every Interval months.
	FrequencyMonthly Frequency = "monthly"
	// FrequencyYearly repeats every Interval years.
	FrequencyYearly Frequency = "yearly"
)

// RecurringTransaction is a template that materializes ledger entries on a
// schedule.
//
// NextRunDate is always the earliest occurrence not yet materialized, at or
// after StartDate. It advances monotonically and only forward; pausing via
// IsActive does not touch it, so a resumed definition catches up from where
// it left off.
type RecurringTransaction struct {
	StartDate   time.Time       `json:"startDate"`
	NextRunDate time.Time       `json:"nextRunDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	LastRunDate *time.Time      `json:"lastRunDate,omitempty"`
	ToAmount    *float64        `json:"toAmount,omitempty"`
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Currency    string          `json:"currency"`
	WalletID    string          `json:"walletId"`
	CategoryID  string          `json:"categoryId,omitempty"`
	ToWalletID  string          `json:"toWalletId,omitempty"`
	Type        TransactionType `json:"type"`
	Frequency   Frequency       `json:"frequency"`
	Interval    int             `json:"interval"` // >= 1
	Amount      float64         `json:"amount"`
	IsActive    bool            `json:"isActive"`
}

// NextOccurrence returns the date one period after from, honoring the
// definition's frequency and interval. Month and year steps follow
// time.AddDate normalization (Jan 31 + 1 month lands in early March).
func (r *RecurringTransaction) NextOccurrence(from time.Time) time.Time {
	interval := r.Interval
	if interval < 1 {
		interval = 1
	}
	switch r.Frequency {
	case FrequencyDaily:
		return from.AddDate(0, 0, interval)
	case FrequencyWeekly:
		return from.AddDate(0, 0, interval*7)
	case FrequencyMonthly:
		return from.AddDate(0, interval, 0)
	case FrequencyYearly:
		return from.AddDate(interval, 0, 0)
	default:
		return from.AddDate(0, 0, interval)
	}
}

// Ended reports whether the definition's end date (if any) is before now.
func (r *RecurringTransaction) Ended(now time.Time) bool {
	return r.EndDate != nil && r.EndDate.Before(now)
}
