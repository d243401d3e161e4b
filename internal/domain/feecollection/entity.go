// internal/domain/feecollection/entity.go
package feecollection

import (
	"time"
)

type FeeCollection struct {
	ID             int64  `json:"id" db:"id"`
	Receipt        string `json:"receipt" db:"receipt"`
	SubscriptionID int64  `json:"subscription_id" db:"subscription_id"`

	// Date is the payment date, a calendar date without a time component.
	Date time.Time `json:"date" db:"date"`

	// HistoricalUnitAmount is the plan's monthly price frozen at recording
	// time. Later plan price changes never alter this value.
	HistoricalUnitAmount float64 `json:"historical_unit_amount" db:"historical_unit_amount"`

	// PaidMonths is the number of months this payment covers.
	PaidMonths int `json:"paid_months" db:"paid_months"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DueDate returns the instant the payment stops covering the subscription:
// the payment date plus the paid months, in calendar-month arithmetic.
func (f *FeeCollection) DueDate() time.Time {
	return f.Date.AddDate(0, f.PaidMonths, 0)
}

// Covers reports whether the payment still covers the given instant. Coverage
// ends exactly at the due date: strictly-before passes, at-or-after fails.
func (f *FeeCollection) Covers(now time.Time) bool {
	return now.Before(f.DueDate())
}
