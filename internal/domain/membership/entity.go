// internal/domain/membership/entity.go
package membership

import (
	"database/sql"
	"time"
)

// Membership is a priced plan. MonthlyPrice is the plan's current price and may
// change over time; fee collections freeze the price at recording time, so
// edits here never rewrite payment history.
type Membership struct {
	ID          int64          `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description sql.NullString `json:"description,omitempty" db:"description"`

	// Pricing and quota
	MonthlyPrice          float64 `json:"monthly_price" db:"monthly_price"`
	WeeklyAttendanceLimit int     `json:"weekly_attendance_limit" db:"weekly_attendance_limit"`

	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
	DeletedAt sql.NullTime `json:"-" db:"deleted_at"`
}
