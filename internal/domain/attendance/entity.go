// internal/domain/attendance/entity.go
package attendance

import (
	"time"
)

type Attendance struct {
	ID             int64     `json:"id" db:"id"`
	SubscriptionID int64     `json:"subscription_id" db:"subscription_id"`
	DateTime       time.Time `json:"date_time" db:"date_time"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UnderWeeklyLimit reports whether a subscription that already has count
// attendances recorded this week may record one more. With a limit of L the
// L-th check-in of the week is admitted and the (L+1)-th is rejected.
func UnderWeeklyLimit(count, limit int) bool {
	return count < limit
}

// CurrentWeekWindow returns the [from, to) bounds of the calendar week that
// contains now: Sunday 00:00:00 UTC through the following Sunday, exclusive.
// The window is always computed in UTC so check-ins near week boundaries land
// in the same week regardless of server timezone.
func CurrentWeekWindow(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := midnight.AddDate(0, 0, -int(now.Weekday()))
	return from, from.AddDate(0, 0, 7)
}
