// internal/domain/subscription/entity.go
package subscription

import (
	"time"

	"gymflow-service/internal/domain/client"
	"gymflow-service/internal/domain/membership"
	"gymflow-service/internal/domain/state"
)

type Subscription struct {
	ID int64 `json:"id" db:"id"`

	// StartDate is a calendar date (no time component), interpreted as UTC
	// midnight everywhere.
	StartDate time.Time `json:"start_date" db:"start_date"`

	// Related entities
	ClientID     int64 `json:"client_id" db:"client_id"`
	MembershipID int64 `json:"membership_id" db:"membership_id"`
	StateID      int64 `json:"state_id" db:"state_id"`

	// Loaded relations, populated by the repository on direct lookups.
	State      *state.State           `json:"state,omitempty"`
	Membership *membership.Membership `json:"membership,omitempty"`
	Client     *client.Client         `json:"client,omitempty"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Newest returns the subscription with the maximum start date. Equal start
// dates are broken by the higher id: ids are assigned monotonically, so the
// later-created row is the newer enrollment.
func Newest(subs []Subscription) *Subscription {
	if len(subs) == 0 {
		return nil
	}
	newest := &subs[0]
	for i := 1; i < len(subs); i++ {
		s := &subs[i]
		if s.StartDate.After(newest.StartDate) ||
			(s.StartDate.Equal(newest.StartDate) && s.ID > newest.ID) {
			newest = s
		}
	}
	return newest
}
