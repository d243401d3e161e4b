// internal/domain/subscription/dto.go
package subscription

type CreateSubscriptionRequest struct {
	ClientID     int64 `json:"client_id" binding:"required"`
	MembershipID int64 `json:"membership_id" binding:"required"`

	// StartDate is optional, formatted YYYY-MM-DD; defaults to today.
	StartDate string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
}
