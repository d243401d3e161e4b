// internal/domain/feecollection/dto.go
package feecollection

type CollectRequest struct {
	DocumentNumber string `json:"document_number" binding:"required,max=20"`
	PaidMonths     int    `json:"paid_months" binding:"required,min=1"`

	// Date is optional, formatted YYYY-MM-DD; defaults to today. Must not be
	// in the future.
	Date string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ReasonNoSubscription mirrors the attendance outcome for a uniform domain
// result convention across both payment and check-in paths.
const ReasonNoSubscription = "No active subscription found"

type CollectResult struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message,omitempty"`
	FeeCollection *FeeCollection `json:"fee_collection,omitempty"`
}

func Denied(message string) *CollectResult {
	return &CollectResult{Success: false, Message: message}
}

func Recorded(fee *FeeCollection) *CollectResult {
	return &CollectResult{Success: true, FeeCollection: fee}
}
