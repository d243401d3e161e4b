// internal/domain/attendance/dto.go
package attendance

type CheckinRequest struct {
	DocumentNumber string `json:"document_number" binding:"required,max=20"`
}

// Denial reasons returned to the caller. These are domain outcomes, not
// errors: the request was valid, the business rule said no.
const (
	ReasonNoSubscription = "No active subscription found"
	ReasonInactive       = "Inactive subscription"
	ReasonLimitExceeded  = "Attendance limit exceeded"
)

type CheckinResult struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Attendance *Attendance `json:"attendance,omitempty"`
}

func Denied(message string) *CheckinResult {
	return &CheckinResult{Success: false, Message: message}
}

func Admitted(att *Attendance) *CheckinResult {
	return &CheckinResult{Success: true, Attendance: att}
}
