// internal/domain/membership/dto.go
package membership

type CreateMembershipRequest struct {
	Name                  string  `json:"name" binding:"required,max=100"`
	Description           string  `json:"description"`
	MonthlyPrice          float64 `json:"monthly_price" binding:"required,gt=0"`
	WeeklyAttendanceLimit int     `json:"weekly_attendance_limit" binding:"required,min=1"`
}

type UpdateMembershipRequest struct {
	Name                  *string  `json:"name" binding:"omitempty,max=100"`
	Description           *string  `json:"description"`
	MonthlyPrice          *float64 `json:"monthly_price" binding:"omitempty,gt=0"`
	WeeklyAttendanceLimit *int     `json:"weekly_attendance_limit" binding:"omitempty,min=1"`
}
