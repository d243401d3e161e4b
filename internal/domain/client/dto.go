// internal/domain/client/dto.go
package client

type CreateClientRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	LastName       string `json:"last_name" binding:"required,max=100"`
	DocumentNumber string `json:"document_number" binding:"required,max=20"`
	Email          string `json:"email" binding:"required,email"`
	PhoneNumber    string `json:"phone_number" binding:"omitempty,max=30"`
	GenderID       *int64 `json:"gender_id"`
	BloodTypeID    *int64 `json:"blood_type_id"`
	ClientGoalID   *int64 `json:"client_goal_id"`
}

type UpdateClientRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	LastName    *string `json:"last_name" binding:"omitempty,max=100"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=30"`
	GenderID     *int64  `json:"gender_id"`
	BloodTypeID  *int64  `json:"blood_type_id"`
	ClientGoalID *int64  `json:"client_goal_id"`
}

type CreateClientGoalRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

type CreateObservationRequest struct {
	Summary string `json:"summary" binding:"required,max=500"`
	Comment string `json:"comment" binding:"omitempty,max=2000"`
	// Date is optional, format 2006-01-02; defaults to today. May not be in
	// the future.
	Date string `json:"date" binding:"omitempty"`
}

type ClientListFilters struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type ClientListResponse struct {
	Clients    []Client `json:"clients"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
}
