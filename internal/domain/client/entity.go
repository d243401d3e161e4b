// internal/domain/client/entity.go
package client

import (
	"database/sql"
	"time"
)

type Gender struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type BloodType struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ClientGoal is a training objective clients can be tagged with (weight loss,
// strength, rehabilitation, ...). Goals are shared reference data, not
// per-client records.
type ClientGoal struct {
	ID          int64          `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Description sql.NullString `json:"description,omitempty" db:"description"`
}

// ClientObservation is a dated staff note on a client: an injury, a medical
// restriction, a trainer remark. Observations are soft-deleted so the note
// trail survives.
type ClientObservation struct {
	ID       int64          `json:"id" db:"id"`
	ClientID int64          `json:"client_id" db:"client_id"`
	Summary  string         `json:"summary" db:"summary"`
	Comment  sql.NullString `json:"comment,omitempty" db:"comment"`

	// Date is a calendar date, stored without a time component.
	Date time.Time `json:"date" db:"date"`

	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	DeletedAt sql.NullTime `json:"-" db:"deleted_at"`
}

type Client struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	LastName string `json:"last_name" db:"last_name"`

	// Identity
	DocumentNumber string         `json:"document_number" db:"document_number"`
	Email          string         `json:"email" db:"email"`
	PhoneNumber    sql.NullString `json:"phone_number,omitempty" db:"phone_number"`

	// Reference data
	GenderID     sql.NullInt64 `json:"gender_id,omitempty" db:"gender_id"`
	BloodTypeID  sql.NullInt64 `json:"blood_type_id,omitempty" db:"blood_type_id"`
	ClientGoalID sql.NullInt64 `json:"client_goal_id,omitempty" db:"client_goal_id"`

	// RegistrationDate is a calendar date, stored without a time component.
	RegistrationDate time.Time `json:"registration_date" db:"registration_date"`

	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
	DeletedAt sql.NullTime `json:"-" db:"deleted_at"`
}
