// internal/domain/state/entity.go
package state

import (
	"strings"
	"time"
)

// Well-known lifecycle state names. Classification is by case-insensitive name
// match, not a closed enum: the states table may carry other scopes and names.
const (
	NameActive    = "Active"
	NameInactive  = "Inactive"
	NameSuspended = "Suspended"

	ScopeSubscription = "subscription"
)

type State struct {
	ID    int64  `json:"id" db:"id"`
	Scope string `json:"scope" db:"scope"`
	Name  string `json:"name" db:"name"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Is reports whether the state carries the given name, ignoring case.
func (s State) Is(name string) bool {
	return strings.EqualFold(s.Name, name)
}
