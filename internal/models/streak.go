package models

import (
	"time"
)

// Streak tracks consecutive attendance for a user
type Streak struct {
	Base

	// UserID is the owner of the streak
	UserID string `json:"userId"`

	// Count is the current number of consecutive attendances
	Count int `json:"count"`

	// LastAttended is when the user last attended, nil if never
	LastAttended *time.Time `json:"lastAttended,omitempty"`
}
