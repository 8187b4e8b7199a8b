package models

import (
	"time"
)

// Base holds the fields every stored document carries
type Base struct {
	// ID is the unique identifier of the document, assigned on creation
	ID string `json:"id"`

	// CreatedAt is when the document was created
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the document was last written
	UpdatedAt time.Time `json:"updatedAt"`
}

// Doc returns the base fields so stores can stamp identity and timestamps
func (b *Base) Doc() *Base {
	return b
}
