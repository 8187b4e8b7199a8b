package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/moodmeet/internal/common/uuid Generator

// Generator produces document identities and session tokens
type Generator interface {
	NewID() string
}

// Random generates version 4 UUIDs
type Random struct{}

// New returns a random UUID generator
func New() *Random {
	return &Random{}
}

// NewID returns a new random UUID string
func (r *Random) NewID() string {
	return uuid.NewString()
}
