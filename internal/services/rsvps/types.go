package rsvps

import (
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

// Config holds configuration for the rsvps service
type Config struct {
	RSVPs store.Collection[models.RSVP]
}

type GetInput struct {
	ID string
}

// PairInput names a (user, event) pair
type PairInput struct {
	UserID  string
	EventID string
}

// ListInput narrows the listing; empty fields do not filter
type ListInput struct {
	UserID     string
	EventID    string
	ActiveOnly bool
}
