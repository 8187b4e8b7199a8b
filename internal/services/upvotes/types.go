package upvotes

import (
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

// Config holds configuration for the upvotes service
type Config struct {
	Upvotes store.Collection[models.Upvote]
}

// PairInput names a (user, event) pair
type PairInput struct {
	UserID  string
	EventID string
}

type CountInput struct {
	EventID string
}
