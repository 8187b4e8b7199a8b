package upvotes

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/moodmeet/internal/services/upvotes Service

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
)

// Service records which users upvoted which events
type Service interface {
	// Add upvotes an event once per user
	Add(ctx context.Context, input *PairInput) (*models.Upvote, error)

	// Remove withdraws a user's upvote
	Remove(ctx context.Context, input *PairInput) error

	// Count returns how many users upvoted an event
	Count(ctx context.Context, input *CountInput) (int, error)

	// Has reports whether the user upvoted the event
	Has(ctx context.Context, input *PairInput) (bool, error)
}
