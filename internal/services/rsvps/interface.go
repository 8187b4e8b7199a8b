package rsvps

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/moodmeet/internal/services/rsvps Service

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
)

// Service owns RSVP records. A (user, event) pair keeps a single record
// whose status flips between active and inactive.
type Service interface {
	// Get returns a record by ID whatever its status
	Get(ctx context.Context, input *GetInput) (*models.RSVP, error)

	// GetActive returns the active RSVP for a pair
	GetActive(ctx context.Context, input *PairInput) (*models.RSVP, error)

	// Activate creates the pair's record or flips it back to active
	Activate(ctx context.Context, input *PairInput) (*models.RSVP, error)

	// Deactivate flips the pair's active record to inactive
	Deactivate(ctx context.Context, input *PairInput) (*models.RSVP, error)

	// List returns records matching the input, oldest first
	List(ctx context.Context, input *ListInput) ([]*models.RSVP, error)
}
