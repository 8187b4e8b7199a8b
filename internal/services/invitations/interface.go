package invitations

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/moodmeet/internal/services/invitations Service

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
)

// Service owns invitations from one user to another to join an event
type Service interface {
	// Create sends a pending invitation
	Create(ctx context.Context, input *CreateInput) (*models.Invitation, error)

	// Get retrieves an invitation by ID
	Get(ctx context.Context, input *GetInput) (*models.Invitation, error)

	// List returns invitations matching the input, oldest first
	List(ctx context.Context, input *ListInput) ([]*models.Invitation, error)

	// SetStatus records the recipient's answer
	SetStatus(ctx context.Context, input *SetStatusInput) (*models.Invitation, error)
}
