package sessions

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/moodmeet/internal/services/sessions Service

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
)

// Service binds session tokens to users
type Service interface {
	// Start opens a session for a user and returns it; its ID is the token
	Start(ctx context.Context, input *StartInput) (*models.Session, error)

	// End closes the session behind a token
	End(ctx context.Context, input *EndInput) error

	// GetUser resolves a token to the ID of its user
	GetUser(ctx context.Context, input *GetUserInput) (string, error)

	// AssertLoggedOut fails when the token belongs to an open session
	AssertLoggedOut(ctx context.Context, input *AssertLoggedOutInput) error

	// EndAllForUser closes every session of a user
	EndAllForUser(ctx context.Context, input *EndAllForUserInput) (int, error)
}
