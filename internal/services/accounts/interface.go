package accounts

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/moodmeet/internal/services/accounts Service

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
)

// Service owns user accounts and their credentials
type Service interface {
	// Create registers a new user with a unique username
	Create(ctx context.Context, input *CreateInput) (*models.User, error)

	// Authenticate checks a username and password pair
	Authenticate(ctx context.Context, input *AuthenticateInput) (*models.User, error)

	// Get retrieves a user by ID
	Get(ctx context.Context, input *GetInput) (*models.User, error)

	// GetByUsername retrieves a user by username, ignoring case
	GetByUsername(ctx context.Context, input *GetByUsernameInput) (*models.User, error)

	// List returns every user
	List(ctx context.Context) ([]*models.User, error)

	// UpdateUsername renames a user
	UpdateUsername(ctx context.Context, input *UpdateUsernameInput) (*models.User, error)

	// UpdatePassword replaces the password after checking the current one
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error

	// SetMoodPreference records the mood a user last selected
	SetMoodPreference(ctx context.Context, input *SetMoodPreferenceInput) error

	// Delete removes a user
	Delete(ctx context.Context, input *DeleteInput) error

	// EnsureExternal finds or creates the account linked to a chat identity
	EnsureExternal(ctx context.Context, input *EnsureExternalInput) (*models.User, error)
}
