package accounts

import (
	"github.com/KirkDiggler/moodmeet/internal/common/uuid"
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

// Config holds configuration for the accounts service
type Config struct {
	// Users stores the account documents
	Users store.Collection[models.User]

	// UUIDGenerator produces throwaway passwords for chat accounts
	UUIDGenerator uuid.Generator

	// BcryptCost is the hashing cost, bcrypt.DefaultCost when zero
	BcryptCost int
}

type CreateInput struct {
	Username string
	Password string
}

type AuthenticateInput struct {
	Username string
	Password string
}

type GetInput struct {
	UserID string
}

type GetByUsernameInput struct {
	Username string
}

type UpdateUsernameInput struct {
	UserID   string
	Username string
}

type UpdatePasswordInput struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
}

type SetMoodPreferenceInput struct {
	UserID string
	MoodID string
}

type DeleteInput struct {
	UserID string
}

type EnsureExternalInput struct {
	// Provider names the chat platform, such as "discord"
	Provider string

	// ExternalID is the user's ID on that platform
	ExternalID string

	// Username is the preferred username for a new account
	Username string
}
