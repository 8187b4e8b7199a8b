package sessions

import (
	"github.com/KirkDiggler/moodmeet/internal/common/uuid"
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

// Config holds configuration for the sessions service
type Config struct {
	Sessions store.Collection[models.Session]

	// UUIDGenerator produces session tokens
	UUIDGenerator uuid.Generator
}

type StartInput struct {
	UserID string
}

type EndInput struct {
	Token string
}

type GetUserInput struct {
	Token string
}

type AssertLoggedOutInput struct {
	Token string
}

type EndAllForUserInput struct {
	UserID string
}
