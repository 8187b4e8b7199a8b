package invitations

import (
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

// Config holds configuration for the invitations service
type Config struct {
	Invitations store.Collection[models.Invitation]

	// Strict makes accepted and rejected final. Otherwise an answer can be
	// overwritten by a later one.
	Strict bool
}

type CreateInput struct {
	From    string
	To      string
	EventID string
}

type GetInput struct {
	InvitationID string
}

// ListInput narrows the listing; empty fields do not filter
type ListInput struct {
	To      string
	From    string
	EventID string
	Status  models.InvitationStatus
}

type SetStatusInput struct {
	InvitationID string
	Status       models.InvitationStatus
}
