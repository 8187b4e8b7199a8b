package invitations

import "github.com/KirkDiggler/moodmeet/internal/common/apperrors"

// InvitationError is returned for invalid service configuration
type InvitationError string

// Error implements the error interface
func (e InvitationError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      InvitationError = "config cannot be nil"
	ErrNilInvitations InvitationError = "invitations collection cannot be nil"
)

var (
	ErrInvitationNotFound = apperrors.NotFound("invitation not found")
	ErrInvitationAnswered = apperrors.Conflict("invitation was already answered")
	ErrInvalidStatus      = apperrors.Invalid("invitation status must be accepted or rejected")
	ErrSelfInvitation     = apperrors.Invalid("cannot invite yourself")
	ErrMissingParticipant = apperrors.Invalid("sender, recipient and event are required")
)
