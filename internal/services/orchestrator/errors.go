package orchestrator

import "github.com/KirkDiggler/moodmeet/internal/common/apperrors"

// OrchestratorError is returned for invalid service configuration
type OrchestratorError string

// Error implements the error interface
func (e OrchestratorError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      OrchestratorError = "config cannot be nil"
	ErrNilAccounts    OrchestratorError = "accounts service cannot be nil"
	ErrNilSessions    OrchestratorError = "sessions service cannot be nil"
	ErrNilEvents      OrchestratorError = "events service cannot be nil"
	ErrNilRSVPs       OrchestratorError = "rsvps service cannot be nil"
	ErrNilTagging     OrchestratorError = "tagging service cannot be nil"
	ErrNilStreaks     OrchestratorError = "streaks service cannot be nil"
	ErrNilUpvotes     OrchestratorError = "upvotes service cannot be nil"
	ErrNilInvitations OrchestratorError = "invitations service cannot be nil"
	ErrNilPosts       OrchestratorError = "posts service cannot be nil"
	ErrNilClock       OrchestratorError = "clock cannot be nil"
)

var (
	ErrNotHost      = apperrors.Forbidden("only the host can do that")
	ErrNotRecipient = apperrors.Forbidden("only the invited user can answer an invitation")
	ErrNotAttendee  = apperrors.Conflict("user is not attending this event")
)
