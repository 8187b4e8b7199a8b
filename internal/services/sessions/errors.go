package sessions

import "github.com/KirkDiggler/moodmeet/internal/common/apperrors"

// SessionsError is returned for invalid service configuration
type SessionsError string

// Error implements the error interface
func (e SessionsError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        SessionsError = "config cannot be nil"
	ErrNilSessions      SessionsError = "sessions collection cannot be nil"
	ErrNilUUIDGenerator SessionsError = "UUID generator cannot be nil"
)

var (
	ErrNotLoggedIn      = apperrors.Unauthenticated("must be logged in")
	ErrAlreadyLoggedIn  = apperrors.Conflict("already logged in")
	ErrAlreadyLoggedOut = apperrors.Conflict("already logged out")
)
