package rsvps

import "github.com/KirkDiggler/moodmeet/internal/common/apperrors"

// RSVPError is returned for invalid service configuration
type RSVPError string

// Error implements the error interface
func (e RSVPError) Error() string {
	return string(e)
}

const (
	ErrNilConfig RSVPError = "config cannot be nil"
	ErrNilRSVPs  RSVPError = "rsvps collection cannot be nil"
)

var (
	ErrRSVPNotFound = apperrors.NotFound("rsvp not found")
	ErrAlreadyRSVPd = apperrors.Conflict("already rsvp'd")
)
