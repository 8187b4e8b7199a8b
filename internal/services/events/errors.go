package events

import "github.com/KirkDiggler/moodmeet/internal/common/apperrors"

// EventsError is returned for invalid service configuration
type EventsError string

// Error implements the error interface
func (e EventsError) Error() string {
	return string(e)
}

const (
	ErrNilConfig EventsError = "config cannot be nil"
	ErrNilEvents EventsError = "events collection cannot be nil"
)

var (
	ErrEventNotFound           = apperrors.NotFound("event not found")
	ErrEventCanceled           = apperrors.Conflict("event canceled")
	ErrEventFull               = apperrors.Conflict("event is full")
	ErrEventBusy               = apperrors.Conflict("event is being changed, try again")
	ErrInvalidTransition       = apperrors.Conflict("event status cannot change that way")
	ErrCapacityBelowAttendance = apperrors.Conflict("capacity cannot be lower than the number of attendees")
	ErrInvalidCapacity         = apperrors.Invalid("capacity must be a non-negative integer")
	ErrInvalidStatus           = apperrors.Invalid("unknown event status")
	ErrNothingToUpdate         = apperrors.Invalid("no event details to update")
)
