package models

// RSVP records a user's reservation for an event
type RSVP struct {
	Base

	// User is the ID of the user who RSVP'd
	User string `json:"user"`

	// Event is the ID of the event
	Event string `json:"event"`

	// Status is true while the RSVP is active
	Status bool `json:"status"`
}
