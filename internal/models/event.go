package models

import (
	"time"
)

// EventStatus represents the lifecycle state of an event
type EventStatus string

const (
	// EventStatusUpcoming indicates an event has not started yet
	EventStatusUpcoming EventStatus = "upcoming"

	// EventStatusOngoing indicates an event is in progress
	EventStatusOngoing EventStatus = "ongoing"

	// EventStatusCompleted indicates an event has finished
	EventStatusCompleted EventStatus = "completed"

	// EventStatusCanceled indicates the host canceled the event
	EventStatusCanceled EventStatus = "canceled"
)

// IsTerminal reports whether no further transitions are allowed
func (s EventStatus) IsTerminal() bool {
	return s == EventStatusCompleted || s == EventStatusCanceled
}

// IsValid reports whether s is a known status
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusCompleted, EventStatusCanceled:
		return true
	}
	return false
}

// rank orders the forward-only statuses
func (s EventStatus) rank() int {
	switch s {
	case EventStatusUpcoming:
		return 0
	case EventStatusOngoing:
		return 1
	case EventStatusCompleted:
		return 2
	}
	return -1
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Statuses only move forward; canceled is reachable from any non-terminal state.
func (s EventStatus) CanTransitionTo(next EventStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == EventStatusCanceled {
		return true
	}
	return next.rank() > s.rank()
}

// Event is a hosted gathering users can RSVP to
type Event struct {
	Base

	// Host is the ID of the user who created the event
	Host string `json:"host"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// Category is the ID of the category tag
	Category string `json:"category"`

	// MoodTag is the ID of the mood the host picked at creation
	MoodTag string `json:"moodTag"`

	// Capacity bounds the number of attendees
	Capacity int `json:"capacity"`

	Location string    `json:"location"`
	Date     time.Time `json:"date"`

	// Attendees holds the IDs of users with an active RSVP
	Attendees []string `json:"attendees"`

	// Tags holds every tag attached to the event
	Tags []string `json:"tags"`

	// MoodTags holds the subset of Tags that are registered moods
	MoodTags []string `json:"moodTags"`

	// AttendanceMarked holds the IDs of users whose attendance was recorded
	AttendanceMarked []string `json:"attendanceMarked"`

	Status EventStatus `json:"status"`
}

// IsHost reports whether the user created the event
func (e *Event) IsHost(userID string) bool {
	return e.Host == userID
}

// IsFull reports whether the attendee list has reached capacity
func (e *Event) IsFull() bool {
	return len(e.Attendees) >= e.Capacity
}

// HasAttendee reports whether the user is on the attendee list
func (e *Event) HasAttendee(userID string) bool {
	return Contains(e.Attendees, userID)
}

// HasMoodTag reports whether the mood is in the event's mood-tag set
func (e *Event) HasMoodTag(moodID string) bool {
	return Contains(e.MoodTags, moodID)
}

// EventDetails is the read projection returned by an event lookup
type EventDetails struct {
	ID          string      `json:"id"`
	Host        string      `json:"host"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	Category    string      `json:"category"`
	MoodTag     string      `json:"moodTag"`
	Date        time.Time   `json:"date"`
	Capacity    int         `json:"capacity"`
	Count       int         `json:"count"`
	Status      EventStatus `json:"status"`
}

// Details builds the lookup projection, with Count computed from attendees
func (e *Event) Details() *EventDetails {
	return &EventDetails{
		ID:          e.ID,
		Host:        e.Host,
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Category:    e.Category,
		MoodTag:     e.MoodTag,
		Date:        e.Date,
		Capacity:    e.Capacity,
		Count:       len(e.Attendees),
		Status:      e.Status,
	}
}

// Contains reports whether id is in ids
func Contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
