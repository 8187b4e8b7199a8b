package events

import (
	"time"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

// Config holds configuration for the events service
type Config struct {
	Events store.Collection[models.Event]
}

type CreateInput struct {
	Host        string
	Title       string
	Description string
	Category    string
	MoodTag     string
	Capacity    int
	Location    string
	Date        time.Time
}

type GetInput struct {
	EventID string
}

// ListInput narrows the listing; empty fields do not filter
type ListInput struct {
	Host     string
	Status   models.EventStatus
	Category string

	// MoodTag matches events whose mood-tag set contains it
	MoodTag string

	// Tag matches events whose tag set contains it
	Tag string
}

// UpdateDetailsInput carries the fields to change; nil means unchanged
type UpdateDetailsInput struct {
	EventID     string
	Description *string
	Location    *string
	Capacity    *int
	Category    *string
	MoodTag     *string
}

type SetStatusInput struct {
	EventID string
	Status  models.EventStatus
}

type AttendeeInput struct {
	EventID string
	UserID  string
}

type AddTagInput struct {
	EventID string
	TagID   string

	// IsMood also adds the tag to the mood-tag set
	IsMood bool
}

type MarkAttendanceInput struct {
	EventID string
	UserID  string
}

type MarkAttendanceOutput struct {
	Event *models.Event

	// FirstMark is false when the user's attendance was already recorded
	FirstMark bool
}
