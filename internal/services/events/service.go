package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

// maxCASRetries bounds how often a write is retried after losing a race
const maxCASRetries = 8

type service struct {
	events store.Collection[models.Event]
}

// New creates a new events service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Events == nil {
		return nil, ErrNilEvents
	}

	return &service{
		events: cfg.Events,
	}, nil
}

// Create creates an upcoming event
func (s *service) Create(ctx context.Context, input *CreateInput) (*models.Event, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Capacity < 0 {
		return nil, ErrInvalidCapacity
	}

	event := &models.Event{
		Host:             input.Host,
		Title:            input.Title,
		Description:      input.Description,
		Category:         input.Category,
		MoodTag:          input.MoodTag,
		Capacity:         input.Capacity,
		Location:         input.Location,
		Date:             input.Date,
		Attendees:        []string{},
		Tags:             []string{},
		MoodTags:         []string{},
		AttendanceMarked: []string{},
		Status:           models.EventStatusUpcoming,
	}

	// the creation-time category and mood count as the first tags
	if input.Category != "" {
		event.Tags = append(event.Tags, input.Category)
	}
	if input.MoodTag != "" {
		event.MoodTags = append(event.MoodTags, input.MoodTag)
	}

	if _, err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

// Get retrieves an event by ID
func (s *service) Get(ctx context.Context, input *GetInput) (*models.Event, error) {
	if input == nil || input.EventID == "" {
		return nil, ErrEventNotFound
	}

	event, err := s.events.ReadOne(ctx, store.ByID(input.EventID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// List returns events matching the input
func (s *service) List(ctx context.Context, input *ListInput) ([]*models.Event, error) {
	filter := store.Filter{}
	if input != nil {
		if input.Host != "" {
			filter["host"] = input.Host
		}
		if input.Status != "" {
			filter["status"] = input.Status
		}
		if input.Category != "" {
			filter["category"] = input.Category
		}
		if input.MoodTag != "" {
			filter["moodTags"] = input.MoodTag
		}
		if input.Tag != "" {
			filter["tags"] = input.Tag
		}
	}

	events, err := s.events.ReadMany(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

// UpdateDetails changes the host-editable fields of an event
func (s *service) UpdateDetails(ctx context.Context, input *UpdateDetailsInput) (*models.Event, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Description == nil && input.Location == nil && input.Capacity == nil &&
		input.Category == nil && input.MoodTag == nil {
		return nil, ErrNothingToUpdate
	}

	if input.Capacity != nil && *input.Capacity < 0 {
		return nil, ErrInvalidCapacity
	}

	return s.mutate(ctx, input.EventID, func(event *models.Event) (store.Patch, error) {
		patch := store.Patch{}
		if input.Description != nil {
			patch["description"] = *input.Description
		}
		if input.Location != nil {
			patch["location"] = *input.Location
		}
		if input.Capacity != nil {
			if *input.Capacity < len(event.Attendees) {
				return nil, ErrCapacityBelowAttendance
			}
			patch["capacity"] = *input.Capacity
		}
		if input.Category != nil {
			patch["category"] = *input.Category
			if *input.Category != "" && !models.Contains(event.Tags, *input.Category) {
				patch["tags"] = append(event.Tags, *input.Category)
			}
		}
		if input.MoodTag != nil {
			patch["moodTag"] = *input.MoodTag
			if *input.MoodTag != "" && !event.HasMoodTag(*input.MoodTag) {
				patch["moodTags"] = append(event.MoodTags, *input.MoodTag)
			}
		}
		return patch, nil
	})
}

// SetStatus moves an event along its lifecycle. Canceling a canceled event
// is a no-op.
func (s *service) SetStatus(ctx context.Context, input *SetStatusInput) (*models.Event, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	return s.mutate(ctx, input.EventID, func(event *models.Event) (store.Patch, error) {
		if event.Status == models.EventStatusCanceled && input.Status == models.EventStatusCanceled {
			return nil, nil
		}
		if !event.Status.CanTransitionTo(input.Status) {
			return nil, ErrInvalidTransition
		}
		return store.Patch{"status": input.Status}, nil
	})
}

// AddAttendee puts a user on the attendee list if the event is open and
// has room. Adding a user who is already attending changes nothing.
func (s *service) AddAttendee(ctx context.Context, input *AttendeeInput) (*models.Event, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	return s.mutate(ctx, input.EventID, func(event *models.Event) (store.Patch, error) {
		if event.Status == models.EventStatusCanceled {
			return nil, ErrEventCanceled
		}
		if event.IsFull() {
			return nil, ErrEventFull
		}
		if event.HasAttendee(input.UserID) {
			return nil, nil
		}
		return store.Patch{"attendees": append(event.Attendees, input.UserID)}, nil
	})
}

// RemoveAttendee takes a user off the attendee list
func (s *service) RemoveAttendee(ctx context.Context, input *AttendeeInput) (*models.Event, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.mutate(ctx, input.EventID, func(event *models.Event) (store.Patch, error) {
		if !event.HasAttendee(input.UserID) {
			return nil, nil
		}
		return store.Patch{"attendees": without(event.Attendees, input.UserID)}, nil
	})
}

// AddTag attaches a tag to the event
func (s *service) AddTag(ctx context.Context, input *AddTagInput) (*models.Event, error) {
	if input == nil || input.TagID == "" {
		return nil, errors.New("tag ID cannot be empty")
	}

	return s.mutate(ctx, input.EventID, func(event *models.Event) (store.Patch, error) {
		patch := store.Patch{}
		if !models.Contains(event.Tags, input.TagID) {
			patch["tags"] = append(event.Tags, input.TagID)
		}
		if input.IsMood && !event.HasMoodTag(input.TagID) {
			patch["moodTags"] = append(event.MoodTags, input.TagID)
		}
		if len(patch) == 0 {
			return nil, nil
		}
		return patch, nil
	})
}

// MarkAttendance records that a user's attendance was handled, at most once
func (s *service) MarkAttendance(ctx context.Context, input *MarkAttendanceInput) (*MarkAttendanceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	first := false
	event, err := s.mutate(ctx, input.EventID, func(event *models.Event) (store.Patch, error) {
		first = false
		if models.Contains(event.AttendanceMarked, input.UserID) {
			return nil, nil
		}
		first = true
		return store.Patch{"attendanceMarked": append(event.AttendanceMarked, input.UserID)}, nil
	})
	if err != nil {
		return nil, err
	}

	return &MarkAttendanceOutput{
		Event:     event,
		FirstMark: first,
	}, nil
}

// mutate reads the event, asks fn for a patch, and writes it only if the
// event has not changed since the read. A nil patch returns the event as is.
func (s *service) mutate(ctx context.Context, eventID string, fn func(event *models.Event) (store.Patch, error)) (*models.Event, error) {
	for attempt := 0; attempt < maxCASRetries; attempt++ {
		event, err := s.Get(ctx, &GetInput{EventID: eventID})
		if err != nil {
			return nil, err
		}

		patch, err := fn(event)
		if err != nil {
			return nil, err
		}
		if patch == nil {
			return event, nil
		}

		n, err := s.events.PartialUpdate(ctx, store.Filter{
			"id":        event.ID,
			"updatedAt": event.UpdatedAt,
		}, patch)
		if err != nil {
			return nil, fmt.Errorf("failed to update event: %w", err)
		}
		if n == 1 {
			return s.Get(ctx, &GetInput{EventID: eventID})
		}
	}

	return nil, ErrEventBusy
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
