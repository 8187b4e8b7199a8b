package orchestrator

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/events"
	"go.opentelemetry.io/otel/attribute"
)

// CreateEvent creates an event hosted by the caller
func (s *service) CreateEvent(ctx context.Context, input *CreateEventInput) (_ *models.Event, err error) {
	ctx, end := s.start(ctx, "CreateEvent")
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	event, err := s.events.Create(ctx, &events.CreateInput{
		Host:        userID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		MoodTag:     input.MoodTag,
		Capacity:    input.Capacity,
		Location:    input.Location,
		Date:        input.Date,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.ActivityCreateEvent, userID, event.ID, "")
	return event, nil
}

// ListEvents returns events matching the filter
func (s *service) ListEvents(ctx context.Context, input *ListEventsInput) (_ []*models.Event, err error) {
	ctx, end := s.start(ctx, "ListEvents")
	defer end(&err)

	if input == nil {
		input = &ListEventsInput{}
	}

	return s.events.List(ctx, &events.ListInput{
		Host:     input.Host,
		Status:   input.Status,
		Category: input.Category,
		MoodTag:  input.MoodTag,
		Tag:      input.Tag,
	})
}

// LookupEventDetails returns an event with its attendee count
func (s *service) LookupEventDetails(ctx context.Context, input *LookupEventDetailsInput) (_ *models.EventDetails, err error) {
	ctx, end := s.start(ctx, "LookupEventDetails", attribute.String("event_id", input.EventID))
	defer end(&err)

	event, err := s.events.Get(ctx, &events.GetInput{EventID: input.EventID})
	if err != nil {
		return nil, err
	}

	return event.Details(), nil
}

// UpdateEventDetails changes host-editable fields. It holds the event lock
// so a capacity change cannot interleave with an RSVP.
func (s *service) UpdateEventDetails(ctx context.Context, input *UpdateEventDetailsInput) (_ *models.Event, err error) {
	ctx, end := s.start(ctx, "UpdateEventDetails", attribute.String("event_id", input.EventID))
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	if _, err := s.hostedEvent(ctx, userID, input.EventID); err != nil {
		return nil, err
	}

	unlock, err := s.lockEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	event, err := s.events.UpdateDetails(ctx, &events.UpdateDetailsInput{
		EventID:     input.EventID,
		Description: input.Description,
		Location:    input.Location,
		Capacity:    input.Capacity,
		Category:    input.Category,
		MoodTag:     input.MoodTag,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.ActivityUpdateEvent, userID, event.ID, "")
	return event, nil
}

// CancelEvent cancels an event. Canceling it again succeeds without change.
func (s *service) CancelEvent(ctx context.Context, input *EventActionInput) (_ *models.Event, err error) {
	ctx, end := s.start(ctx, "CancelEvent", attribute.String("event_id", input.EventID))
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	return s.cancel(ctx, userID, input.EventID)
}

func (s *service) cancel(ctx context.Context, userID, eventID string) (*models.Event, error) {
	current, err := s.hostedEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	event, err := s.events.SetStatus(ctx, &events.SetStatusInput{
		EventID: eventID,
		Status:  models.EventStatusCanceled,
	})
	if err != nil {
		return nil, err
	}

	if current.Status != models.EventStatusCanceled {
		s.publish(ctx, models.ActivityCancelEvent, userID, eventID, "")
	}
	return event, nil
}

// AdvanceEventStatus moves an event forward. Asking for canceled cancels it.
func (s *service) AdvanceEventStatus(ctx context.Context, input *AdvanceEventStatusInput) (_ *models.Event, err error) {
	ctx, end := s.start(ctx, "AdvanceEventStatus",
		attribute.String("event_id", input.EventID),
		attribute.String("status", string(input.Status)),
	)
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	if input.Status == models.EventStatusCanceled {
		return s.cancel(ctx, userID, input.EventID)
	}

	if _, err := s.hostedEvent(ctx, userID, input.EventID); err != nil {
		return nil, err
	}

	event, err := s.events.SetStatus(ctx, &events.SetStatusInput{
		EventID: input.EventID,
		Status:  input.Status,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.ActivityAdvanceEvent, userID, event.ID, string(event.Status))
	return event, nil
}
