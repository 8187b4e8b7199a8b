package orchestrator

import (
	"context"
	"errors"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/events"
	"github.com/KirkDiggler/moodmeet/internal/services/rsvps"
	"go.opentelemetry.io/otel/attribute"
)

// RSVP reserves a seat for the caller. Checks run in a fixed order so the
// error is stable: missing event, canceled, full, then duplicate.
func (s *service) RSVP(ctx context.Context, input *EventActionInput) (_ *models.RSVP, err error) {
	ctx, end := s.start(ctx, "RSVP", attribute.String("event_id", input.EventID))
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	unlock, err := s.lockEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	event, err := s.events.Get(ctx, &events.GetInput{EventID: input.EventID})
	if err != nil {
		return nil, err
	}
	if event.Status == models.EventStatusCanceled {
		return nil, events.ErrEventCanceled
	}
	if event.IsFull() {
		return nil, events.ErrEventFull
	}

	pair := &rsvps.PairInput{UserID: userID, EventID: input.EventID}
	_, err = s.rsvps.GetActive(ctx, pair)
	if err == nil {
		return nil, rsvps.ErrAlreadyRSVPd
	}
	if !errors.Is(err, rsvps.ErrRSVPNotFound) {
		return nil, err
	}

	// AddAttendee re-checks status and capacity against the stored event
	if _, err := s.events.AddAttendee(ctx, &events.AttendeeInput{
		EventID: input.EventID,
		UserID:  userID,
	}); err != nil {
		return nil, err
	}

	rsvp, err := s.rsvps.Activate(ctx, pair)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.ActivityRSVP, userID, input.EventID, rsvp.ID)
	return rsvp, nil
}

// CancelRSVP gives the caller's seat back. Canceling without an active
// RSVP fails with not found, also on a second cancel.
func (s *service) CancelRSVP(ctx context.Context, input *EventActionInput) (_ *models.RSVP, err error) {
	ctx, end := s.start(ctx, "CancelRSVP", attribute.String("event_id", input.EventID))
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	unlock, err := s.lockEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	pair := &rsvps.PairInput{UserID: userID, EventID: input.EventID}
	if _, err := s.rsvps.GetActive(ctx, pair); err != nil {
		return nil, err
	}

	if _, err := s.events.RemoveAttendee(ctx, &events.AttendeeInput{
		EventID: input.EventID,
		UserID:  userID,
	}); err != nil {
		return nil, err
	}

	rsvp, err := s.rsvps.Deactivate(ctx, pair)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.ActivityCancelRSVP, userID, input.EventID, rsvp.ID)
	return rsvp, nil
}

// GetRSVP returns a single RSVP record
func (s *service) GetRSVP(ctx context.Context, input *GetRSVPInput) (_ *models.RSVP, err error) {
	ctx, end := s.start(ctx, "GetRSVP")
	defer end(&err)

	if input == nil {
		input = &GetRSVPInput{}
	}

	return s.rsvps.Get(ctx, &rsvps.GetInput{ID: input.RSVPID})
}

// ListRSVPs returns RSVP records matching the filter
func (s *service) ListRSVPs(ctx context.Context, input *ListRSVPsInput) (_ []*models.RSVP, err error) {
	ctx, end := s.start(ctx, "ListRSVPs")
	defer end(&err)

	if input == nil {
		input = &ListRSVPsInput{}
	}

	return s.rsvps.List(ctx, &rsvps.ListInput{
		UserID:     input.UserID,
		EventID:    input.EventID,
		ActiveOnly: input.ActiveOnly,
	})
}
