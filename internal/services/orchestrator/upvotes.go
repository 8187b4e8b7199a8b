package orchestrator

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/events"
	"github.com/KirkDiggler/moodmeet/internal/services/upvotes"
	"go.opentelemetry.io/otel/attribute"
)

// Upvote records the caller's upvote once; a second one is a conflict
func (s *service) Upvote(ctx context.Context, input *EventActionInput) (_ *models.Upvote, err error) {
	ctx, end := s.start(ctx, "Upvote", attribute.String("event_id", input.EventID))
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	if _, err := s.events.Get(ctx, &events.GetInput{EventID: input.EventID}); err != nil {
		return nil, err
	}

	upvote, err := s.upvotes.Add(ctx, &upvotes.PairInput{
		UserID:  userID,
		EventID: input.EventID,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.ActivityUpvote, userID, input.EventID, "")
	return upvote, nil
}

// RemoveUpvote withdraws the caller's upvote
func (s *service) RemoveUpvote(ctx context.Context, input *EventActionInput) (err error) {
	ctx, end := s.start(ctx, "RemoveUpvote", attribute.String("event_id", input.EventID))
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return err
	}

	if err := s.upvotes.Remove(ctx, &upvotes.PairInput{
		UserID:  userID,
		EventID: input.EventID,
	}); err != nil {
		return err
	}

	s.publish(ctx, models.ActivityRemoveUpvote, userID, input.EventID, "")
	return nil
}

// CountUpvotes returns how many users upvoted an event
func (s *service) CountUpvotes(ctx context.Context, input *CountUpvotesInput) (_ int, err error) {
	ctx, end := s.start(ctx, "CountUpvotes", attribute.String("event_id", input.EventID))
	defer end(&err)

	return s.upvotes.Count(ctx, &upvotes.CountInput{EventID: input.EventID})
}
