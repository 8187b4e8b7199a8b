package orchestrator

import (
	"context"
	"errors"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/accounts"
	"github.com/KirkDiggler/moodmeet/internal/services/events"
	"github.com/KirkDiggler/moodmeet/internal/services/tagging"
	"go.opentelemetry.io/otel/attribute"
)

func (s *service) ListMoods(ctx context.Context) (_ []*models.Mood, err error) {
	ctx, end := s.start(ctx, "ListMoods")
	defer end(&err)

	return s.tagging.ListMoods(ctx)
}

func (s *service) ListCategories(ctx context.Context) (_ []*models.Category, err error) {
	ctx, end := s.start(ctx, "ListCategories")
	defer end(&err)

	return s.tagging.ListCategories(ctx)
}

func (s *service) ListTags(ctx context.Context) (_ []*models.Tag, err error) {
	ctx, end := s.start(ctx, "ListTags")
	defer end(&err)

	return s.tagging.ListTags(ctx)
}

// CreateTag adds a free-form tag
func (s *service) CreateTag(ctx context.Context, input *CreateTagInput) (_ *models.Tag, err error) {
	ctx, end := s.start(ctx, "CreateTag")
	defer end(&err)

	if _, err := s.caller(ctx, input.Token); err != nil {
		return nil, err
	}

	return s.tagging.CreateTag(ctx, &tagging.CreateTagInput{Name: input.Name})
}

// TagEvent attaches a tag to an event. A tag that is also a mood goes in
// the mood-tag set too, so it shows up in mood recommendations.
func (s *service) TagEvent(ctx context.Context, input *TagEventInput) (_ *models.Event, err error) {
	ctx, end := s.start(ctx, "TagEvent",
		attribute.String("event_id", input.EventID),
		attribute.String("tag_id", input.TagID),
	)
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	if _, err := s.events.Get(ctx, &events.GetInput{EventID: input.EventID}); err != nil {
		return nil, err
	}

	if _, err := s.tagging.GetTag(ctx, &tagging.GetTagInput{TagID: input.TagID}); err != nil {
		return nil, err
	}

	isMood, err := s.tagging.IsMood(ctx, input.TagID)
	if err != nil {
		return nil, err
	}

	event, err := s.events.AddTag(ctx, &events.AddTagInput{
		EventID: input.EventID,
		TagID:   input.TagID,
		IsMood:  isMood,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.ActivityTagEvent, userID, event.ID, input.TagID)
	return event, nil
}

// SelectMood makes a mood the caller's current one and mirrors it onto
// the account's mood preference
func (s *service) SelectMood(ctx context.Context, input *SelectMoodInput) (_ *models.UserMood, err error) {
	ctx, end := s.start(ctx, "SelectMood", attribute.String("mood_id", input.MoodID))
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	selection, err := s.tagging.SelectMood(ctx, &tagging.SelectMoodInput{
		UserID: userID,
		MoodID: input.MoodID,
	})
	if err != nil {
		return nil, err
	}

	err = s.accounts.SetMoodPreference(ctx, &accounts.SetMoodPreferenceInput{
		UserID: userID,
		MoodID: input.MoodID,
	})
	if err != nil && !errors.Is(err, accounts.ErrUserNotFound) {
		return nil, err
	}

	s.publish(ctx, models.ActivitySelectMood, userID, "", input.MoodID)
	return selection, nil
}

// RecommendEvents returns the events tagged with the caller's mood. When
// none are, every event is returned so the caller never sees an empty list
// for lack of matches.
func (s *service) RecommendEvents(ctx context.Context, input *SessionInput) (_ *RecommendEventsOutput, err error) {
	ctx, end := s.start(ctx, "RecommendEvents")
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	selection, err := s.tagging.GetUserMood(ctx, &tagging.GetUserMoodInput{UserID: userID})
	if err != nil {
		return nil, err
	}

	matching, err := s.events.List(ctx, &events.ListInput{MoodTag: selection.Mood})
	if err != nil {
		return nil, err
	}
	if len(matching) > 0 {
		return &RecommendEventsOutput{
			Mood:   selection.Mood,
			Events: matching,
		}, nil
	}

	all, err := s.events.List(ctx, &events.ListInput{})
	if err != nil {
		return nil, err
	}

	return &RecommendEventsOutput{
		Mood:     selection.Mood,
		Events:   all,
		Fallback: true,
	}, nil
}

// SyncMoodWithEvent reports whether an event carries the caller's mood,
// and offers the events that do when it does not
func (s *service) SyncMoodWithEvent(ctx context.Context, input *EventActionInput) (_ *SyncMoodOutput, err error) {
	ctx, end := s.start(ctx, "SyncMoodWithEvent", attribute.String("event_id", input.EventID))
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	selection, err := s.tagging.GetUserMood(ctx, &tagging.GetUserMoodInput{UserID: userID})
	if err != nil {
		return nil, err
	}

	event, err := s.events.Get(ctx, &events.GetInput{EventID: input.EventID})
	if err != nil {
		return nil, err
	}

	if event.HasMoodTag(selection.Mood) {
		return &SyncMoodOutput{Synced: true}, nil
	}

	alternatives, err := s.events.List(ctx, &events.ListInput{MoodTag: selection.Mood})
	if err != nil {
		return nil, err
	}

	return &SyncMoodOutput{Alternatives: alternatives}, nil
}
