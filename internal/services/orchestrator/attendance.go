package orchestrator

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/events"
	"github.com/KirkDiggler/moodmeet/internal/services/streaks"
	"go.opentelemetry.io/otel/attribute"
)

// MarkAttendance records whether an attendee showed up and moves their
// streak. Each (event, user) pair drives the streak at most once; later
// marks return the current streak unchanged.
func (s *service) MarkAttendance(ctx context.Context, input *MarkAttendanceInput) (_ *MarkAttendanceOutput, err error) {
	ctx, end := s.start(ctx, "MarkAttendance",
		attribute.String("event_id", input.EventID),
		attribute.String("attendee_id", input.UserID),
		attribute.Bool("attended", input.Attended),
	)
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	event, err := s.hostedEvent(ctx, userID, input.EventID)
	if err != nil {
		return nil, err
	}
	if !event.HasAttendee(input.UserID) {
		return nil, ErrNotAttendee
	}

	marked, err := s.events.MarkAttendance(ctx, &events.MarkAttendanceInput{
		EventID: input.EventID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, err
	}

	if !marked.FirstMark {
		streak, err := s.streaks.Get(ctx, &streaks.GetInput{UserID: input.UserID})
		if err != nil {
			return nil, err
		}
		return &MarkAttendanceOutput{Streak: streak}, nil
	}

	var streak *models.Streak
	if input.Attended {
		when := event.Date
		if when.IsZero() {
			when = s.clock.Now()
		}
		streak, err = s.streaks.AttendEvent(ctx, &streaks.AttendEventInput{
			UserID: input.UserID,
			When:   when,
		})
	} else {
		streak, err = s.streaks.MissedEvent(ctx, &streaks.MissedEventInput{UserID: input.UserID})
	}
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.ActivityStreak, input.UserID, input.EventID, "")
	return &MarkAttendanceOutput{
		Streak:   streak,
		Recorded: true,
	}, nil
}

// GetStreak returns a user's attendance streak
func (s *service) GetStreak(ctx context.Context, input *GetStreakInput) (_ *models.Streak, err error) {
	ctx, end := s.start(ctx, "GetStreak")
	defer end(&err)

	return s.streaks.Get(ctx, &streaks.GetInput{UserID: input.UserID})
}
