package streaks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

const defaultPeriod = 24 * time.Hour

type service struct {
	streaks store.Collection[models.Streak]
	period  time.Duration
}

// New creates a new streaks service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Streaks == nil {
		return nil, ErrNilStreaks
	}

	period := cfg.Period
	if period == 0 {
		period = defaultPeriod
	}
	if period < 0 {
		return nil, ErrInvalidPeriod
	}

	return &service{
		streaks: cfg.Streaks,
		period:  period,
	}, nil
}

// Get returns the user's streak
func (s *service) Get(ctx context.Context, input *GetInput) (*models.Streak, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	streak, err := s.streaks.ReadOne(ctx, store.ByID(input.UserID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &models.Streak{UserID: input.UserID}, nil
		}
		return nil, fmt.Errorf("failed to get streak: %w", err)
	}

	return streak, nil
}

// periodsBetween counts whole periods between the windows holding a and b
func (s *service) periodsBetween(a, b time.Time) int64 {
	return int64(b.UTC().Truncate(s.period).Sub(a.UTC().Truncate(s.period)) / s.period)
}

// AttendEvent extends the streak when the previous attendance falls in the
// same or the previous period, and restarts it at 1 otherwise. Attendance
// dated in a period before the last attended one leaves the streak as is.
func (s *service) AttendEvent(ctx context.Context, input *AttendEventInput) (*models.Streak, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	streak, err := s.Get(ctx, &GetInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	when := input.When.UTC()
	count := 1
	if streak.LastAttended != nil {
		gap := s.periodsBetween(*streak.LastAttended, when)
		if gap < 0 {
			return streak, nil
		}
		if gap <= 1 {
			count = streak.Count + 1
		}
		if when.Before(*streak.LastAttended) {
			when = streak.LastAttended.UTC()
		}
	}

	return s.save(ctx, streak, store.Patch{
		"count":        count,
		"lastAttended": when,
	}, &models.Streak{
		Base:         models.Base{ID: input.UserID},
		UserID:       input.UserID,
		Count:        count,
		LastAttended: &when,
	})
}

// MissedEvent resets the count to 0
func (s *service) MissedEvent(ctx context.Context, input *MissedEventInput) (*models.Streak, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrMissingUserID
	}

	streak, err := s.Get(ctx, &GetInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return s.save(ctx, streak, store.Patch{"count": 0}, &models.Streak{
		Base:   models.Base{ID: input.UserID},
		UserID: input.UserID,
	})
}

// save patches an existing streak or creates a new one keyed by user ID
func (s *service) save(ctx context.Context, current *models.Streak, patch store.Patch, fresh *models.Streak) (*models.Streak, error) {
	if current.ID == "" {
		if _, err := s.streaks.Create(ctx, fresh); err != nil {
			return nil, fmt.Errorf("failed to create streak: %w", err)
		}
		return fresh, nil
	}

	if _, err := s.streaks.PartialUpdate(ctx, store.ByID(current.ID), patch); err != nil {
		return nil, fmt.Errorf("failed to update streak: %w", err)
	}

	return s.Get(ctx, &GetInput{UserID: current.UserID})
}
