package rsvps

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

type service struct {
	rsvps store.Collection[models.RSVP]
}

// New creates a new rsvps service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RSVPs == nil {
		return nil, ErrNilRSVPs
	}

	return &service{
		rsvps: cfg.RSVPs,
	}, nil
}

func pairFilter(input *PairInput, status bool) store.Filter {
	return store.Filter{
		"user":   input.UserID,
		"event":  input.EventID,
		"status": status,
	}
}

// Get returns a record by ID whatever its status
func (s *service) Get(ctx context.Context, input *GetInput) (*models.RSVP, error) {
	if input == nil || input.ID == "" {
		return nil, ErrRSVPNotFound
	}

	rsvp, err := s.rsvps.ReadOne(ctx, store.ByID(input.ID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRSVPNotFound
		}
		return nil, fmt.Errorf("failed to get rsvp: %w", err)
	}

	return rsvp, nil
}

// GetActive returns the active RSVP for a pair
func (s *service) GetActive(ctx context.Context, input *PairInput) (*models.RSVP, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	rsvp, err := s.rsvps.ReadOne(ctx, pairFilter(input, true))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRSVPNotFound
		}
		return nil, fmt.Errorf("failed to get rsvp: %w", err)
	}

	return rsvp, nil
}

// Activate creates the pair's record or flips an inactive one back on
func (s *service) Activate(ctx context.Context, input *PairInput) (*models.RSVP, error) {
	if input == nil || input.UserID == "" || input.EventID == "" {
		return nil, errors.New("user and event IDs are required")
	}

	_, err := s.GetActive(ctx, input)
	if err == nil {
		return nil, ErrAlreadyRSVPd
	}
	if !errors.Is(err, ErrRSVPNotFound) {
		return nil, err
	}

	n, err := s.rsvps.PartialUpdate(ctx, pairFilter(input, false), store.Patch{"status": true})
	if err != nil {
		return nil, fmt.Errorf("failed to reactivate rsvp: %w", err)
	}
	if n > 0 {
		return s.GetActive(ctx, input)
	}

	rsvp := &models.RSVP{
		User:   input.UserID,
		Event:  input.EventID,
		Status: true,
	}
	if _, err := s.rsvps.Create(ctx, rsvp); err != nil {
		return nil, fmt.Errorf("failed to create rsvp: %w", err)
	}

	return rsvp, nil
}

// Deactivate flips the pair's active record to inactive
func (s *service) Deactivate(ctx context.Context, input *PairInput) (*models.RSVP, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	rsvp, err := s.GetActive(ctx, input)
	if err != nil {
		return nil, err
	}

	n, err := s.rsvps.PartialUpdate(ctx, store.Filter{"id": rsvp.ID, "status": true}, store.Patch{"status": false})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel rsvp: %w", err)
	}
	if n == 0 {
		return nil, ErrRSVPNotFound
	}

	rsvp.Status = false
	return rsvp, nil
}

// List returns records matching the input
func (s *service) List(ctx context.Context, input *ListInput) ([]*models.RSVP, error) {
	filter := store.Filter{}
	if input != nil {
		if input.UserID != "" {
			filter["user"] = input.UserID
		}
		if input.EventID != "" {
			filter["event"] = input.EventID
		}
		if input.ActiveOnly {
			filter["status"] = true
		}
	}

	rsvps, err := s.rsvps.ReadMany(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list rsvps: %w", err)
	}

	return rsvps, nil
}
