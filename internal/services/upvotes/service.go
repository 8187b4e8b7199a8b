package upvotes

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

type service struct {
	upvotes store.Collection[models.Upvote]
}

// New creates a new upvotes service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Upvotes == nil {
		return nil, ErrNilUpvotes
	}

	return &service{
		upvotes: cfg.Upvotes,
	}, nil
}

// upvoteID keys the document by its pair so a second insert collides
func upvoteID(input *PairInput) string {
	return fmt.Sprintf("%s:%s", input.UserID, input.EventID)
}

func validate(input *PairInput) error {
	if input == nil || input.UserID == "" || input.EventID == "" {
		return ErrMissingPairPart
	}
	return nil
}

// Add upvotes an event once per user
func (s *service) Add(ctx context.Context, input *PairInput) (*models.Upvote, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	upvote := &models.Upvote{
		Base:  models.Base{ID: upvoteID(input)},
		User:  input.UserID,
		Event: input.EventID,
	}
	if _, err := s.upvotes.Create(ctx, upvote); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			return nil, ErrAlreadyUpvoted
		}
		return nil, fmt.Errorf("failed to upvote: %w", err)
	}

	return upvote, nil
}

// Remove withdraws a user's upvote
func (s *service) Remove(ctx context.Context, input *PairInput) error {
	if err := validate(input); err != nil {
		return err
	}

	n, err := s.upvotes.Delete(ctx, store.ByID(upvoteID(input)))
	if err != nil {
		return fmt.Errorf("failed to remove upvote: %w", err)
	}
	if n == 0 {
		return ErrUpvoteNotFound
	}

	return nil
}

// Count returns how many users upvoted an event
func (s *service) Count(ctx context.Context, input *CountInput) (int, error) {
	if input == nil || input.EventID == "" {
		return 0, ErrMissingPairPart
	}

	n, err := s.upvotes.Count(ctx, store.Filter{"event": input.EventID})
	if err != nil {
		return 0, fmt.Errorf("failed to count upvotes: %w", err)
	}

	return n, nil
}

// Has reports whether the user upvoted the event
func (s *service) Has(ctx context.Context, input *PairInput) (bool, error) {
	if err := validate(input); err != nil {
		return false, err
	}

	n, err := s.upvotes.Count(ctx, store.ByID(upvoteID(input)))
	if err != nil {
		return false, fmt.Errorf("failed to check upvote: %w", err)
	}

	return n > 0, nil
}
