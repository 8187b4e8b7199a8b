package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/moodmeet/internal/common/uuid"
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

type service struct {
	sessions store.Collection[models.Session]
	uuid     uuid.Generator
}

// New creates a new sessions service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Sessions == nil {
		return nil, ErrNilSessions
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		sessions: cfg.Sessions,
		uuid:     cfg.UUIDGenerator,
	}, nil
}

// Start opens a session for a user
func (s *service) Start(ctx context.Context, input *StartInput) (*models.Session, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	session := &models.Session{
		Base:   models.Base{ID: s.uuid.NewID()},
		UserID: input.UserID,
	}
	if _, err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return session, nil
}

// End closes the session behind a token
func (s *service) End(ctx context.Context, input *EndInput) error {
	if input == nil || input.Token == "" {
		return ErrAlreadyLoggedOut
	}

	n, err := s.sessions.Delete(ctx, store.ByID(input.Token))
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	if n == 0 {
		return ErrAlreadyLoggedOut
	}

	return nil
}

// GetUser resolves a token to the ID of its user
func (s *service) GetUser(ctx context.Context, input *GetUserInput) (string, error) {
	if input == nil || input.Token == "" {
		return "", ErrNotLoggedIn
	}

	session, err := s.sessions.ReadOne(ctx, store.ByID(input.Token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNotLoggedIn
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	return session.UserID, nil
}

// AssertLoggedOut fails when the token belongs to an open session
func (s *service) AssertLoggedOut(ctx context.Context, input *AssertLoggedOutInput) error {
	if input == nil || input.Token == "" {
		return nil
	}

	_, err := s.GetUser(ctx, &GetUserInput{Token: input.Token})
	if err == nil {
		return ErrAlreadyLoggedIn
	}
	if errors.Is(err, ErrNotLoggedIn) {
		return nil
	}
	return err
}

// EndAllForUser closes every session of a user
func (s *service) EndAllForUser(ctx context.Context, input *EndAllForUserInput) (int, error) {
	if input == nil || input.UserID == "" {
		return 0, errors.New("user ID cannot be empty")
	}

	n, err := s.sessions.Delete(ctx, store.Filter{"userId": input.UserID})
	if err != nil {
		return 0, fmt.Errorf("failed to end sessions: %w", err)
	}

	return n, nil
}
