package invitations

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

type service struct {
	invitations store.Collection[models.Invitation]
	strict      bool
}

// New creates a new invitations service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Invitations == nil {
		return nil, ErrNilInvitations
	}

	return &service{
		invitations: cfg.Invitations,
		strict:      cfg.Strict,
	}, nil
}

// Create sends a pending invitation
func (s *service) Create(ctx context.Context, input *CreateInput) (*models.Invitation, error) {
	if input == nil || input.From == "" || input.To == "" || input.EventID == "" {
		return nil, ErrMissingParticipant
	}

	if input.From == input.To {
		return nil, ErrSelfInvitation
	}

	invitation := &models.Invitation{
		From:   input.From,
		To:     input.To,
		Event:  input.EventID,
		Status: models.InvitationStatusPending,
	}
	if _, err := s.invitations.Create(ctx, invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return invitation, nil
}

// Get retrieves an invitation by ID
func (s *service) Get(ctx context.Context, input *GetInput) (*models.Invitation, error) {
	if input == nil || input.InvitationID == "" {
		return nil, ErrInvitationNotFound
	}

	invitation, err := s.invitations.ReadOne(ctx, store.ByID(input.InvitationID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return invitation, nil
}

// List returns invitations matching the input
func (s *service) List(ctx context.Context, input *ListInput) ([]*models.Invitation, error) {
	filter := store.Filter{}
	if input != nil {
		if input.To != "" {
			filter["to"] = input.To
		}
		if input.From != "" {
			filter["from"] = input.From
		}
		if input.EventID != "" {
			filter["event"] = input.EventID
		}
		if input.Status != "" {
			filter["status"] = input.Status
		}
	}

	invitations, err := s.invitations.ReadMany(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	return invitations, nil
}

// SetStatus records the recipient's answer. In strict mode only a pending
// invitation can be answered.
func (s *service) SetStatus(ctx context.Context, input *SetStatusInput) (*models.Invitation, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Status != models.InvitationStatusAccepted && input.Status != models.InvitationStatusRejected {
		return nil, ErrInvalidStatus
	}

	invitation, err := s.Get(ctx, &GetInput{InvitationID: input.InvitationID})
	if err != nil {
		return nil, err
	}

	filter := store.ByID(invitation.ID)
	if s.strict {
		if invitation.Status != models.InvitationStatusPending {
			return nil, ErrInvitationAnswered
		}
		filter["status"] = models.InvitationStatusPending
	}

	n, err := s.invitations.PartialUpdate(ctx, filter, store.Patch{"status": input.Status})
	if err != nil {
		return nil, fmt.Errorf("failed to update invitation: %w", err)
	}
	if n == 0 {
		if s.strict {
			// answered between our read and write
			return nil, ErrInvitationAnswered
		}
		return nil, ErrInvitationNotFound
	}

	invitation.Status = input.Status
	return invitation, nil
}
