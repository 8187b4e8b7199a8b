package orchestrator

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/accounts"
	"github.com/KirkDiggler/moodmeet/internal/services/events"
	"github.com/KirkDiggler/moodmeet/internal/services/invitations"
	"go.opentelemetry.io/otel/attribute"
)

// Invite asks another user to join an event that is still open
func (s *service) Invite(ctx context.Context, input *InviteInput) (_ *models.Invitation, err error) {
	ctx, end := s.start(ctx, "Invite", attribute.String("event_id", input.EventID))
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	event, err := s.events.Get(ctx, &events.GetInput{EventID: input.EventID})
	if err != nil {
		return nil, err
	}
	if event.Status == models.EventStatusCanceled {
		return nil, events.ErrEventCanceled
	}

	if _, err := s.accounts.Get(ctx, &accounts.GetInput{UserID: input.To}); err != nil {
		return nil, err
	}

	invitation, err := s.invitations.Create(ctx, &invitations.CreateInput{
		From:    userID,
		To:      input.To,
		EventID: input.EventID,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.ActivityInvite, userID, input.EventID, invitation.ID)
	return invitation, nil
}

// AcceptInvitation answers yes; only the recipient may
func (s *service) AcceptInvitation(ctx context.Context, input *InvitationActionInput) (_ *models.Invitation, err error) {
	ctx, end := s.start(ctx, "AcceptInvitation", attribute.String("invitation_id", input.InvitationID))
	defer end(&err)

	return s.answer(ctx, input, models.InvitationStatusAccepted, models.ActivityAcceptInvite)
}

// RejectInvitation answers no; only the recipient may
func (s *service) RejectInvitation(ctx context.Context, input *InvitationActionInput) (_ *models.Invitation, err error) {
	ctx, end := s.start(ctx, "RejectInvitation", attribute.String("invitation_id", input.InvitationID))
	defer end(&err)

	return s.answer(ctx, input, models.InvitationStatusRejected, models.ActivityRejectInvite)
}

func (s *service) answer(ctx context.Context, input *InvitationActionInput, status models.InvitationStatus, action models.ActivityAction) (*models.Invitation, error) {
	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	invitation, err := s.invitations.Get(ctx, &invitations.GetInput{InvitationID: input.InvitationID})
	if err != nil {
		return nil, err
	}
	if invitation.To != userID {
		return nil, ErrNotRecipient
	}

	answered, err := s.invitations.SetStatus(ctx, &invitations.SetStatusInput{
		InvitationID: input.InvitationID,
		Status:       status,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, action, userID, answered.Event, answered.ID)
	return answered, nil
}

// ListInvitations returns invitations the caller received, or sent
func (s *service) ListInvitations(ctx context.Context, input *ListInvitationsInput) (_ []*models.Invitation, err error) {
	ctx, end := s.start(ctx, "ListInvitations")
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	list := &invitations.ListInput{Status: input.Status}
	if input.Sent {
		list.From = userID
	} else {
		list.To = userID
	}

	return s.invitations.List(ctx, list)
}
