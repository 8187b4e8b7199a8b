package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/moodmeet/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetRSVPMessage returns a message for an RSVP or its cancellation
	GetRSVPMessage(ctx context.Context, input *GetRSVPMessageInput) (*GetRSVPMessageOutput, error)

	// GetStreakMessage returns a message that fits the size of a streak
	GetStreakMessage(ctx context.Context, input *GetStreakMessageInput) (*GetStreakMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
