package streaks

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/moodmeet/internal/services/streaks Service

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
)

// Service tracks consecutive attendance per user. Callers must invoke
// AttendEvent at most once per real attendance.
type Service interface {
	// Get returns the user's streak, a zero streak if none was recorded
	Get(ctx context.Context, input *GetInput) (*models.Streak, error)

	// AttendEvent extends the streak, or restarts it at 1 after a gap
	AttendEvent(ctx context.Context, input *AttendEventInput) (*models.Streak, error)

	// MissedEvent resets the count to 0 and keeps the last attendance
	MissedEvent(ctx context.Context, input *MissedEventInput) (*models.Streak, error)
}
