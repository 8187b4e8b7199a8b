package streaks

import (
	"time"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

// Config holds configuration for the streaks service
type Config struct {
	Streaks store.Collection[models.Streak]

	// Period is the attendance window; consecutive attendances may be at
	// most one period apart. Defaults to 24h.
	Period time.Duration
}

type GetInput struct {
	UserID string
}

type AttendEventInput struct {
	UserID string
	When   time.Time
}

type MissedEventInput struct {
	UserID string
}
