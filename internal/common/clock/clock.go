package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/moodmeet/internal/common/clock Clock

// Clock supplies the current time to stores and services
type Clock interface {
	Now() time.Time
}

// System reads the wall clock, always in UTC
type System struct{}

// New returns the system clock
func New() *System {
	return &System{}
}

// Now returns the current UTC time
func (c *System) Now() time.Time {
	return time.Now().UTC()
}
