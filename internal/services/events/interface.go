package events

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/moodmeet/internal/services/events Service

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
)

// Service owns events and the entity-local rules on them. Every write to
// an existing event is a compare-and-swap on its updatedAt stamp.
type Service interface {
	// Create creates an upcoming event
	Create(ctx context.Context, input *CreateInput) (*models.Event, error)

	// Get retrieves an event by ID
	Get(ctx context.Context, input *GetInput) (*models.Event, error)

	// List returns events matching the input, oldest first
	List(ctx context.Context, input *ListInput) ([]*models.Event, error)

	// UpdateDetails changes the host-editable fields of an event
	UpdateDetails(ctx context.Context, input *UpdateDetailsInput) (*models.Event, error)

	// SetStatus moves an event along its lifecycle
	SetStatus(ctx context.Context, input *SetStatusInput) (*models.Event, error)

	// AddAttendee puts a user on the attendee list if there is room
	AddAttendee(ctx context.Context, input *AttendeeInput) (*models.Event, error)

	// RemoveAttendee takes a user off the attendee list
	RemoveAttendee(ctx context.Context, input *AttendeeInput) (*models.Event, error)

	// AddTag attaches a tag, and also records it as a mood tag when asked
	AddTag(ctx context.Context, input *AddTagInput) (*models.Event, error)

	// MarkAttendance records that a user's attendance was handled
	MarkAttendance(ctx context.Context, input *MarkAttendanceInput) (*MarkAttendanceOutput, error)
}
