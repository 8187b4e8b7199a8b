package orchestrator

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/moodmeet/internal/common/clock"
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/accounts"
	"github.com/KirkDiggler/moodmeet/internal/services/activity"
	"github.com/KirkDiggler/moodmeet/internal/services/events"
	"github.com/KirkDiggler/moodmeet/internal/services/invitations"
	"github.com/KirkDiggler/moodmeet/internal/services/posts"
	"github.com/KirkDiggler/moodmeet/internal/services/rsvps"
	"github.com/KirkDiggler/moodmeet/internal/services/sessions"
	"github.com/KirkDiggler/moodmeet/internal/services/streaks"
	"github.com/KirkDiggler/moodmeet/internal/services/tagging"
	"github.com/KirkDiggler/moodmeet/internal/services/upvotes"
	"github.com/KirkDiggler/moodmeet/internal/store"
	"go.opentelemetry.io/otel/trace"
)

// Config holds the concepts the orchestrator sequences
type Config struct {
	Accounts    accounts.Service
	Sessions    sessions.Service
	Events      events.Service
	RSVPs       rsvps.Service
	Tagging     tagging.Service
	Streaks     streaks.Service
	Upvotes     upvotes.Service
	Invitations invitations.Service
	Posts       posts.Service

	Clock clock.Clock

	// Locker serializes RSVP and capacity changes per event. Nil leaves
	// them unserialized.
	Locker store.Locker

	// Publisher receives an activity after each committed action. Nil
	// discards them.
	Publisher activity.Publisher

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// Tracer defaults to the global provider's tracer
	Tracer trace.Tracer
}

// SessionInput carries only the caller's session token
type SessionInput struct {
	Token string
}

type SignUpInput struct {
	Token    string
	Username string
	Password string
}

type LogInInput struct {
	Token    string
	Username string
	Password string
}

type LogInOutput struct {
	// Token identifies the new session
	Token string
	User  *models.PublicUser
}

type GetUserInput struct {
	Username string
}

type UpdateUsernameInput struct {
	Token    string
	Username string
}

type UpdatePasswordInput struct {
	Token           string
	CurrentPassword string
	NewPassword     string
}

type CreateEventInput struct {
	Token       string
	Title       string
	Description string
	Category    string
	MoodTag     string
	Capacity    int
	Location    string
	Date        time.Time
}

// ListEventsInput narrows the listing; empty fields do not filter
type ListEventsInput struct {
	Host     string
	Status   models.EventStatus
	Category string
	MoodTag  string
	Tag      string
}

type LookupEventDetailsInput struct {
	EventID string
}

// UpdateEventDetailsInput carries the fields to change; nil means unchanged
type UpdateEventDetailsInput struct {
	Token       string
	EventID     string
	Description *string
	Location    *string
	Capacity    *int
	Category    *string
	MoodTag     *string
}

// EventActionInput names the event the caller acts on
type EventActionInput struct {
	Token   string
	EventID string
}

type AdvanceEventStatusInput struct {
	Token   string
	EventID string
	Status  models.EventStatus
}

type GetRSVPInput struct {
	RSVPID string
}

// ListRSVPsInput narrows the listing; empty fields do not filter
type ListRSVPsInput struct {
	UserID     string
	EventID    string
	ActiveOnly bool
}

type MarkAttendanceInput struct {
	Token   string
	EventID string

	// UserID is the attendee being marked
	UserID string

	// Attended extends the streak when true and resets it when false
	Attended bool
}

type MarkAttendanceOutput struct {
	Streak *models.Streak

	// Recorded is false when this attendee was already marked for the event
	Recorded bool
}

type GetStreakInput struct {
	UserID string
}

type CreateTagInput struct {
	Token string
	Name  string
}

type TagEventInput struct {
	Token   string
	EventID string
	TagID   string
}

type SelectMoodInput struct {
	Token  string
	MoodID string
}

type RecommendEventsOutput struct {
	// Mood is the caller's current mood
	Mood   string
	Events []*models.Event

	// Fallback is true when nothing matched the mood and every event
	// was returned instead
	Fallback bool
}

type SyncMoodOutput struct {
	Synced bool

	// Alternatives holds events matching the caller's mood when the
	// requested event does not
	Alternatives []*models.Event
}

type CountUpvotesInput struct {
	EventID string
}

type InviteInput struct {
	Token   string
	EventID string

	// To is the ID of the invited user
	To string
}

type InvitationActionInput struct {
	Token        string
	InvitationID string
}

type ListInvitationsInput struct {
	Token string

	// Sent lists invitations the caller sent instead of received
	Sent   bool
	Status models.InvitationStatus
}

type CreatePostInput struct {
	Token   string
	Content string
	Options *models.PostOptions
}

type ListPostsInput struct {
	// Author is a username; empty lists every post
	Author string
}

// UpdatePostInput carries the fields to change; nil means unchanged
type UpdatePostInput struct {
	Token   string
	PostID  string
	Content *string
	Options *models.PostOptions
}

type PostActionInput struct {
	Token  string
	PostID string
}
