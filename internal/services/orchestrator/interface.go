package orchestrator

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/moodmeet/internal/services/orchestrator Service

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
)

// Service runs the composite actions that span several concepts. Steps
// run in a fixed order; the first failure is returned as is and steps
// already committed are not undone.
type Service interface {
	// SignUp registers an account; the caller must be logged out
	SignUp(ctx context.Context, input *SignUpInput) (*models.PublicUser, error)

	// LogIn checks credentials and opens a session
	LogIn(ctx context.Context, input *LogInInput) (*LogInOutput, error)

	// LogOut closes the caller's session
	LogOut(ctx context.Context, input *SessionInput) error

	// CurrentUser returns the caller's account
	CurrentUser(ctx context.Context, input *SessionInput) (*models.PublicUser, error)

	// GetUser looks an account up by username
	GetUser(ctx context.Context, input *GetUserInput) (*models.PublicUser, error)

	// ListUsers returns every account
	ListUsers(ctx context.Context) ([]*models.PublicUser, error)

	UpdateUsername(ctx context.Context, input *UpdateUsernameInput) (*models.PublicUser, error)
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error

	// DeleteAccount ends the caller's sessions and removes the account
	DeleteAccount(ctx context.Context, input *SessionInput) error

	// CreateEvent creates an event hosted by the caller
	CreateEvent(ctx context.Context, input *CreateEventInput) (*models.Event, error)

	// ListEvents returns events matching the filter
	ListEvents(ctx context.Context, input *ListEventsInput) ([]*models.Event, error)

	// LookupEventDetails returns an event with its attendee count
	LookupEventDetails(ctx context.Context, input *LookupEventDetailsInput) (*models.EventDetails, error)

	// UpdateEventDetails changes host-editable fields; host only
	UpdateEventDetails(ctx context.Context, input *UpdateEventDetailsInput) (*models.Event, error)

	// CancelEvent cancels an event; host only
	CancelEvent(ctx context.Context, input *EventActionInput) (*models.Event, error)

	// AdvanceEventStatus moves an event forward; host only
	AdvanceEventStatus(ctx context.Context, input *AdvanceEventStatusInput) (*models.Event, error)

	// RSVP reserves a seat for the caller
	RSVP(ctx context.Context, input *EventActionInput) (*models.RSVP, error)

	// CancelRSVP gives the caller's seat back
	CancelRSVP(ctx context.Context, input *EventActionInput) (*models.RSVP, error)

	// GetRSVP returns a single RSVP record
	GetRSVP(ctx context.Context, input *GetRSVPInput) (*models.RSVP, error)

	// ListRSVPs returns RSVP records matching the filter
	ListRSVPs(ctx context.Context, input *ListRSVPsInput) ([]*models.RSVP, error)

	// MarkAttendance records whether an attendee showed up; host only
	MarkAttendance(ctx context.Context, input *MarkAttendanceInput) (*MarkAttendanceOutput, error)

	// GetStreak returns a user's attendance streak
	GetStreak(ctx context.Context, input *GetStreakInput) (*models.Streak, error)

	ListMoods(ctx context.Context) ([]*models.Mood, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	ListTags(ctx context.Context) ([]*models.Tag, error)

	// CreateTag adds a free-form tag
	CreateTag(ctx context.Context, input *CreateTagInput) (*models.Tag, error)

	// TagEvent attaches a tag to an event, in both buckets when it is a mood
	TagEvent(ctx context.Context, input *TagEventInput) (*models.Event, error)

	// SelectMood makes a mood the caller's current one
	SelectMood(ctx context.Context, input *SelectMoodInput) (*models.UserMood, error)

	// RecommendEvents returns events for the caller's mood, or every event
	// when none match
	RecommendEvents(ctx context.Context, input *SessionInput) (*RecommendEventsOutput, error)

	// SyncMoodWithEvent checks an event against the caller's mood
	SyncMoodWithEvent(ctx context.Context, input *EventActionInput) (*SyncMoodOutput, error)

	Upvote(ctx context.Context, input *EventActionInput) (*models.Upvote, error)
	RemoveUpvote(ctx context.Context, input *EventActionInput) error
	CountUpvotes(ctx context.Context, input *CountUpvotesInput) (int, error)

	// Invite asks another user to join an event
	Invite(ctx context.Context, input *InviteInput) (*models.Invitation, error)

	// AcceptInvitation answers yes; recipient only
	AcceptInvitation(ctx context.Context, input *InvitationActionInput) (*models.Invitation, error)

	// RejectInvitation answers no; recipient only
	RejectInvitation(ctx context.Context, input *InvitationActionInput) (*models.Invitation, error)

	// ListInvitations returns invitations the caller received or sent
	ListInvitations(ctx context.Context, input *ListInvitationsInput) ([]*models.Invitation, error)

	CreatePost(ctx context.Context, input *CreatePostInput) (*models.Post, error)

	// ListPosts returns posts, optionally by one author's username
	ListPosts(ctx context.Context, input *ListPostsInput) ([]*models.Post, error)

	// UpdatePost changes a post; author only
	UpdatePost(ctx context.Context, input *UpdatePostInput) (*models.Post, error)

	// DeletePost removes a post; author only
	DeletePost(ctx context.Context, input *PostActionInput) error
}
