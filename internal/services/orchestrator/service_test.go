package orchestrator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/KirkDiggler/moodmeet/internal/app"
	"github.com/KirkDiggler/moodmeet/internal/common/apperrors"
	"github.com/KirkDiggler/moodmeet/internal/common/clock/mocks"
	"github.com/KirkDiggler/moodmeet/internal/common/uuid"
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/accounts"
	"github.com/KirkDiggler/moodmeet/internal/services/events"
	"github.com/KirkDiggler/moodmeet/internal/services/invitations"
	"github.com/KirkDiggler/moodmeet/internal/services/posts"
	"github.com/KirkDiggler/moodmeet/internal/services/rsvps"
	"github.com/KirkDiggler/moodmeet/internal/services/sessions"
	"github.com/KirkDiggler/moodmeet/internal/services/tagging"
	"github.com/KirkDiggler/moodmeet/internal/services/upvotes"
	"github.com/KirkDiggler/moodmeet/internal/store"
	"github.com/KirkDiggler/moodmeet/internal/store/storetest"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// recorder keeps every published activity
type recorder struct {
	mu         sync.Mutex
	activities []*models.Activity
}

func (r *recorder) Publish(_ context.Context, a *models.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = append(r.activities, a)
	return nil
}

func (r *recorder) actions() []models.ActivityAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ActivityAction, 0, len(r.activities))
	for _, a := range r.activities {
		out = append(out, a.Action)
	}
	return out
}

type OrchestratorTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	concepts  *app.Concepts
	published *recorder
	service   Service
	ctx       context.Context

	testTime time.Time
	mu       sync.Mutex
	tick     int
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.tick = 0
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.tick++
		return s.testTime.Add(time.Duration(s.tick) * time.Millisecond)
	}).AnyTimes()

	concepts, err := app.NewConcepts(&app.Config{
		Backend:       storetest.NewRedis(s.T()).Backend(s.T()),
		Clock:         s.mockClock,
		UUIDGenerator: uuid.New(),
		BcryptCost:    bcrypt.MinCost,
	})
	s.Require().NoError(err)
	s.concepts = concepts

	_, err = concepts.Tagging.Seed(s.ctx, &tagging.SeedInput{})
	s.Require().NoError(err)

	s.published = &recorder{}
	s.service = s.newService(store.NewLocalLocker(time.Second))
}

func (s *OrchestratorTestSuite) newService(locker store.Locker) Service {
	svc, err := New(&Config{
		Accounts:    s.concepts.Accounts,
		Sessions:    s.concepts.Sessions,
		Events:      s.concepts.Events,
		RSVPs:       s.concepts.RSVPs,
		Tagging:     s.concepts.Tagging,
		Streaks:     s.concepts.Streaks,
		Upvotes:     s.concepts.Upvotes,
		Invitations: s.concepts.Invitations,
		Posts:       s.concepts.Posts,
		Clock:       s.mockClock,
		Locker:      locker,
		Publisher:   s.published,
	})
	s.Require().NoError(err)
	return svc
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

// login signs a user up and returns their token and ID
func (s *OrchestratorTestSuite) login(username string) (string, string) {
	_, err := s.service.SignUp(s.ctx, &SignUpInput{Username: username, Password: "hunter2"})
	s.Require().NoError(err)

	out, err := s.service.LogIn(s.ctx, &LogInInput{Username: username, Password: "hunter2"})
	s.Require().NoError(err)
	return out.Token, out.User.ID
}

func (s *OrchestratorTestSuite) createEvent(token string, capacity int) *models.Event {
	event, err := s.service.CreateEvent(s.ctx, &CreateEventInput{
		Token:    token,
		Title:    "Picnic",
		Category: "food-drink",
		MoodTag:  "relaxed",
		Capacity: capacity,
		Location: "Park",
		Date:     s.testTime.Add(24 * time.Hour),
	})
	s.Require().NoError(err)
	return event
}

func (s *OrchestratorTestSuite) attendees(eventID string) int {
	details, err := s.service.LookupEventDetails(s.ctx, &LookupEventDetailsInput{EventID: eventID})
	s.Require().NoError(err)
	return details.Count
}

func (s *OrchestratorTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Accounts: s.concepts.Accounts})
	s.ErrorIs(err, ErrNilSessions)
}

func (s *OrchestratorTestSuite) TestSessionLifecycle() {
	token, userID := s.login("alice")

	me, err := s.service.CurrentUser(s.ctx, &SessionInput{Token: token})
	s.Require().NoError(err)
	s.Equal(userID, me.ID)
	s.Equal("alice", me.Username)

	_, err = s.service.SignUp(s.ctx, &SignUpInput{Token: token, Username: "other", Password: "pw"})
	s.ErrorIs(err, sessions.ErrAlreadyLoggedIn)

	s.Require().NoError(s.service.LogOut(s.ctx, &SessionInput{Token: token}))
	s.ErrorIs(s.service.LogOut(s.ctx, &SessionInput{Token: token}), sessions.ErrAlreadyLoggedOut)

	_, err = s.service.CurrentUser(s.ctx, &SessionInput{Token: token})
	s.ErrorIs(err, apperrors.ErrUnauthenticated)

	_, err = s.service.LogIn(s.ctx, &LogInInput{Username: "alice", Password: "wrong"})
	s.ErrorIs(err, accounts.ErrInvalidCredentials)
}

func (s *OrchestratorTestSuite) TestAccountUpdatesAndDeletion() {
	token, _ := s.login("alice")

	user, err := s.service.UpdateUsername(s.ctx, &UpdateUsernameInput{Token: token, Username: "alicia"})
	s.Require().NoError(err)
	s.Equal("alicia", user.Username)

	s.ErrorIs(s.service.UpdatePassword(s.ctx, &UpdatePasswordInput{
		Token:           token,
		CurrentPassword: "nope",
		NewPassword:     "new",
	}), accounts.ErrWrongPassword)
	s.Require().NoError(s.service.UpdatePassword(s.ctx, &UpdatePasswordInput{
		Token:           token,
		CurrentPassword: "hunter2",
		NewPassword:     "new",
	}))

	found, err := s.service.GetUser(s.ctx, &GetUserInput{Username: "ALICIA"})
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)

	s.Require().NoError(s.service.DeleteAccount(s.ctx, &SessionInput{Token: token}))

	_, err = s.service.CurrentUser(s.ctx, &SessionInput{Token: token})
	s.ErrorIs(err, apperrors.ErrUnauthenticated)

	users, err := s.service.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Empty(users)
	s.Contains(s.published.actions(), models.ActivityDeleteAccount)
}

func (s *OrchestratorTestSuite) TestRequiresSession() {
	_, err := s.service.CreateEvent(s.ctx, &CreateEventInput{Token: "bogus", Capacity: 1})
	s.ErrorIs(err, apperrors.ErrUnauthenticated)

	_, err = s.service.RSVP(s.ctx, &EventActionInput{Token: "", EventID: "x"})
	s.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (s *OrchestratorTestSuite) TestCapacityScenario() {
	host, _ := s.login("host")
	alice, _ := s.login("alice")
	bob, _ := s.login("bob")
	event := s.createEvent(host, 1)

	_, err := s.service.RSVP(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.Require().NoError(err)
	s.Equal(1, s.attendees(event.ID))

	_, err = s.service.RSVP(s.ctx, &EventActionInput{Token: bob, EventID: event.ID})
	s.ErrorIs(err, events.ErrEventFull)
	s.ErrorIs(err, apperrors.ErrConflict)

	rsvp, err := s.service.CancelRSVP(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.Require().NoError(err)
	s.False(rsvp.Status)
	s.Equal(0, s.attendees(event.ID))

	_, err = s.service.RSVP(s.ctx, &EventActionInput{Token: bob, EventID: event.ID})
	s.Require().NoError(err)
	s.Equal(1, s.attendees(event.ID))
}

func (s *OrchestratorTestSuite) TestRSVPTwiceConflicts() {
	host, _ := s.login("host")
	alice, aliceID := s.login("alice")
	event := s.createEvent(host, 5)

	_, err := s.service.RSVP(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.Require().NoError(err)

	_, err = s.service.RSVP(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.ErrorIs(err, rsvps.ErrAlreadyRSVPd)

	active, err := s.service.ListRSVPs(s.ctx, &ListRSVPsInput{UserID: aliceID, EventID: event.ID, ActiveOnly: true})
	s.Require().NoError(err)
	s.Require().Len(active, 1)

	got, err := s.service.GetRSVP(s.ctx, &GetRSVPInput{RSVPID: active[0].ID})
	s.Require().NoError(err)
	s.Equal(aliceID, got.User)

	_, err = s.service.GetRSVP(s.ctx, &GetRSVPInput{RSVPID: "missing"})
	s.ErrorIs(err, rsvps.ErrRSVPNotFound)
	s.Equal(1, s.attendees(event.ID))
}

func (s *OrchestratorTestSuite) TestRSVPErrorOrder() {
	host, _ := s.login("host")
	alice, _ := s.login("alice")

	_, err := s.service.RSVP(s.ctx, &EventActionInput{Token: alice, EventID: "missing"})
	s.ErrorIs(err, events.ErrEventNotFound)

	// full wins over duplicate for a user already on the list
	full := s.createEvent(host, 1)
	_, err = s.service.RSVP(s.ctx, &EventActionInput{Token: alice, EventID: full.ID})
	s.Require().NoError(err)
	_, err = s.service.RSVP(s.ctx, &EventActionInput{Token: alice, EventID: full.ID})
	s.ErrorIs(err, events.ErrEventFull)

	canceled := s.createEvent(host, 0)
	_, err = s.service.CancelEvent(s.ctx, &EventActionInput{Token: host, EventID: canceled.ID})
	s.Require().NoError(err)
	_, err = s.service.RSVP(s.ctx, &EventActionInput{Token: alice, EventID: canceled.ID})
	s.ErrorIs(err, events.ErrEventCanceled)
}

func (s *OrchestratorTestSuite) TestCancelRSVPWithoutRSVP() {
	host, _ := s.login("host")
	alice, _ := s.login("alice")
	event := s.createEvent(host, 2)

	_, err := s.service.CancelRSVP(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.ErrorIs(err, rsvps.ErrRSVPNotFound)

	_, err = s.service.RSVP(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.Require().NoError(err)
	_, err = s.service.CancelRSVP(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.Require().NoError(err)
	_, err = s.service.CancelRSVP(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.ErrorIs(err, rsvps.ErrRSVPNotFound)
}

func (s *OrchestratorTestSuite) TestConcurrentRSVPsNeverOverfill() {
	host, _ := s.login("host")
	event := s.createEvent(host, 2)

	tokens := make([]string, 6)
	for i := range tokens {
		tokens[i], _ = s.login(string(rune('a'+i)) + "-guest")
	}

	var wg sync.WaitGroup
	results := make(chan error, len(tokens))
	for _, token := range tokens {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			_, err := s.service.RSVP(s.ctx, &EventActionInput{Token: token, EventID: event.ID})
			results <- err
		}(token)
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, apperrors.ErrConflict)
	}

	s.Equal(2, succeeded)
	s.Equal(2, s.attendees(event.ID))

	active, err := s.service.ListRSVPs(s.ctx, &ListRSVPsInput{EventID: event.ID, ActiveOnly: true})
	s.Require().NoError(err)
	s.Len(active, 2)
}

func (s *OrchestratorTestSuite) TestEventHostRules() {
	host, _ := s.login("host")
	alice, _ := s.login("alice")
	event := s.createEvent(host, 2)

	location := "Beach"
	_, err := s.service.UpdateEventDetails(s.ctx, &UpdateEventDetailsInput{Token: alice, EventID: event.ID, Location: &location})
	s.ErrorIs(err, ErrNotHost)
	s.ErrorIs(err, apperrors.ErrForbidden)

	updated, err := s.service.UpdateEventDetails(s.ctx, &UpdateEventDetailsInput{Token: host, EventID: event.ID, Location: &location})
	s.Require().NoError(err)
	s.Equal("Beach", updated.Location)

	_, err = s.service.UpdateEventDetails(s.ctx, &UpdateEventDetailsInput{Token: host, EventID: "missing", Location: &location})
	s.ErrorIs(err, events.ErrEventNotFound)

	_, err = s.service.RSVP(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.Require().NoError(err)
	zero := 0
	_, err = s.service.UpdateEventDetails(s.ctx, &UpdateEventDetailsInput{Token: host, EventID: event.ID, Capacity: &zero})
	s.ErrorIs(err, events.ErrCapacityBelowAttendance)

	_, err = s.service.CancelEvent(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.ErrorIs(err, ErrNotHost)
}

func (s *OrchestratorTestSuite) TestCancelEventTwiceIsNoop() {
	host, _ := s.login("host")
	event := s.createEvent(host, 2)

	canceled, err := s.service.CancelEvent(s.ctx, &EventActionInput{Token: host, EventID: event.ID})
	s.Require().NoError(err)
	s.Equal(models.EventStatusCanceled, canceled.Status)

	_, err = s.service.CancelEvent(s.ctx, &EventActionInput{Token: host, EventID: event.ID})
	s.Require().NoError(err)

	cancels := 0
	for _, action := range s.published.actions() {
		if action == models.ActivityCancelEvent {
			cancels++
		}
	}
	s.Equal(1, cancels)
}

func (s *OrchestratorTestSuite) TestAdvanceEventStatus() {
	host, _ := s.login("host")
	event := s.createEvent(host, 2)

	ongoing, err := s.service.AdvanceEventStatus(s.ctx, &AdvanceEventStatusInput{Token: host, EventID: event.ID, Status: models.EventStatusOngoing})
	s.Require().NoError(err)
	s.Equal(models.EventStatusOngoing, ongoing.Status)

	_, err = s.service.AdvanceEventStatus(s.ctx, &AdvanceEventStatusInput{Token: host, EventID: event.ID, Status: models.EventStatusUpcoming})
	s.ErrorIs(err, events.ErrInvalidTransition)

	_, err = s.service.AdvanceEventStatus(s.ctx, &AdvanceEventStatusInput{Token: host, EventID: event.ID, Status: models.EventStatusCompleted})
	s.Require().NoError(err)

	_, err = s.service.CancelEvent(s.ctx, &EventActionInput{Token: host, EventID: event.ID})
	s.ErrorIs(err, events.ErrInvalidTransition)
}

func (s *OrchestratorTestSuite) TestMarkAttendanceDrivesStreakOnce() {
	host, _ := s.login("host")
	alice, aliceID := s.login("alice")
	event := s.createEvent(host, 2)

	_, err := s.service.MarkAttendance(s.ctx, &MarkAttendanceInput{Token: host, EventID: event.ID, UserID: aliceID, Attended: true})
	s.ErrorIs(err, ErrNotAttendee)

	_, err = s.service.RSVP(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.Require().NoError(err)

	_, err = s.service.MarkAttendance(s.ctx, &MarkAttendanceInput{Token: alice, EventID: event.ID, UserID: aliceID, Attended: true})
	s.ErrorIs(err, ErrNotHost)

	out, err := s.service.MarkAttendance(s.ctx, &MarkAttendanceInput{Token: host, EventID: event.ID, UserID: aliceID, Attended: true})
	s.Require().NoError(err)
	s.True(out.Recorded)
	s.Equal(1, out.Streak.Count)
	s.Require().NotNil(out.Streak.LastAttended)
	s.True(out.Streak.LastAttended.Equal(event.Date))

	again, err := s.service.MarkAttendance(s.ctx, &MarkAttendanceInput{Token: host, EventID: event.ID, UserID: aliceID, Attended: true})
	s.Require().NoError(err)
	s.False(again.Recorded)
	s.Equal(1, again.Streak.Count)

	streak, err := s.service.GetStreak(s.ctx, &GetStreakInput{UserID: aliceID})
	s.Require().NoError(err)
	s.Equal(1, streak.Count)
}

func (s *OrchestratorTestSuite) TestMissedAttendanceResetsStreak() {
	host, _ := s.login("host")
	alice, aliceID := s.login("alice")

	first := s.createEvent(host, 2)
	second := s.createEvent(host, 2)
	for _, event := range []*models.Event{first, second} {
		_, err := s.service.RSVP(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
		s.Require().NoError(err)
	}

	_, err := s.service.MarkAttendance(s.ctx, &MarkAttendanceInput{Token: host, EventID: first.ID, UserID: aliceID, Attended: true})
	s.Require().NoError(err)

	out, err := s.service.MarkAttendance(s.ctx, &MarkAttendanceInput{Token: host, EventID: second.ID, UserID: aliceID, Attended: false})
	s.Require().NoError(err)
	s.Equal(0, out.Streak.Count)
	s.NotNil(out.Streak.LastAttended)
}

func (s *OrchestratorTestSuite) TestMoodRecommendationScenario() {
	host, _ := s.login("host")
	alice, _ := s.login("alice")

	_, err := s.service.RecommendEvents(s.ctx, &SessionInput{Token: alice})
	s.ErrorIs(err, tagging.ErrNoMoodSelected)

	_, err = s.service.SelectMood(s.ctx, &SelectMoodInput{Token: alice, MoodID: "not-a-mood"})
	s.ErrorIs(err, tagging.ErrMoodNotFound)

	_, err = s.service.SelectMood(s.ctx, &SelectMoodInput{Token: alice, MoodID: "curious"})
	s.Require().NoError(err)

	me, err := s.service.CurrentUser(s.ctx, &SessionInput{Token: alice})
	s.Require().NoError(err)
	s.Equal("curious", me.MoodPreference)

	event1 := s.createEvent(host, 5)
	event2 := s.createEvent(host, 5)

	// nothing carries "curious" yet, so every event comes back
	recs, err := s.service.RecommendEvents(s.ctx, &SessionInput{Token: alice})
	s.Require().NoError(err)
	s.True(recs.Fallback)
	s.Len(recs.Events, 2)

	tagged, err := s.service.TagEvent(s.ctx, &TagEventInput{Token: host, EventID: event1.ID, TagID: "curious"})
	s.Require().NoError(err)
	s.Contains(tagged.Tags, "curious")
	s.Contains(tagged.MoodTags, "curious")

	recs, err = s.service.RecommendEvents(s.ctx, &SessionInput{Token: alice})
	s.Require().NoError(err)
	s.False(recs.Fallback)
	s.Require().Len(recs.Events, 1)
	s.Equal(event1.ID, recs.Events[0].ID)

	synced, err := s.service.SyncMoodWithEvent(s.ctx, &EventActionInput{Token: alice, EventID: event1.ID})
	s.Require().NoError(err)
	s.True(synced.Synced)

	unsynced, err := s.service.SyncMoodWithEvent(s.ctx, &EventActionInput{Token: alice, EventID: event2.ID})
	s.Require().NoError(err)
	s.False(unsynced.Synced)
	s.Require().Len(unsynced.Alternatives, 1)
	s.Equal(event1.ID, unsynced.Alternatives[0].ID)
}

func (s *OrchestratorTestSuite) TestTagEventWithPlainTag() {
	host, _ := s.login("host")
	event := s.createEvent(host, 5)

	tag, err := s.service.CreateTag(s.ctx, &CreateTagInput{Token: host, Name: "Board Games"})
	s.Require().NoError(err)

	tagged, err := s.service.TagEvent(s.ctx, &TagEventInput{Token: host, EventID: event.ID, TagID: tag.ID})
	s.Require().NoError(err)
	s.Contains(tagged.Tags, tag.ID)
	s.NotContains(tagged.MoodTags, tag.ID)

	_, err = s.service.TagEvent(s.ctx, &TagEventInput{Token: host, EventID: event.ID, TagID: "missing"})
	s.ErrorIs(err, tagging.ErrTagNotFound)

	_, err = s.service.TagEvent(s.ctx, &TagEventInput{Token: host, EventID: "missing", TagID: tag.ID})
	s.ErrorIs(err, events.ErrEventNotFound)
}

func (s *OrchestratorTestSuite) TestUpvoteScenario() {
	host, _ := s.login("host")
	alice, _ := s.login("alice")
	event := s.createEvent(host, 5)

	_, err := s.service.Upvote(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.Require().NoError(err)

	_, err = s.service.Upvote(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.ErrorIs(err, upvotes.ErrAlreadyUpvoted)

	count, err := s.service.CountUpvotes(s.ctx, &CountUpvotesInput{EventID: event.ID})
	s.Require().NoError(err)
	s.Equal(1, count)

	s.Require().NoError(s.service.RemoveUpvote(s.ctx, &EventActionInput{Token: alice, EventID: event.ID}))
	s.ErrorIs(s.service.RemoveUpvote(s.ctx, &EventActionInput{Token: alice, EventID: event.ID}), upvotes.ErrUpvoteNotFound)

	_, err = s.service.Upvote(s.ctx, &EventActionInput{Token: alice, EventID: "missing"})
	s.ErrorIs(err, events.ErrEventNotFound)
}

func (s *OrchestratorTestSuite) TestInvitationScenario() {
	host, _ := s.login("host")
	alice, aliceID := s.login("alice")
	bob, _ := s.login("bob")
	event := s.createEvent(host, 5)

	_, err := s.service.Invite(s.ctx, &InviteInput{Token: host, EventID: event.ID, To: "nobody"})
	s.ErrorIs(err, accounts.ErrUserNotFound)

	invitation, err := s.service.Invite(s.ctx, &InviteInput{Token: host, EventID: event.ID, To: aliceID})
	s.Require().NoError(err)
	s.Equal(models.InvitationStatusPending, invitation.Status)

	_, err = s.service.AcceptInvitation(s.ctx, &InvitationActionInput{Token: bob, InvitationID: invitation.ID})
	s.ErrorIs(err, ErrNotRecipient)

	_, err = s.service.AcceptInvitation(s.ctx, &InvitationActionInput{Token: alice, InvitationID: "missing"})
	s.ErrorIs(err, invitations.ErrInvitationNotFound)

	accepted, err := s.service.AcceptInvitation(s.ctx, &InvitationActionInput{Token: alice, InvitationID: invitation.ID})
	s.Require().NoError(err)
	s.Equal(models.InvitationStatusAccepted, accepted.Status)

	// answers can be overwritten unless invitations are strict
	rejected, err := s.service.RejectInvitation(s.ctx, &InvitationActionInput{Token: alice, InvitationID: invitation.ID})
	s.Require().NoError(err)
	s.Equal(models.InvitationStatusRejected, rejected.Status)

	received, err := s.service.ListInvitations(s.ctx, &ListInvitationsInput{Token: alice})
	s.Require().NoError(err)
	s.Len(received, 1)

	sent, err := s.service.ListInvitations(s.ctx, &ListInvitationsInput{Token: host, Sent: true})
	s.Require().NoError(err)
	s.Len(sent, 1)
}

func (s *OrchestratorTestSuite) TestPostScenario() {
	alice, aliceID := s.login("alice")
	bob, _ := s.login("bob")

	post, err := s.service.CreatePost(s.ctx, &CreatePostInput{Token: alice, Content: "Who's up for a hike?"})
	s.Require().NoError(err)
	s.Equal(aliceID, post.Author)

	content := "edited"
	_, err = s.service.UpdatePost(s.ctx, &UpdatePostInput{Token: bob, PostID: post.ID, Content: &content})
	s.ErrorIs(err, posts.ErrNotAuthor)

	updated, err := s.service.UpdatePost(s.ctx, &UpdatePostInput{Token: alice, PostID: post.ID, Content: &content})
	s.Require().NoError(err)
	s.Equal("edited", updated.Content)

	byAlice, err := s.service.ListPosts(s.ctx, &ListPostsInput{Author: "alice"})
	s.Require().NoError(err)
	s.Len(byAlice, 1)

	byBob, err := s.service.ListPosts(s.ctx, &ListPostsInput{Author: "bob"})
	s.Require().NoError(err)
	s.Empty(byBob)

	s.ErrorIs(s.service.DeletePost(s.ctx, &PostActionInput{Token: bob, PostID: post.ID}), posts.ErrNotAuthor)
	s.Require().NoError(s.service.DeletePost(s.ctx, &PostActionInput{Token: alice, PostID: post.ID}))
}

func (s *OrchestratorTestSuite) TestActivityIsPublishedAfterCommit() {
	host, _ := s.login("host")
	alice, _ := s.login("alice")
	event := s.createEvent(host, 1)

	_, err := s.service.RSVP(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.Require().NoError(err)
	_, err = s.service.RSVP(s.ctx, &EventActionInput{Token: alice, EventID: event.ID})
	s.Require().Error(err)

	s.Equal([]models.ActivityAction{
		models.ActivityCreateEvent,
		models.ActivityRSVP,
	}, s.published.actions())
}
