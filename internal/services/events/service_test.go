package events

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/moodmeet/internal/common/clock/mocks"
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
	"github.com/KirkDiggler/moodmeet/internal/store/storetest"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventsServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	events    store.Collection[models.Event]
	service   Service
	ctx       context.Context

	testTime time.Time
	tick     int
}

func (s *EventsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.tick = 0
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		s.tick++
		return s.testTime.Add(time.Duration(s.tick) * time.Millisecond)
	}).AnyTimes()

	backend := storetest.NewRedis(s.T()).Backend(s.T())
	s.events = storetest.Collection[models.Event](s.T(), backend, "events", s.mockClock)

	svc, err := New(&Config{Events: s.events})
	s.Require().NoError(err)
	s.service = svc
}

func TestEventsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventsServiceTestSuite))
}

func (s *EventsServiceTestSuite) createEvent(capacity int) *models.Event {
	event, err := s.service.Create(s.ctx, &CreateInput{
		Host:     "host",
		Title:    "Board games",
		Category: "games",
		MoodTag:  "happy",
		Capacity: capacity,
		Location: "Library",
		Date:     s.testTime.Add(48 * time.Hour),
	})
	s.Require().NoError(err)
	return event
}

func (s *EventsServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilEvents)
}

func (s *EventsServiceTestSuite) TestCreate() {
	event := s.createEvent(2)

	s.NotEmpty(event.ID)
	s.Equal(models.EventStatusUpcoming, event.Status)
	s.Equal([]string{"games"}, event.Tags)
	s.Equal([]string{"happy"}, event.MoodTags)
	s.Empty(event.Attendees)
	s.True(event.IsHost("host"))

	got, err := s.service.Get(s.ctx, &GetInput{EventID: event.ID})
	s.Require().NoError(err)
	s.Equal("Board games", got.Title)
	s.Equal(0, got.Details().Count)
}

func (s *EventsServiceTestSuite) TestCreateRejectsNegativeCapacity() {
	_, err := s.service.Create(s.ctx, &CreateInput{Host: "host", Capacity: -1})
	s.ErrorIs(err, ErrInvalidCapacity)
}

func (s *EventsServiceTestSuite) TestGetMissing() {
	_, err := s.service.Get(s.ctx, &GetInput{EventID: "missing"})
	s.ErrorIs(err, ErrEventNotFound)
}

func (s *EventsServiceTestSuite) TestAddAttendeeRespectsCapacity() {
	event := s.createEvent(1)

	got, err := s.service.AddAttendee(s.ctx, &AttendeeInput{EventID: event.ID, UserID: "a"})
	s.Require().NoError(err)
	s.Equal([]string{"a"}, got.Attendees)

	// the only seat is taken
	_, err = s.service.AddAttendee(s.ctx, &AttendeeInput{EventID: event.ID, UserID: "b"})
	s.ErrorIs(err, ErrEventFull)

	got, err = s.service.RemoveAttendee(s.ctx, &AttendeeInput{EventID: event.ID, UserID: "a"})
	s.Require().NoError(err)
	s.Empty(got.Attendees)

	got, err = s.service.AddAttendee(s.ctx, &AttendeeInput{EventID: event.ID, UserID: "b"})
	s.Require().NoError(err)
	s.Equal([]string{"b"}, got.Attendees)
}

func (s *EventsServiceTestSuite) TestAddAttendeeToCanceledEvent() {
	event := s.createEvent(5)
	_, err := s.service.SetStatus(s.ctx, &SetStatusInput{EventID: event.ID, Status: models.EventStatusCanceled})
	s.Require().NoError(err)

	_, err = s.service.AddAttendee(s.ctx, &AttendeeInput{EventID: event.ID, UserID: "a"})
	s.ErrorIs(err, ErrEventCanceled)
}

func (s *EventsServiceTestSuite) TestAddAttendeeZeroCapacity() {
	event := s.createEvent(0)

	_, err := s.service.AddAttendee(s.ctx, &AttendeeInput{EventID: event.ID, UserID: "a"})
	s.ErrorIs(err, ErrEventFull)
}

func (s *EventsServiceTestSuite) TestUpdateDetails() {
	event := s.createEvent(3)
	_, err := s.service.AddAttendee(s.ctx, &AttendeeInput{EventID: event.ID, UserID: "a"})
	s.Require().NoError(err)
	_, err = s.service.AddAttendee(s.ctx, &AttendeeInput{EventID: event.ID, UserID: "b"})
	s.Require().NoError(err)

	location := "Park"
	mood := "relaxed"
	got, err := s.service.UpdateDetails(s.ctx, &UpdateDetailsInput{
		EventID:  event.ID,
		Location: &location,
		MoodTag:  &mood,
	})
	s.Require().NoError(err)
	s.Equal("Park", got.Location)
	s.Equal("relaxed", got.MoodTag)
	s.Equal([]string{"happy", "relaxed"}, got.MoodTags)
	s.Equal("Board games", got.Title)

	tooSmall := 1
	_, err = s.service.UpdateDetails(s.ctx, &UpdateDetailsInput{EventID: event.ID, Capacity: &tooSmall})
	s.ErrorIs(err, ErrCapacityBelowAttendance)

	negative := -2
	_, err = s.service.UpdateDetails(s.ctx, &UpdateDetailsInput{EventID: event.ID, Capacity: &negative})
	s.ErrorIs(err, ErrInvalidCapacity)

	_, err = s.service.UpdateDetails(s.ctx, &UpdateDetailsInput{EventID: event.ID})
	s.ErrorIs(err, ErrNothingToUpdate)

	_, err = s.service.UpdateDetails(s.ctx, &UpdateDetailsInput{EventID: "missing", Location: &location})
	s.ErrorIs(err, ErrEventNotFound)
}

func (s *EventsServiceTestSuite) TestSetStatusTransitions() {
	testCases := []struct {
		name  string
		path  []models.EventStatus
		final models.EventStatus
		err   error
	}{
		{
			name:  "forward",
			path:  []models.EventStatus{models.EventStatusOngoing, models.EventStatusCompleted},
			final: models.EventStatusCompleted,
		},
		{
			name:  "skip ahead",
			path:  []models.EventStatus{models.EventStatusCompleted},
			final: models.EventStatusCompleted,
		},
		{
			name:  "cancel twice is a no-op",
			path:  []models.EventStatus{models.EventStatusCanceled, models.EventStatusCanceled},
			final: models.EventStatusCanceled,
		},
		{
			name:  "backwards",
			path:  []models.EventStatus{models.EventStatusOngoing, models.EventStatusUpcoming},
			final: models.EventStatusOngoing,
			err:   ErrInvalidTransition,
		},
		{
			name:  "cancel after completion",
			path:  []models.EventStatus{models.EventStatusCompleted, models.EventStatusCanceled},
			final: models.EventStatusCompleted,
			err:   ErrInvalidTransition,
		},
		{
			name:  "reopen canceled",
			path:  []models.EventStatus{models.EventStatusCanceled, models.EventStatusOngoing},
			final: models.EventStatusCanceled,
			err:   ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			event := s.createEvent(1)

			var err error
			for _, status := range tc.path {
				_, err = s.service.SetStatus(s.ctx, &SetStatusInput{EventID: event.ID, Status: status})
				if err != nil {
					break
				}
			}

			if tc.err != nil {
				s.ErrorIs(err, tc.err)
			} else {
				s.NoError(err)
			}

			got, err := s.service.Get(s.ctx, &GetInput{EventID: event.ID})
			s.Require().NoError(err)
			s.Equal(tc.final, got.Status)
		})
	}
}

func (s *EventsServiceTestSuite) TestSetStatusRejectsUnknownStatus() {
	event := s.createEvent(1)

	_, err := s.service.SetStatus(s.ctx, &SetStatusInput{EventID: event.ID, Status: "postponed"})
	s.ErrorIs(err, ErrInvalidStatus)
}

func (s *EventsServiceTestSuite) TestAddTag() {
	event := s.createEvent(1)

	got, err := s.service.AddTag(s.ctx, &AddTagInput{EventID: event.ID, TagID: "outdoors"})
	s.Require().NoError(err)
	s.Equal([]string{"games", "outdoors"}, got.Tags)
	s.Equal([]string{"happy"}, got.MoodTags)

	got, err = s.service.AddTag(s.ctx, &AddTagInput{EventID: event.ID, TagID: "excited", IsMood: true})
	s.Require().NoError(err)
	s.Equal([]string{"games", "outdoors", "excited"}, got.Tags)
	s.Equal([]string{"happy", "excited"}, got.MoodTags)

	// tagging again changes nothing
	again, err := s.service.AddTag(s.ctx, &AddTagInput{EventID: event.ID, TagID: "excited", IsMood: true})
	s.Require().NoError(err)
	s.Equal(got.Tags, again.Tags)
	s.Equal(got.MoodTags, again.MoodTags)
}

func (s *EventsServiceTestSuite) TestList() {
	games := s.createEvent(1)
	hike, err := s.service.Create(s.ctx, &CreateInput{Host: "other", Category: "outdoors", MoodTag: "relaxed", Capacity: 4})
	s.Require().NoError(err)
	_, err = s.service.AddTag(s.ctx, &AddTagInput{EventID: hike.ID, TagID: "happy", IsMood: true})
	s.Require().NoError(err)

	all, err := s.service.List(s.ctx, &ListInput{})
	s.Require().NoError(err)
	s.Len(all, 2)

	happy, err := s.service.List(s.ctx, &ListInput{MoodTag: "happy"})
	s.Require().NoError(err)
	s.Len(happy, 2)

	relaxed, err := s.service.List(s.ctx, &ListInput{MoodTag: "relaxed"})
	s.Require().NoError(err)
	s.Require().Len(relaxed, 1)
	s.Equal(hike.ID, relaxed[0].ID)

	hosted, err := s.service.List(s.ctx, &ListInput{Host: "host"})
	s.Require().NoError(err)
	s.Require().Len(hosted, 1)
	s.Equal(games.ID, hosted[0].ID)
}

func (s *EventsServiceTestSuite) TestMarkAttendanceOnce() {
	event := s.createEvent(1)

	out, err := s.service.MarkAttendance(s.ctx, &MarkAttendanceInput{EventID: event.ID, UserID: "a"})
	s.Require().NoError(err)
	s.True(out.FirstMark)
	s.Equal([]string{"a"}, out.Event.AttendanceMarked)

	out, err = s.service.MarkAttendance(s.ctx, &MarkAttendanceInput{EventID: event.ID, UserID: "a"})
	s.Require().NoError(err)
	s.False(out.FirstMark)
}

func (s *EventsServiceTestSuite) TestAddAttendeeKeepsOtherWrites() {
	event := s.createEvent(2)

	n, err := s.events.PartialUpdate(s.ctx, store.ByID(event.ID), store.Patch{"attendees": []string{"early"}})
	s.Require().NoError(err)
	s.Equal(1, n)

	got, err := s.service.AddAttendee(s.ctx, &AttendeeInput{EventID: event.ID, UserID: "late"})
	s.Require().NoError(err)
	s.Equal([]string{"early", "late"}, got.Attendees)
}
