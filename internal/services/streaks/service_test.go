package streaks

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/moodmeet/internal/common/clock/mocks"
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store/storetest"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StreakServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	service   Service
	ctx       context.Context

	day time.Time
}

func (s *StreakServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.day = time.Date(2025, 4, 19, 18, 30, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.day).AnyTimes()

	backend := storetest.NewRedis(s.T()).Backend(s.T())
	svc, err := New(&Config{
		Streaks: storetest.Collection[models.Streak](s.T(), backend, "streaks", s.mockClock),
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestStreakServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StreakServiceTestSuite))
}

func (s *StreakServiceTestSuite) attend(when time.Time) *models.Streak {
	streak, err := s.service.AttendEvent(s.ctx, &AttendEventInput{UserID: "alice", When: when})
	s.Require().NoError(err)
	return streak
}

func (s *StreakServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilStreaks)
}

func (s *StreakServiceTestSuite) TestGetWithoutHistory() {
	streak, err := s.service.Get(s.ctx, &GetInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(0, streak.Count)
	s.Nil(streak.LastAttended)
}

func (s *StreakServiceTestSuite) TestConsecutiveDaysIncrement() {
	for i := 0; i < 4; i++ {
		streak := s.attend(s.day.AddDate(0, 0, i))
		s.Equal(i+1, streak.Count)
	}

	streak, err := s.service.Get(s.ctx, &GetInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(4, streak.Count)
	s.True(streak.LastAttended.Equal(s.day.AddDate(0, 0, 3)))
}

func (s *StreakServiceTestSuite) TestDayBoundaryNotElapsedHours() {
	s.attend(time.Date(2025, 4, 19, 8, 0, 0, 0, time.UTC))

	// 39 hours later, on the next calendar day
	streak := s.attend(time.Date(2025, 4, 20, 23, 0, 0, 0, time.UTC))
	s.Equal(2, streak.Count)

	// only 25 hours later, but the 21st was skipped
	streak = s.attend(time.Date(2025, 4, 22, 0, 30, 0, 0, time.UTC))
	s.Equal(1, streak.Count)
}

func (s *StreakServiceTestSuite) TestGapRestartsAtOne() {
	s.attend(s.day)
	s.attend(s.day.AddDate(0, 0, 1))

	streak := s.attend(s.day.AddDate(0, 0, 3))
	s.Equal(1, streak.Count)
}

func (s *StreakServiceTestSuite) TestBackdatedAttendanceDoesNotExtend() {
	s.attend(s.day.AddDate(0, 0, 10))

	streak := s.attend(s.day)
	s.Equal(1, streak.Count)
	s.True(streak.LastAttended.Equal(s.day.AddDate(0, 0, 10)))

	streak, err := s.service.Get(s.ctx, &GetInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(1, streak.Count)
	s.True(streak.LastAttended.Equal(s.day.AddDate(0, 0, 10)))
}

func (s *StreakServiceTestSuite) TestEarlierSameDayKeepsLatestDate() {
	late := time.Date(2025, 4, 19, 21, 0, 0, 0, time.UTC)
	s.attend(late)

	streak := s.attend(time.Date(2025, 4, 19, 9, 0, 0, 0, time.UTC))
	s.Equal(2, streak.Count)
	s.True(streak.LastAttended.Equal(late))
}

func (s *StreakServiceTestSuite) TestMissedEventResetsToZero() {
	s.attend(s.day)
	s.attend(s.day.AddDate(0, 0, 1))

	streak, err := s.service.MissedEvent(s.ctx, &MissedEventInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal(0, streak.Count)
	s.True(streak.LastAttended.Equal(s.day.AddDate(0, 0, 1)))

	// attending the next day continues from zero
	streak = s.attend(s.day.AddDate(0, 0, 2))
	s.Equal(1, streak.Count)
}

func (s *StreakServiceTestSuite) TestMissedEventWithoutHistory() {
	streak, err := s.service.MissedEvent(s.ctx, &MissedEventInput{UserID: "bob"})
	s.Require().NoError(err)
	s.Equal(0, streak.Count)
	s.Nil(streak.LastAttended)
}

func (s *StreakServiceTestSuite) TestCustomPeriod() {
	backend := storetest.NewRedis(s.T()).Backend(s.T())
	svc, err := New(&Config{
		Streaks: storetest.Collection[models.Streak](s.T(), backend, "streaks", s.mockClock),
		Period:  time.Hour,
	})
	s.Require().NoError(err)

	start := time.Date(2025, 4, 19, 10, 15, 0, 0, time.UTC)
	_, err = svc.AttendEvent(s.ctx, &AttendEventInput{UserID: "alice", When: start})
	s.Require().NoError(err)

	streak, err := svc.AttendEvent(s.ctx, &AttendEventInput{UserID: "alice", When: start.Add(time.Hour)})
	s.Require().NoError(err)
	s.Equal(2, streak.Count)

	streak, err = svc.AttendEvent(s.ctx, &AttendEventInput{UserID: "alice", When: start.Add(3 * time.Hour)})
	s.Require().NoError(err)
	s.Equal(1, streak.Count)
}
