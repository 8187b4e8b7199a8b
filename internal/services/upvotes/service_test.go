package upvotes

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

type UpvoteServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	service   Service
	ctx       context.Context
}

func (s *UpvoteServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.mockClock.EXPECT().Now().Return(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)).AnyTimes()

	backend := storetest.NewRedis(s.T()).Backend(s.T())
	svc, err := New(&Config{
		Upvotes: storetest.Collection[models.Upvote](s.T(), backend, "upvotes", s.mockClock),
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestUpvoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UpvoteServiceTestSuite))
}

func (s *UpvoteServiceTestSuite) TestUpvoteTwiceConflicts() {
	pair := &PairInput{UserID: "a", EventID: "e"}

	_, err := s.service.Add(s.ctx, pair)
	s.Require().NoError(err)

	_, err = s.service.Add(s.ctx, pair)
	s.ErrorIs(err, ErrAlreadyUpvoted)

	n, err := s.service.Count(s.ctx, &CountInput{EventID: "e"})
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *UpvoteServiceTestSuite) TestRemoveTwiceNotFound() {
	pair := &PairInput{UserID: "a", EventID: "e"}

	_, err := s.service.Add(s.ctx, pair)
	s.Require().NoError(err)

	s.Require().NoError(s.service.Remove(s.ctx, pair))
	s.ErrorIs(s.service.Remove(s.ctx, pair), ErrUpvoteNotFound)

	has, err := s.service.Has(s.ctx, pair)
	s.Require().NoError(err)
	s.False(has)
}

func (s *UpvoteServiceTestSuite) TestCountPerEvent() {
	for _, pair := range []*PairInput{
		{UserID: "a", EventID: "e1"},
		{UserID: "b", EventID: "e1"},
		{UserID: "a", EventID: "e2"},
	} {
		_, err := s.service.Add(s.ctx, pair)
		s.Require().NoError(err)
	}

	n, err := s.service.Count(s.ctx, &CountInput{EventID: "e1"})
	s.Require().NoError(err)
	s.Equal(2, n)

	n, err = s.service.Count(s.ctx, &CountInput{EventID: "none"})
	s.Require().NoError(err)
	s.Equal(0, n)
}

func (s *UpvoteServiceTestSuite) TestRequiresBothIDs() {
	_, err := s.service.Add(s.ctx, &PairInput{UserID: "a"})
	s.ErrorIs(err, ErrMissingPairPart)
}
