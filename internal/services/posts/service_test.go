package posts

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

type PostServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	service   Service
	ctx       context.Context
}

func (s *PostServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.mockClock.EXPECT().Now().Return(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)).AnyTimes()

	backend := storetest.NewRedis(s.T()).Backend(s.T())
	svc, err := New(&Config{
		Posts: storetest.Collection[models.Post](s.T(), backend, "posts", s.mockClock),
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestPostServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostServiceTestSuite))
}

func (s *PostServiceTestSuite) TestCreateAndGet() {
	post, err := s.service.Create(s.ctx, &CreateInput{
		Author:  "alice",
		Content: "See you at the park",
		Options: &models.PostOptions{BackgroundColor: "#ffcc00"},
	})
	s.Require().NoError(err)

	got, err := s.service.Get(s.ctx, &GetInput{PostID: post.ID})
	s.Require().NoError(err)
	s.Equal("See you at the park", got.Content)
	s.Require().NotNil(got.Options)
	s.Equal("#ffcc00", got.Options.BackgroundColor)

	_, err = s.service.Create(s.ctx, &CreateInput{Author: "alice", Content: "   "})
	s.ErrorIs(err, ErrContentRequired)
}

func (s *PostServiceTestSuite) TestUpdate() {
	post, err := s.service.Create(s.ctx, &CreateInput{Author: "alice", Content: "draft"})
	s.Require().NoError(err)

	content := "final"
	got, err := s.service.Update(s.ctx, &UpdateInput{PostID: post.ID, Content: &content})
	s.Require().NoError(err)
	s.Equal("final", got.Content)
	s.Nil(got.Options)

	got, err = s.service.Update(s.ctx, &UpdateInput{PostID: post.ID, Options: &models.PostOptions{BackgroundColor: "blue"}})
	s.Require().NoError(err)
	s.Equal("final", got.Content)
	s.Equal("blue", got.Options.BackgroundColor)

	_, err = s.service.Update(s.ctx, &UpdateInput{PostID: post.ID})
	s.ErrorIs(err, ErrNothingToUpdate)

	_, err = s.service.Update(s.ctx, &UpdateInput{PostID: "missing", Content: &content})
	s.ErrorIs(err, ErrPostNotFound)
}

func (s *PostServiceTestSuite) TestAssertAuthorAndDelete() {
	post, err := s.service.Create(s.ctx, &CreateInput{Author: "alice", Content: "hello"})
	s.Require().NoError(err)

	s.NoError(s.service.AssertAuthor(s.ctx, &AssertAuthorInput{PostID: post.ID, UserID: "alice"}))
	s.ErrorIs(s.service.AssertAuthor(s.ctx, &AssertAuthorInput{PostID: post.ID, UserID: "bob"}), ErrNotAuthor)

	s.Require().NoError(s.service.Delete(s.ctx, &DeleteInput{PostID: post.ID}))
	s.ErrorIs(s.service.Delete(s.ctx, &DeleteInput{PostID: post.ID}), ErrPostNotFound)
	s.ErrorIs(s.service.AssertAuthor(s.ctx, &AssertAuthorInput{PostID: post.ID, UserID: "alice"}), ErrPostNotFound)
}

func (s *PostServiceTestSuite) TestListByAuthor() {
	for _, author := range []string{"alice", "bob", "alice"} {
		_, err := s.service.Create(s.ctx, &CreateInput{Author: author, Content: "hi"})
		s.Require().NoError(err)
	}

	all, err := s.service.List(s.ctx, &ListInput{})
	s.Require().NoError(err)
	s.Len(all, 3)

	alice, err := s.service.List(s.ctx, &ListInput{Author: "alice"})
	s.Require().NoError(err)
	s.Len(alice, 2)
}
