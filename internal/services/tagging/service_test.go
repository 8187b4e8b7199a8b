package tagging

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

type TaggingServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	userMoods store.Collection[models.UserMood]
	service   Service
	ctx       context.Context

	vocab *Vocabulary
}

func (s *TaggingServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.mockClock.EXPECT().Now().Return(time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)).AnyTimes()

	backend := storetest.NewRedis(s.T()).Backend(s.T())
	s.userMoods = storetest.Collection[models.UserMood](s.T(), backend, "userMoods", s.mockClock)

	svc, err := New(&Config{
		Tags:       storetest.Collection[models.Tag](s.T(), backend, "tags", s.mockClock),
		Moods:      storetest.Collection[models.Mood](s.T(), backend, "moods", s.mockClock),
		Categories: storetest.Collection[models.Category](s.T(), backend, "categories", s.mockClock),
		UserMoods:  s.userMoods,
	})
	s.Require().NoError(err)
	s.service = svc

	s.vocab = &Vocabulary{
		Moods:      []Term{{ID: "happy", Name: "Happy"}, {ID: "sad", Name: "Sad"}},
		Categories: []Term{{ID: "games", Name: "Games"}},
	}
}

func TestTaggingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaggingServiceTestSuite))
}

func (s *TaggingServiceTestSuite) seed() {
	_, err := s.service.Seed(s.ctx, &SeedInput{Vocabulary: s.vocab})
	s.Require().NoError(err)
}

func (s *TaggingServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilTags)
}

func (s *TaggingServiceTestSuite) TestSeedIsIdempotent() {
	out, err := s.service.Seed(s.ctx, &SeedInput{Vocabulary: s.vocab})
	s.Require().NoError(err)
	s.Equal(2, out.MoodsCreated)
	s.Equal(1, out.CategoriesCreated)

	out, err = s.service.Seed(s.ctx, &SeedInput{Vocabulary: s.vocab})
	s.Require().NoError(err)
	s.Equal(0, out.MoodsCreated)
	s.Equal(0, out.CategoriesCreated)

	moods, err := s.service.ListMoods(s.ctx)
	s.Require().NoError(err)
	s.Len(moods, 2)

	categories, err := s.service.ListCategories(s.ctx)
	s.Require().NoError(err)
	s.Len(categories, 1)

	// moods and categories are tags too
	tags, err := s.service.ListTags(s.ctx)
	s.Require().NoError(err)
	s.Len(tags, 3)
}

func (s *TaggingServiceTestSuite) TestSeedFillsInAfterPartialRun() {
	// an earlier run stopped after the first mood
	_, err := s.service.Seed(s.ctx, &SeedInput{Vocabulary: &Vocabulary{
		Moods: []Term{{ID: "happy", Name: "Happy"}},
	}})
	s.Require().NoError(err)

	out, err := s.service.Seed(s.ctx, &SeedInput{Vocabulary: s.vocab})
	s.Require().NoError(err)
	s.Equal(1, out.MoodsCreated)
	s.Equal(1, out.CategoriesCreated)

	moods, err := s.service.ListMoods(s.ctx)
	s.Require().NoError(err)
	s.Len(moods, 2)

	tags, err := s.service.ListTags(s.ctx)
	s.Require().NoError(err)
	s.Len(tags, 3)
}

func (s *TaggingServiceTestSuite) TestSeedDefaultVocabulary() {
	out, err := s.service.Seed(s.ctx, nil)
	s.Require().NoError(err)
	s.Equal(10, out.MoodsCreated)
	s.Equal(20, out.CategoriesCreated)
}

func (s *TaggingServiceTestSuite) TestIsMoodAndIsCategory() {
	s.seed()

	isMood, err := s.service.IsMood(s.ctx, "happy")
	s.Require().NoError(err)
	s.True(isMood)

	isMood, err = s.service.IsMood(s.ctx, "games")
	s.Require().NoError(err)
	s.False(isMood)

	isCategory, err := s.service.IsCategory(s.ctx, "games")
	s.Require().NoError(err)
	s.True(isCategory)
}

func (s *TaggingServiceTestSuite) TestCreateAndGetTag() {
	tag, err := s.service.CreateTag(s.ctx, &CreateTagInput{Name: " outdoors "})
	s.Require().NoError(err)
	s.Equal("outdoors", tag.Name)

	got, err := s.service.GetTag(s.ctx, &GetTagInput{TagID: tag.ID})
	s.Require().NoError(err)
	s.Equal(tag.ID, got.ID)

	_, err = s.service.CreateTag(s.ctx, &CreateTagInput{Name: "outdoors"})
	s.ErrorIs(err, ErrTagExists)

	_, err = s.service.CreateTag(s.ctx, &CreateTagInput{Name: ""})
	s.ErrorIs(err, ErrTagNameRequired)

	_, err = s.service.GetTag(s.ctx, &GetTagInput{TagID: "missing"})
	s.ErrorIs(err, ErrTagNotFound)
}

func (s *TaggingServiceTestSuite) TestSelectMoodUpserts() {
	s.seed()

	_, err := s.service.GetUserMood(s.ctx, &GetUserMoodInput{UserID: "alice"})
	s.ErrorIs(err, ErrNoMoodSelected)

	_, err = s.service.SelectMood(s.ctx, &SelectMoodInput{UserID: "alice", MoodID: "happy"})
	s.Require().NoError(err)

	selection, err := s.service.SelectMood(s.ctx, &SelectMoodInput{UserID: "alice", MoodID: "sad"})
	s.Require().NoError(err)
	s.Equal("sad", selection.Mood)

	got, err := s.service.GetUserMood(s.ctx, &GetUserMoodInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal("sad", got.Mood)

	n, err := s.userMoods.Count(s.ctx, store.Filter{"userId": "alice"})
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *TaggingServiceTestSuite) TestSelectUnknownMood() {
	s.seed()

	_, err := s.service.SelectMood(s.ctx, &SelectMoodInput{UserID: "alice", MoodID: "games"})
	s.ErrorIs(err, ErrMoodNotFound)
}
