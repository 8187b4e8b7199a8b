package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/moodmeet/internal/common/apperrors"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service *service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := New(&Config{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNewRequiresConfig() {
	_, err := New(nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestRSVPMessageNamesMemberAndEvent() {
	for range 20 {
		out, err := s.service.GetRSVPMessage(s.ctx, &GetRSVPMessageInput{
			Name:       "alice",
			EventTitle: "Picnic",
			SpotsLeft:  3,
		})
		s.Require().NoError(err)
		s.Contains(out.Message, "alice")
		s.Contains(out.Message, "Picnic")
		s.Contains(out.Message, "3 spots left.")
		s.Equal(ToneFunny, out.Tone)
	}
}

func (s *MessagingServiceTestSuite) TestRSVPMessageLastSpot() {
	out, err := s.service.GetRSVPMessage(s.ctx, &GetRSVPMessageInput{
		Name:       "alice",
		EventTitle: "Picnic",
		SpotsLeft:  0,
	})
	s.Require().NoError(err)
	s.NotContains(out.Message, "spots left")
	s.Contains(out.Message, "alice")
}

func (s *MessagingServiceTestSuite) TestRSVPMessageSingleSpot() {
	out, err := s.service.GetRSVPMessage(s.ctx, &GetRSVPMessageInput{
		Name:          "alice",
		EventTitle:    "Picnic",
		SpotsLeft:     1,
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)
	s.Equal("alice RSVP'd to Picnic. 1 spot left.", out.Message)
}

func (s *MessagingServiceTestSuite) TestCanceledRSVPNeutral() {
	out, err := s.service.GetRSVPMessage(s.ctx, &GetRSVPMessageInput{
		Name:          "alice",
		EventTitle:    "Picnic",
		Canceled:      true,
		SpotsLeft:     4,
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)
	s.Equal("alice canceled their RSVP to Picnic.", out.Message)
	s.Equal(ToneNeutral, out.Tone)
}

func (s *MessagingServiceTestSuite) TestStreakMessageScalesWithCount() {
	cases := []struct {
		count    int
		contains string
	}{
		{0, "zero"},
		{2, "2"},
		{5, "5"},
		{12, "12"},
	}

	for _, tc := range cases {
		out, err := s.service.GetStreakMessage(s.ctx, &GetStreakMessageInput{Name: "bob", Count: tc.count})
		s.Require().NoError(err)
		s.Contains(out.Message, "bob")
		s.Contains(out.Message, tc.contains)
		s.NotContains(out.Message, "%!")
	}
}

func (s *MessagingServiceTestSuite) TestErrorMessageNeutralIsStable() {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		Kind:          apperrors.KindInternal,
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)
	s.Equal("Something went wrong, try again later.", out.Message)
}

func (s *MessagingServiceTestSuite) TestSameSeedSameMessages() {
	other, err := New(&Config{Seed: 42})
	s.Require().NoError(err)

	for range 5 {
		input := &GetStreakMessageInput{Name: "bob", Count: 15}
		a, err := s.service.GetStreakMessage(s.ctx, input)
		s.Require().NoError(err)
		b, err := other.GetStreakMessage(s.ctx, input)
		s.Require().NoError(err)
		s.Equal(a.Message, b.Message)
	}
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.service.GetRSVPMessage(s.ctx, nil)
	s.Error(err)
	_, err = s.service.GetStreakMessage(s.ctx, nil)
	s.Error(err)
	_, err = s.service.GetErrorMessage(s.ctx, nil)
	s.Error(err)
}
