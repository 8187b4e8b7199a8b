package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/events"
	"github.com/KirkDiggler/moodmeet/internal/services/orchestrator"
	"github.com/KirkDiggler/moodmeet/internal/services/orchestrator/mocks"
	"github.com/KirkDiggler/moodmeet/internal/services/rsvps"
	"github.com/KirkDiggler/moodmeet/internal/services/sessions"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockOrchestrator *mocks.MockService
	handler          *Handler
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockOrchestrator = mocks.NewMockService(s.mockCtrl)

	h, err := New(&Config{Orchestrator: s.mockOrchestrator})
	s.Require().NoError(err)
	s.handler = h
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) errorOf(rec *httptest.ResponseRecorder) errorBody {
	var body errorBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *HandlerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestRSVPUsesBearerToken() {
	rsvp := &models.RSVP{Base: models.Base{ID: "rsvp-1"}, User: "alice", Event: "event-1", Status: true}
	s.mockOrchestrator.EXPECT().
		RSVP(gomock.Any(), &orchestrator.EventActionInput{Token: "tok", EventID: "event-1"}).
		Return(rsvp, nil)

	rec := s.do(http.MethodPost, "/api/events/event-1/rsvp", "", "Authorization", "Bearer tok")
	s.Equal(http.StatusCreated, rec.Code)

	var got models.RSVP
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("rsvp-1", got.ID)
	s.True(got.Status)
}

func (s *HandlerTestSuite) TestGetRSVPByID() {
	s.mockOrchestrator.EXPECT().
		GetRSVP(gomock.Any(), &orchestrator.GetRSVPInput{RSVPID: "rsvp-1"}).
		Return(&models.RSVP{Base: models.Base{ID: "rsvp-1"}, User: "alice", Event: "event-1"}, nil)
	s.mockOrchestrator.EXPECT().
		GetRSVP(gomock.Any(), &orchestrator.GetRSVPInput{RSVPID: "missing"}).
		Return(nil, rsvps.ErrRSVPNotFound)

	rec := s.do(http.MethodGet, "/api/rsvps/rsvp-1", "")
	s.Equal(http.StatusOK, rec.Code)

	var got models.RSVP
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal("event-1", got.Event)

	rec = s.do(http.MethodGet, "/api/rsvps/missing", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestPasswordsLongerThan72AreRejected() {
	long := strings.Repeat("a", 73)

	rec := s.do(http.MethodPost, "/api/users", `{"username":"alice","password":"`+long+`"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.errorOf(rec).Msg, "password")

	rec = s.do(http.MethodPatch, "/api/users/password",
		`{"currentPassword":"pw","newPassword":"`+long+`"}`,
		"Authorization", "Bearer tok")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.errorOf(rec).Msg, "newPassword")
}

func (s *HandlerTestSuite) TestSessionCookieIsAccepted() {
	s.mockOrchestrator.EXPECT().
		CancelRSVP(gomock.Any(), &orchestrator.EventActionInput{Token: "from-cookie", EventID: "event-1"}).
		Return(&models.RSVP{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/events/event-1/rsvp", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "from-cookie"})
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestErrorKindsMapToStatus() {
	cases := []struct {
		err    error
		status int
		kind   string
	}{
		{events.ErrEventNotFound, http.StatusNotFound, "not_found"},
		{events.ErrEventFull, http.StatusConflict, "conflict"},
		{rsvps.ErrAlreadyRSVPd, http.StatusConflict, "conflict"},
		{orchestrator.ErrNotHost, http.StatusForbidden, "forbidden"},
		{sessions.ErrNotLoggedIn, http.StatusUnauthorized, "unauthenticated"},
		{events.ErrInvalidCapacity, http.StatusBadRequest, "invalid"},
	}

	for _, tc := range cases {
		s.mockOrchestrator.EXPECT().RSVP(gomock.Any(), gomock.Any()).Return(nil, tc.err)

		rec := s.do(http.MethodPost, "/api/events/event-1/rsvp", "")
		s.Equal(tc.status, rec.Code, tc.err.Error())

		body := s.errorOf(rec)
		s.Equal(tc.kind, body.Error)
		s.NotEmpty(body.Msg)
	}
}

func (s *HandlerTestSuite) TestInternalErrorsAreHidden() {
	s.mockOrchestrator.EXPECT().
		ListEvents(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("dial tcp 10.0.0.1:6379: connection refused"))

	rec := s.do(http.MethodGet, "/api/events", "")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("internal error", s.errorOf(rec).Msg)
}

func (s *HandlerTestSuite) TestCreateEventValidatesBody() {
	rec := s.do(http.MethodPost, "/api/events", `{"title":"Picnic","category":"food-drink","moodTag":"relaxed"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.errorOf(rec).Msg, "capacity")

	rec = s.do(http.MethodPost, "/api/events", `{"title":"Picnic","category":"food-drink","moodTag":"relaxed","capacity":-1}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/events", `{"title":"Picnic","bogus":true}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestCreateEventAllowsZeroCapacity() {
	s.mockOrchestrator.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *orchestrator.CreateEventInput) (*models.Event, error) {
			s.Equal(0, input.Capacity)
			s.Equal("tok", input.Token)
			return &models.Event{Base: models.Base{ID: "event-1"}, Title: input.Title}, nil
		})

	rec := s.do(http.MethodPost, "/api/events",
		`{"title":"Picnic","category":"food-drink","moodTag":"relaxed","capacity":0}`,
		"Authorization", "Bearer tok")
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *HandlerTestSuite) TestLogInSetsCookie() {
	s.mockOrchestrator.EXPECT().
		LogIn(gomock.Any(), &orchestrator.LogInInput{Username: "alice", Password: "pw"}).
		Return(&orchestrator.LogInOutput{Token: "new-token", User: &models.PublicUser{ID: "u1", Username: "alice"}}, nil)

	rec := s.do(http.MethodPost, "/api/login", `{"username":"alice","password":"pw"}`)
	s.Equal(http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	s.Require().Len(cookies, 1)
	s.Equal(SessionCookie, cookies[0].Name)
	s.Equal("new-token", cookies[0].Value)

	var body logInResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("new-token", body.Token)
}

func (s *HandlerTestSuite) TestMarkAttendanceRequiresAttendedFlag() {
	rec := s.do(http.MethodPatch, "/api/events/event-1/attendance", `{"userId":"alice"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	s.mockOrchestrator.EXPECT().
		MarkAttendance(gomock.Any(), &orchestrator.MarkAttendanceInput{
			Token:    "tok",
			EventID:  "event-1",
			UserID:   "alice",
			Attended: false,
		}).
		Return(&orchestrator.MarkAttendanceOutput{Streak: &models.Streak{UserID: "alice"}}, nil)

	rec = s.do(http.MethodPatch, "/api/events/event-1/attendance", `{"userId":"alice","attended":false}`,
		"Authorization", "Bearer tok")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestListEventsPassesFilters() {
	s.mockOrchestrator.EXPECT().
		ListEvents(gomock.Any(), &orchestrator.ListEventsInput{
			Status:  models.EventStatusUpcoming,
			MoodTag: "happy",
		}).
		Return([]*models.Event{}, nil)

	rec := s.do(http.MethodGet, "/api/events?status=upcoming&moodTag=happy", "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/events?status=someday", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestUpvoteRoutes() {
	s.mockOrchestrator.EXPECT().
		CountUpvotes(gomock.Any(), &orchestrator.CountUpvotesInput{EventID: "event-1"}).
		Return(3, nil)

	rec := s.do(http.MethodGet, "/api/upvotes/event-1", "")
	s.Equal(http.StatusOK, rec.Code)

	var body countResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(3, body.Count)
}

func (s *HandlerTestSuite) TestRecommendationsBody() {
	s.mockOrchestrator.EXPECT().
		RecommendEvents(gomock.Any(), &orchestrator.SessionInput{Token: "tok"}).
		Return(&orchestrator.RecommendEventsOutput{Mood: "happy", Fallback: true, Events: []*models.Event{{Title: "Picnic"}}}, nil)

	rec := s.do(http.MethodGet, "/api/recommendations", "", "Authorization", "Bearer tok")
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Mood     string          `json:"mood"`
		Fallback bool            `json:"fallback"`
		Events   []*models.Event `json:"events"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("happy", body.Mood)
	s.True(body.Fallback)
	s.Len(body.Events, 1)
}
