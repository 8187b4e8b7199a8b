package orchestrator

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/moodmeet/internal/common/apperrors"
	"github.com/KirkDiggler/moodmeet/internal/common/clock"
	"github.com/KirkDiggler/moodmeet/internal/logger"
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
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/KirkDiggler/moodmeet/internal/services/orchestrator"

type service struct {
	accounts    accounts.Service
	sessions    sessions.Service
	events      events.Service
	rsvps       rsvps.Service
	tagging     tagging.Service
	streaks     streaks.Service
	upvotes     upvotes.Service
	invitations invitations.Service
	posts       posts.Service

	clock     clock.Clock
	locker    store.Locker
	publisher activity.Publisher
	logger    *slog.Logger
	tracer    trace.Tracer
}

// New creates a new orchestrator
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	switch {
	case cfg.Accounts == nil:
		return nil, ErrNilAccounts
	case cfg.Sessions == nil:
		return nil, ErrNilSessions
	case cfg.Events == nil:
		return nil, ErrNilEvents
	case cfg.RSVPs == nil:
		return nil, ErrNilRSVPs
	case cfg.Tagging == nil:
		return nil, ErrNilTagging
	case cfg.Streaks == nil:
		return nil, ErrNilStreaks
	case cfg.Upvotes == nil:
		return nil, ErrNilUpvotes
	case cfg.Invitations == nil:
		return nil, ErrNilInvitations
	case cfg.Posts == nil:
		return nil, ErrNilPosts
	case cfg.Clock == nil:
		return nil, ErrNilClock
	}

	var locker store.Locker = store.NoopLocker{}
	if cfg.Locker != nil {
		locker = cfg.Locker
	}

	var publisher activity.Publisher = activity.Noop{}
	if cfg.Publisher != nil {
		publisher = cfg.Publisher
	}

	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &service{
		accounts:    cfg.Accounts,
		sessions:    cfg.Sessions,
		events:      cfg.Events,
		rsvps:       cfg.RSVPs,
		tagging:     cfg.Tagging,
		streaks:     cfg.Streaks,
		upvotes:     cfg.Upvotes,
		invitations: cfg.Invitations,
		posts:       cfg.Posts,
		clock:       cfg.Clock,
		locker:      locker,
		publisher:   publisher,
		logger:      logger.OrDefault(cfg.Logger),
		tracer:      tracer,
	}, nil
}

// start opens a span for a composite action. The returned func ends it,
// recording *errp when set.
func (s *service) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, func(errp *error)) {
	ctx, span := s.tracer.Start(ctx, "orchestrator."+op, trace.WithAttributes(attrs...))

	return ctx, func(errp *error) {
		if err := *errp; err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, apperrors.Message(err))
			s.logger.DebugContext(ctx, "composite action failed",
				"op", op,
				"kind", apperrors.KindOf(err),
				"error", err,
			)
		}
		span.End()
	}
}

// caller resolves the session token to a user ID
func (s *service) caller(ctx context.Context, token string) (string, error) {
	userID, err := s.sessions.GetUser(ctx, &sessions.GetUserInput{Token: token})
	if err != nil {
		return "", err
	}

	trace.SpanFromContext(ctx).SetAttributes(attribute.String("user_id", userID))
	return userID, nil
}

// hostedEvent loads an event and checks the user hosts it
func (s *service) hostedEvent(ctx context.Context, userID, eventID string) (*models.Event, error) {
	event, err := s.events.Get(ctx, &events.GetInput{EventID: eventID})
	if err != nil {
		return nil, err
	}

	if !event.IsHost(userID) {
		return nil, ErrNotHost
	}

	return event, nil
}

// lockEvent holds the event's lock until the returned func is called
func (s *service) lockEvent(ctx context.Context, eventID string) (func(), error) {
	release, err := s.locker.Acquire(ctx, "event:"+eventID)
	if err != nil {
		return nil, err
	}

	return func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.logger.WarnContext(ctx, "failed to release event lock",
				"event_id", eventID,
				"error", err,
			)
		}
	}, nil
}

// publish announces a committed action. Failures are logged only.
func (s *service) publish(ctx context.Context, action models.ActivityAction, userID, eventID, subjectID string) {
	err := s.publisher.Publish(ctx, &models.Activity{
		Action:    action,
		UserID:    userID,
		EventID:   eventID,
		SubjectID: subjectID,
		At:        s.clock.Now(),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to publish activity",
			"op", string(action),
			"user_id", userID,
			"event_id", eventID,
			"error", err,
		)
	}
}

func publicUsers(users []*models.User) []*models.PublicUser {
	out := make([]*models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}
