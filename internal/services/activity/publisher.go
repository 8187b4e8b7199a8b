package activity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/redis/rueidis"
)

// DefaultStream is the stream key used when none is configured
const DefaultStream = "moodmeet:activity"

type streamPublisher struct {
	client rueidis.Client
	stream string
	maxLen int64
}

// New creates a publisher that appends each activity to a Redis stream
func New(cfg *Config) (*streamPublisher, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Client == nil {
		return nil, ErrNilClient
	}

	stream := cfg.Stream
	if stream == "" {
		stream = DefaultStream
	}

	return &streamPublisher{
		client: cfg.Client,
		stream: stream,
		maxLen: cfg.MaxLen,
	}, nil
}

// Publish appends the activity to the stream
func (p *streamPublisher) Publish(ctx context.Context, a *models.Activity) error {
	if a == nil {
		return errors.New("activity cannot be nil")
	}

	key := p.client.B().Xadd().Key(p.stream)
	var cmd rueidis.Completed
	if p.maxLen > 0 {
		cmd = key.Maxlen().Almost().Threshold(strconv.FormatInt(p.maxLen, 10)).Id("*").
			FieldValue().
			FieldValue("action", string(a.Action)).
			FieldValue("user_id", a.UserID).
			FieldValue("event_id", a.EventID).
			FieldValue("subject_id", a.SubjectID).
			FieldValue("at", a.At.UTC().Format(time.RFC3339Nano)).
			Build()
	} else {
		cmd = key.Id("*").
			FieldValue().
			FieldValue("action", string(a.Action)).
			FieldValue("user_id", a.UserID).
			FieldValue("event_id", a.EventID).
			FieldValue("subject_id", a.SubjectID).
			FieldValue("at", a.At.UTC().Format(time.RFC3339Nano)).
			Build()
	}

	if err := p.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to publish %s activity: %w", a.Action, err)
	}

	return nil
}

// Close releases the underlying client
func (p *streamPublisher) Close() {
	p.client.Close()
}

// Noop discards every activity
type Noop struct{}

// Publish implements Publisher
func (Noop) Publish(context.Context, *models.Activity) error {
	return nil
}
