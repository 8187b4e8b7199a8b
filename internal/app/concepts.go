// Package app opens every concept over one storage backend.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/moodmeet/internal/common/clock"
	"github.com/KirkDiggler/moodmeet/internal/common/uuid"
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/accounts"
	"github.com/KirkDiggler/moodmeet/internal/services/events"
	"github.com/KirkDiggler/moodmeet/internal/services/invitations"
	"github.com/KirkDiggler/moodmeet/internal/services/posts"
	"github.com/KirkDiggler/moodmeet/internal/services/rsvps"
	"github.com/KirkDiggler/moodmeet/internal/services/sessions"
	"github.com/KirkDiggler/moodmeet/internal/services/streaks"
	"github.com/KirkDiggler/moodmeet/internal/services/tagging"
	"github.com/KirkDiggler/moodmeet/internal/services/upvotes"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

// Config holds what every concept shares
type Config struct {
	Backend       store.Backend
	Clock         clock.Clock
	UUIDGenerator uuid.Generator

	// StreakPeriod is the attendance window, 24h when zero
	StreakPeriod time.Duration

	// StrictInvitations makes answered invitations final
	StrictInvitations bool

	// BcryptCost is passed to the accounts concept
	BcryptCost int
}

// Concepts holds one service per concept
type Concepts struct {
	Accounts    accounts.Service
	Sessions    sessions.Service
	Events      events.Service
	RSVPs       rsvps.Service
	Tagging     tagging.Service
	Streaks     streaks.Service
	Upvotes     upvotes.Service
	Invitations invitations.Service
	Posts       posts.Service
}

// NewConcepts opens the collections and builds the concept services
func NewConcepts(cfg *Config) (*Concepts, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Backend == nil {
		return nil, errors.New("backend cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.New()
	}

	o := &opener{backend: cfg.Backend, clock: clk, uuid: ids}
	users := open[models.User](o, "users")
	sessionDocs := open[models.Session](o, "sessions")
	eventDocs := open[models.Event](o, "events")
	rsvpDocs := open[models.RSVP](o, "rsvps")
	tags := open[models.Tag](o, "tags")
	moods := open[models.Mood](o, "moods")
	categories := open[models.Category](o, "categories")
	userMoods := open[models.UserMood](o, "userMoods")
	streakDocs := open[models.Streak](o, "streaks")
	upvoteDocs := open[models.Upvote](o, "upvotes")
	invitationDocs := open[models.Invitation](o, "invitations")
	postDocs := open[models.Post](o, "posts")
	if o.err != nil {
		return nil, o.err
	}

	c := &Concepts{}
	var err error

	if c.Accounts, err = accounts.New(&accounts.Config{
		Users:         users,
		UUIDGenerator: ids,
		BcryptCost:    cfg.BcryptCost,
	}); err != nil {
		return nil, fmt.Errorf("accounts: %w", err)
	}

	if c.Sessions, err = sessions.New(&sessions.Config{
		Sessions:      sessionDocs,
		UUIDGenerator: ids,
	}); err != nil {
		return nil, fmt.Errorf("sessions: %w", err)
	}

	if c.Events, err = events.New(&events.Config{Events: eventDocs}); err != nil {
		return nil, fmt.Errorf("events: %w", err)
	}

	if c.RSVPs, err = rsvps.New(&rsvps.Config{RSVPs: rsvpDocs}); err != nil {
		return nil, fmt.Errorf("rsvps: %w", err)
	}

	if c.Tagging, err = tagging.New(&tagging.Config{
		Tags:       tags,
		Moods:      moods,
		Categories: categories,
		UserMoods:  userMoods,
	}); err != nil {
		return nil, fmt.Errorf("tagging: %w", err)
	}

	if c.Streaks, err = streaks.New(&streaks.Config{
		Streaks: streakDocs,
		Period:  cfg.StreakPeriod,
	}); err != nil {
		return nil, fmt.Errorf("streaks: %w", err)
	}

	if c.Upvotes, err = upvotes.New(&upvotes.Config{Upvotes: upvoteDocs}); err != nil {
		return nil, fmt.Errorf("upvotes: %w", err)
	}

	if c.Invitations, err = invitations.New(&invitations.Config{
		Invitations: invitationDocs,
		Strict:      cfg.StrictInvitations,
	}); err != nil {
		return nil, fmt.Errorf("invitations: %w", err)
	}

	if c.Posts, err = posts.New(&posts.Config{Posts: postDocs}); err != nil {
		return nil, fmt.Errorf("posts: %w", err)
	}

	return c, nil
}

// opener keeps the first collection error so the opens above read flat
type opener struct {
	backend store.Backend
	clock   clock.Clock
	uuid    uuid.Generator
	err     error
}

func open[T any, PT store.Document[T]](o *opener, name string) store.Collection[T] {
	if o.err != nil {
		return nil
	}

	c, err := store.New[T, PT](&store.Config{
		Backend:       o.backend,
		Name:          name,
		Clock:         o.clock,
		UUIDGenerator: o.uuid,
	})
	if err != nil {
		o.err = fmt.Errorf("failed to open %s: %w", name, err)
		return nil
	}

	return c
}
