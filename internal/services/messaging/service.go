package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/KirkDiggler/moodmeet/internal/common/apperrors"
)

type service struct {
	mu   sync.Mutex
	rand *rand.Rand
	tone MessageTone
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	tone := cfg.Tone
	if tone == "" {
		tone = ToneFunny
	}

	return &service{
		rand: rand.New(rand.NewPCG(seed, seed>>1|1)),
		tone: tone,
	}, nil
}

// GetRSVPMessage returns a message for an RSVP or its cancellation
func (s *service) GetRSVPMessage(ctx context.Context, input *GetRSVPMessageInput) (*GetRSVPMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := s.toneOf(input.PreferredTone)
	var messages []string

	switch {
	case input.Canceled && tone == ToneFunny:
		messages = []string{
			"%[1]s bailed on %[2]s. More snacks for everyone else.",
			"%[1]s is out of %[2]s. We'll tell them how it went. Maybe.",
			"%[1]s has left the guest list for %[2]s. The seat is still warm.",
		}
	case input.Canceled && tone == ToneEncouraging:
		messages = []string{
			"No worries %[1]s, there will be another one after %[2]s!",
			"%[1]s can't make %[2]s this time. Catch you at the next one!",
		}
	case input.Canceled:
		messages = []string{
			"%[1]s canceled their RSVP to %[2]s.",
		}
	case input.SpotsLeft == 0:
		messages = []string{
			"%[1]s grabbed the last spot at %[2]s!",
			"%[1]s squeezed into %[2]s just before the doors closed.",
			"That's a full house! %[1]s took the final seat at %[2]s.",
		}
	case tone == ToneFunny:
		messages = []string{
			"%[1]s is going to %[2]s. Act surprised when you see them.",
			"%[1]s said yes to %[2]s. Somebody warn the host.",
			"Another one! %[1]s is coming to %[2]s.",
			"%[1]s RSVP'd to %[2]s. It's basically a party now.",
		}
	case tone == ToneEncouraging:
		messages = []string{
			"Great choice %[1]s, %[2]s is going to be fun!",
			"%[1]s is in for %[2]s. See you there!",
		}
	default:
		messages = []string{
			"%[1]s RSVP'd to %[2]s.",
		}
	}

	message := fmt.Sprintf(s.pick(messages), input.Name, input.EventTitle)
	if !input.Canceled && input.SpotsLeft > 0 {
		message = fmt.Sprintf("%s %s", message, spotsLeft(input.SpotsLeft))
	}

	return &GetRSVPMessageOutput{Message: message, Tone: tone}, nil
}

func spotsLeft(n int) string {
	if n == 1 {
		return "1 spot left."
	}
	return fmt.Sprintf("%d spots left.", n)
}

// GetStreakMessage returns a message that fits the size of a streak
func (s *service) GetStreakMessage(ctx context.Context, input *GetStreakMessageInput) (*GetStreakMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := s.toneOf(input.PreferredTone)
	var messages []string

	switch {
	case input.Count == 0:
		messages = []string{
			"%[1]s has no streak yet. Every legend starts at zero.",
			"%[1]s is at zero. The next event is the perfect place to start.",
		}
	case input.Count < 3:
		messages = []string{
			"%[1]s is warming up with %[2]d in a row.",
			"%[1]s has a %[2]d-event streak going. Keep it alive!",
		}
	case input.Count < 10 || tone == ToneNeutral:
		messages = []string{
			"%[1]s is on fire with %[2]d in a row!",
			"%[2]d straight! %[1]s never misses.",
		}
	default:
		messages = []string{
			"%[1]s has shown up %[2]d times in a row. Do they even go home?",
			"%[2]d in a row. At this point %[1]s is part of the furniture.",
			"Bow down: %[1]s is on a %[2]d-event streak.",
		}
	}

	return &GetStreakMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.Name, input.Count),
		Tone:    tone,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := s.toneOf(input.PreferredTone)
	var messages []string

	switch input.Kind {
	case apperrors.KindNotFound:
		messages = []string{
			"Couldn't find that one.",
			"I looked everywhere. Nothing.",
		}
	case apperrors.KindForbidden:
		messages = []string{
			"That's not yours to change.",
			"Nice try, but only the owner can do that.",
		}
	case apperrors.KindConflict:
		messages = []string{
			"That didn't work out.",
			"Someone got there first.",
		}
	case apperrors.KindUnauthenticated:
		messages = []string{
			"Who are you again?",
			"I need to know who you are first.",
		}
	case apperrors.KindInvalid:
		messages = []string{
			"That doesn't look right.",
			"Check your input and try again.",
		}
	default:
		messages = []string{
			"Something went wrong, try again later.",
			"I tripped over a cable. Try again in a bit.",
			"The party planner is having a moment. Try again later.",
		}
	}

	if tone == ToneNeutral {
		messages = messages[:1]
	}

	return &GetErrorMessageOutput{Message: s.pick(messages), Tone: tone}, nil
}

func (s *service) toneOf(preferred MessageTone) MessageTone {
	if preferred != "" {
		return preferred
	}
	return s.tone
}

// pick returns a random message
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return messages[s.rand.IntN(len(messages))]
}
