package messaging

import "github.com/KirkDiggler/moodmeet/internal/common/apperrors"

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a plain tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"
)

// Config holds configuration for the messaging service
type Config struct {
	// Seed makes message selection repeatable; zero seeds from the clock
	Seed uint64

	// Tone is used when an input does not ask for one, ToneFunny if empty
	Tone MessageTone
}

type GetRSVPMessageInput struct {
	Name       string
	EventTitle string

	// Canceled is true when the RSVP was withdrawn
	Canceled bool

	// SpotsLeft is the remaining capacity after the change
	SpotsLeft int

	PreferredTone MessageTone
}

type GetRSVPMessageOutput struct {
	Message string
	Tone    MessageTone
}

type GetStreakMessageInput struct {
	Name  string
	Count int

	PreferredTone MessageTone
}

type GetStreakMessageOutput struct {
	Message string
	Tone    MessageTone
}

type GetErrorMessageInput struct {
	Kind apperrors.Kind

	PreferredTone MessageTone
}

type GetErrorMessageOutput struct {
	Message string
	Tone    MessageTone
}
