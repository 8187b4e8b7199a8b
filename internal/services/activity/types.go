package activity

import "github.com/redis/rueidis"

// Config holds configuration for the stream publisher
type Config struct {
	// Client is the connection the stream is written through
	Client rueidis.Client

	// Stream is the key of the Redis stream, DefaultStream when empty
	Stream string

	// MaxLen caps the stream length approximately, unbounded when zero
	MaxLen int64
}
