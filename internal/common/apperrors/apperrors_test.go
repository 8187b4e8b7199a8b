package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesKind(t *testing.T) {
	full := Conflict("event is full")

	assert.True(t, errors.Is(full, ErrConflict))
	assert.False(t, errors.Is(full, ErrNotFound))
	assert.True(t, errors.Is(full, Conflict("event is full")))
	assert.False(t, errors.Is(full, Conflict("already rsvp'd")))
}

func TestIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("rsvp: %w", NotFound("event %s does not exist", "e1"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "event e1 does not exist", Message(err))
}

func TestKindOfUnclassified(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, "boom", Message(err))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindInternal, "read event", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "read event: connection refused", err.Error())
}
