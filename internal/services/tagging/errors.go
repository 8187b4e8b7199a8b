package tagging

import "github.com/KirkDiggler/moodmeet/internal/common/apperrors"

// TaggingError is returned for invalid service configuration
type TaggingError string

// Error implements the error interface
func (e TaggingError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     TaggingError = "config cannot be nil"
	ErrNilTags       TaggingError = "tags collection cannot be nil"
	ErrNilMoods      TaggingError = "moods collection cannot be nil"
	ErrNilCategories TaggingError = "categories collection cannot be nil"
	ErrNilUserMoods  TaggingError = "user moods collection cannot be nil"
)

var (
	ErrTagNotFound     = apperrors.NotFound("tag not found")
	ErrMoodNotFound    = apperrors.NotFound("mood not found")
	ErrNoMoodSelected  = apperrors.NotFound("no mood selected")
	ErrTagExists       = apperrors.Conflict("tag already exists")
	ErrTagNameRequired = apperrors.Invalid("tag name cannot be empty")
)
