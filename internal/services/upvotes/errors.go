package upvotes

import "github.com/KirkDiggler/moodmeet/internal/common/apperrors"

// UpvoteError is returned for invalid service configuration
type UpvoteError string

// Error implements the error interface
func (e UpvoteError) Error() string {
	return string(e)
}

const (
	ErrNilConfig  UpvoteError = "config cannot be nil"
	ErrNilUpvotes UpvoteError = "upvotes collection cannot be nil"
)

var (
	ErrAlreadyUpvoted  = apperrors.Conflict("already upvoted")
	ErrUpvoteNotFound  = apperrors.NotFound("upvote not found")
	ErrMissingPairPart = apperrors.Invalid("user and event IDs are required")
)
