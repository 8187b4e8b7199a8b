package posts

import "github.com/KirkDiggler/moodmeet/internal/common/apperrors"

// PostError is returned for invalid service configuration
type PostError string

// Error implements the error interface
func (e PostError) Error() string {
	return string(e)
}

const (
	ErrNilConfig PostError = "config cannot be nil"
	ErrNilPosts  PostError = "posts collection cannot be nil"
)

var (
	ErrPostNotFound    = apperrors.NotFound("post not found")
	ErrNotAuthor       = apperrors.Forbidden("only the author can change this post")
	ErrContentRequired = apperrors.Invalid("post content cannot be empty")
	ErrNothingToUpdate = apperrors.Invalid("no post fields to update")
)
