package posts

import (
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

// Config holds configuration for the posts service
type Config struct {
	Posts store.Collection[models.Post]
}

type CreateInput struct {
	Author  string
	Content string
	Options *models.PostOptions
}

type GetInput struct {
	PostID string
}

type ListInput struct {
	Author string
}

// UpdateInput carries the fields to change; nil means unchanged
type UpdateInput struct {
	PostID  string
	Content *string
	Options *models.PostOptions
}

type DeleteInput struct {
	PostID string
}

type AssertAuthorInput struct {
	PostID string
	UserID string
}
