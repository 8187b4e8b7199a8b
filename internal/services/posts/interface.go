package posts

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/moodmeet/internal/services/posts Service

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
)

// Service owns user-authored posts
type Service interface {
	// Create publishes a post
	Create(ctx context.Context, input *CreateInput) (*models.Post, error)

	// Get retrieves a post by ID
	Get(ctx context.Context, input *GetInput) (*models.Post, error)

	// List returns posts, optionally by one author, oldest first
	List(ctx context.Context, input *ListInput) ([]*models.Post, error)

	// Update changes a post's content or options
	Update(ctx context.Context, input *UpdateInput) (*models.Post, error)

	// Delete removes a post
	Delete(ctx context.Context, input *DeleteInput) error

	// AssertAuthor fails unless the user wrote the post
	AssertAuthor(ctx context.Context, input *AssertAuthorInput) error
}
