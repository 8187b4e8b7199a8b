package posts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

type service struct {
	posts store.Collection[models.Post]
}

// New creates a new posts service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Posts == nil {
		return nil, ErrNilPosts
	}

	return &service{
		posts: cfg.Posts,
	}, nil
}

// Create publishes a post
func (s *service) Create(ctx context.Context, input *CreateInput) (*models.Post, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrContentRequired
	}

	post := &models.Post{
		Author:  input.Author,
		Content: input.Content,
		Options: input.Options,
	}
	if _, err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// Get retrieves a post by ID
func (s *service) Get(ctx context.Context, input *GetInput) (*models.Post, error) {
	if input == nil || input.PostID == "" {
		return nil, ErrPostNotFound
	}

	post, err := s.posts.ReadOne(ctx, store.ByID(input.PostID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// List returns posts, optionally by one author
func (s *service) List(ctx context.Context, input *ListInput) ([]*models.Post, error) {
	filter := store.Filter{}
	if input != nil && input.Author != "" {
		filter["author"] = input.Author
	}

	posts, err := s.posts.ReadMany(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// Update changes a post's content or options
func (s *service) Update(ctx context.Context, input *UpdateInput) (*models.Post, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	patch := store.Patch{}
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, ErrContentRequired
		}
		patch["content"] = *input.Content
	}
	if input.Options != nil {
		patch["options"] = input.Options
	}
	if len(patch) == 0 {
		return nil, ErrNothingToUpdate
	}

	n, err := s.posts.PartialUpdate(ctx, store.ByID(input.PostID), patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	if n == 0 {
		return nil, ErrPostNotFound
	}

	return s.Get(ctx, &GetInput{PostID: input.PostID})
}

// Delete removes a post
func (s *service) Delete(ctx context.Context, input *DeleteInput) error {
	if input == nil || input.PostID == "" {
		return ErrPostNotFound
	}

	n, err := s.posts.Delete(ctx, store.ByID(input.PostID))
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if n == 0 {
		return ErrPostNotFound
	}

	return nil
}

// AssertAuthor fails unless the user wrote the post
func (s *service) AssertAuthor(ctx context.Context, input *AssertAuthorInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	post, err := s.Get(ctx, &GetInput{PostID: input.PostID})
	if err != nil {
		return err
	}

	if post.Author != input.UserID {
		return ErrNotAuthor
	}

	return nil
}
