package orchestrator

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/services/accounts"
	"github.com/KirkDiggler/moodmeet/internal/services/posts"
	"go.opentelemetry.io/otel/attribute"
)

func (s *service) CreatePost(ctx context.Context, input *CreatePostInput) (_ *models.Post, err error) {
	ctx, end := s.start(ctx, "CreatePost")
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.Create(ctx, &posts.CreateInput{
		Author:  userID,
		Content: input.Content,
		Options: input.Options,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, models.ActivityCreatePost, userID, "", post.ID)
	return post, nil
}

// ListPosts returns every post, or the posts of one author by username
func (s *service) ListPosts(ctx context.Context, input *ListPostsInput) (_ []*models.Post, err error) {
	ctx, end := s.start(ctx, "ListPosts")
	defer end(&err)

	if input == nil || input.Author == "" {
		return s.posts.List(ctx, &posts.ListInput{})
	}

	author, err := s.accounts.GetByUsername(ctx, &accounts.GetByUsernameInput{Username: input.Author})
	if err != nil {
		return nil, err
	}

	return s.posts.List(ctx, &posts.ListInput{Author: author.ID})
}

// UpdatePost changes a post; only its author may
func (s *service) UpdatePost(ctx context.Context, input *UpdatePostInput) (_ *models.Post, err error) {
	ctx, end := s.start(ctx, "UpdatePost", attribute.String("post_id", input.PostID))
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	if err := s.posts.AssertAuthor(ctx, &posts.AssertAuthorInput{
		PostID: input.PostID,
		UserID: userID,
	}); err != nil {
		return nil, err
	}

	return s.posts.Update(ctx, &posts.UpdateInput{
		PostID:  input.PostID,
		Content: input.Content,
		Options: input.Options,
	})
}

// DeletePost removes a post; only its author may
func (s *service) DeletePost(ctx context.Context, input *PostActionInput) (err error) {
	ctx, end := s.start(ctx, "DeletePost", attribute.String("post_id", input.PostID))
	defer end(&err)

	userID, err := s.caller(ctx, input.Token)
	if err != nil {
		return err
	}

	if err := s.posts.AssertAuthor(ctx, &posts.AssertAuthorInput{
		PostID: input.PostID,
		UserID: userID,
	}); err != nil {
		return err
	}

	return s.posts.Delete(ctx, &posts.DeleteInput{PostID: input.PostID})
}
