package tagging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/moodmeet/internal/services/tagging Service

import (
	"context"

	"github.com/KirkDiggler/moodmeet/internal/models"
)

// Service owns tags, the predefined moods and categories, and each
// user's current mood
type Service interface {
	// Seed loads any missing moods and categories from the vocabulary
	Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error)

	ListMoods(ctx context.Context) ([]*models.Mood, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	ListTags(ctx context.Context) ([]*models.Tag, error)

	// CreateTag adds a free-form tag
	CreateTag(ctx context.Context, input *CreateTagInput) (*models.Tag, error)

	// GetTag retrieves a tag by ID
	GetTag(ctx context.Context, input *GetTagInput) (*models.Tag, error)

	// GetMood retrieves a predefined mood by ID
	GetMood(ctx context.Context, input *GetMoodInput) (*models.Mood, error)

	// IsMood reports whether a tag ID is a registered mood
	IsMood(ctx context.Context, tagID string) (bool, error)

	// IsCategory reports whether a tag ID is a registered category
	IsCategory(ctx context.Context, tagID string) (bool, error)

	// SelectMood makes a mood the user's current one
	SelectMood(ctx context.Context, input *SelectMoodInput) (*models.UserMood, error)

	// GetUserMood returns the user's current mood selection
	GetUserMood(ctx context.Context, input *GetUserMoodInput) (*models.UserMood, error)
}
