package tagging

import (
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

// Config holds configuration for the tagging service
type Config struct {
	Tags       store.Collection[models.Tag]
	Moods      store.Collection[models.Mood]
	Categories store.Collection[models.Category]
	UserMoods  store.Collection[models.UserMood]
}

type SeedInput struct {
	// Vocabulary to load, the built-in one when nil
	Vocabulary *Vocabulary
}

type SeedOutput struct {
	MoodsCreated      int
	CategoriesCreated int
}

type CreateTagInput struct {
	Name string
}

type GetTagInput struct {
	TagID string
}

type GetMoodInput struct {
	MoodID string
}

type SelectMoodInput struct {
	UserID string
	MoodID string
}

type GetUserMoodInput struct {
	UserID string
}
