package tagging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
)

type service struct {
	tags       store.Collection[models.Tag]
	moods      store.Collection[models.Mood]
	categories store.Collection[models.Category]
	userMoods  store.Collection[models.UserMood]
}

// New creates a new tagging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Tags == nil {
		return nil, ErrNilTags
	}

	if cfg.Moods == nil {
		return nil, ErrNilMoods
	}

	if cfg.Categories == nil {
		return nil, ErrNilCategories
	}

	if cfg.UserMoods == nil {
		return nil, ErrNilUserMoods
	}

	return &service{
		tags:       cfg.Tags,
		moods:      cfg.Moods,
		categories: cfg.Categories,
		userMoods:  cfg.UserMoods,
	}, nil
}

// Seed loads the vocabulary. Terms that already exist are skipped, so a
// second run only fills in what an earlier one missed.
func (s *service) Seed(ctx context.Context, input *SeedInput) (*SeedOutput, error) {
	var vocab *Vocabulary
	if input != nil {
		vocab = input.Vocabulary
	}
	if vocab == nil {
		var err error
		if vocab, err = DefaultVocabulary(); err != nil {
			return nil, err
		}
	}

	out := &SeedOutput{}

	for _, term := range vocab.Moods {
		created, err := seedTerm(ctx, s.moods, &models.Mood{Base: models.Base{ID: term.ID}, Name: term.Name})
		if err != nil {
			return nil, fmt.Errorf("failed to seed mood %s: %w", term.ID, err)
		}
		if err := s.ensureTag(ctx, term); err != nil {
			return nil, err
		}
		if created {
			out.MoodsCreated++
		}
	}

	for _, term := range vocab.Categories {
		created, err := seedTerm(ctx, s.categories, &models.Category{Base: models.Base{ID: term.ID}, Name: term.Name})
		if err != nil {
			return nil, fmt.Errorf("failed to seed category %s: %w", term.ID, err)
		}
		if err := s.ensureTag(ctx, term); err != nil {
			return nil, err
		}
		if created {
			out.CategoriesCreated++
		}
	}

	return out, nil
}

// seedTerm creates a record under its fixed ID and reports false when it
// was already there
func seedTerm[T any](ctx context.Context, coll store.Collection[T], record *T) (bool, error) {
	if _, err := coll.Create(ctx, record); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ensureTag registers a vocabulary term as a tag with the same ID
func (s *service) ensureTag(ctx context.Context, term Term) error {
	_, err := s.tags.Create(ctx, &models.Tag{Base: models.Base{ID: term.ID}, Name: term.Name})
	if err != nil && !errors.Is(err, store.ErrDuplicateID) {
		return fmt.Errorf("failed to seed tag %s: %w", term.ID, err)
	}
	return nil
}

// ListMoods returns the predefined moods
func (s *service) ListMoods(ctx context.Context) ([]*models.Mood, error) {
	moods, err := s.moods.ReadMany(ctx, store.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	return moods, nil
}

// ListCategories returns the predefined categories
func (s *service) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categories.ReadMany(ctx, store.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListTags returns every tag
func (s *service) ListTags(ctx context.Context) ([]*models.Tag, error) {
	tags, err := s.tags.ReadMany(ctx, store.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

// CreateTag adds a free-form tag with a unique name
func (s *service) CreateTag(ctx context.Context, input *CreateTagInput) (*models.Tag, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTagNameRequired
	}

	n, err := s.tags.Count(ctx, store.Filter{"name": name})
	if err != nil {
		return nil, fmt.Errorf("failed to check tag: %w", err)
	}
	if n > 0 {
		return nil, ErrTagExists
	}

	tag := &models.Tag{Name: name}
	if _, err := s.tags.Create(ctx, tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return tag, nil
}

// GetTag retrieves a tag by ID
func (s *service) GetTag(ctx context.Context, input *GetTagInput) (*models.Tag, error) {
	if input == nil || input.TagID == "" {
		return nil, ErrTagNotFound
	}

	tag, err := s.tags.ReadOne(ctx, store.ByID(input.TagID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return tag, nil
}

// GetMood retrieves a predefined mood by ID
func (s *service) GetMood(ctx context.Context, input *GetMoodInput) (*models.Mood, error) {
	if input == nil || input.MoodID == "" {
		return nil, ErrMoodNotFound
	}

	mood, err := s.moods.ReadOne(ctx, store.ByID(input.MoodID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMoodNotFound
		}
		return nil, fmt.Errorf("failed to get mood: %w", err)
	}

	return mood, nil
}

// IsMood reports whether a tag ID is a registered mood
func (s *service) IsMood(ctx context.Context, tagID string) (bool, error) {
	n, err := s.moods.Count(ctx, store.ByID(tagID))
	if err != nil {
		return false, fmt.Errorf("failed to check mood: %w", err)
	}
	return n > 0, nil
}

// IsCategory reports whether a tag ID is a registered category
func (s *service) IsCategory(ctx context.Context, tagID string) (bool, error) {
	n, err := s.categories.Count(ctx, store.ByID(tagID))
	if err != nil {
		return false, fmt.Errorf("failed to check category: %w", err)
	}
	return n > 0, nil
}

// SelectMood makes a mood the user's current one. The selection document
// is keyed by the user ID, so each user has exactly one.
func (s *service) SelectMood(ctx context.Context, input *SelectMoodInput) (*models.UserMood, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("user ID cannot be empty")
	}

	if _, err := s.GetMood(ctx, &GetMoodInput{MoodID: input.MoodID}); err != nil {
		return nil, err
	}

	selection := &models.UserMood{
		Base:   models.Base{ID: input.UserID},
		UserID: input.UserID,
		Mood:   input.MoodID,
	}
	_, err := s.userMoods.Create(ctx, selection)
	if err == nil {
		return selection, nil
	}
	if !errors.Is(err, store.ErrDuplicateID) {
		return nil, fmt.Errorf("failed to record mood: %w", err)
	}

	if _, err := s.userMoods.PartialUpdate(ctx, store.ByID(input.UserID), store.Patch{"mood": input.MoodID}); err != nil {
		return nil, fmt.Errorf("failed to record mood: %w", err)
	}

	return s.GetUserMood(ctx, &GetUserMoodInput{UserID: input.UserID})
}

// GetUserMood returns the user's current mood selection
func (s *service) GetUserMood(ctx context.Context, input *GetUserMoodInput) (*models.UserMood, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrNoMoodSelected
	}

	selection, err := s.userMoods.ReadOne(ctx, store.ByID(input.UserID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoMoodSelected
		}
		return nil, fmt.Errorf("failed to get mood selection: %w", err)
	}

	return selection, nil
}
