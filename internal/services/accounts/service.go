package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/moodmeet/internal/common/uuid"
	"github.com/KirkDiggler/moodmeet/internal/models"
	"github.com/KirkDiggler/moodmeet/internal/store"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

const maxUsernameLength = 32

type service struct {
	users      store.Collection[models.User]
	uuid       uuid.Generator
	bcryptCost int
}

// New creates a new accounts service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Users == nil {
		return nil, ErrNilUsers
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &service{
		users:      cfg.Users,
		uuid:       cfg.UUIDGenerator,
		bcryptCost: cost,
	}, nil
}

// normalizeUsername returns the display form and the lookup key
func (s *service) normalizeUsername(raw string) (string, string, error) {
	name := norm.NFC.String(strings.TrimSpace(raw))
	if name == "" {
		return "", "", ErrUsernameRequired
	}
	if utf8.RuneCountInString(name) > maxUsernameLength {
		return "", "", ErrUsernameTooLong
	}
	return name, cases.Fold().String(name), nil
}

// bcrypt refuses longer input
const maxPasswordBytes = 72

func (s *service) hash(password string) (string, error) {
	if password == "" {
		return "", ErrPasswordRequired
	}
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *service) usernameTaken(ctx context.Context, key string) (bool, error) {
	n, err := s.users.Count(ctx, store.Filter{"usernameKey": key})
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return n > 0, nil
}

// Create registers a new user
func (s *service) Create(ctx context.Context, input *CreateInput) (*models.User, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name, key, err := s.normalizeUsername(input.Username)
	if err != nil {
		return nil, err
	}

	taken, err := s.usernameTaken(ctx, key)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hashed, err := s.hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     name,
		UsernameKey:  key,
		PasswordHash: hashed,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate checks a username and password pair
func (s *service) Authenticate(ctx context.Context, input *AuthenticateInput) (*models.User, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	user, err := s.GetByUsername(ctx, &GetByUsernameInput{Username: input.Username})
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrUsernameRequired) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Get retrieves a user by ID
func (s *service) Get(ctx context.Context, input *GetInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrUserNotFound
	}

	return s.readOne(ctx, store.ByID(input.UserID))
}

// GetByUsername retrieves a user by username
func (s *service) GetByUsername(ctx context.Context, input *GetByUsernameInput) (*models.User, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	_, key, err := s.normalizeUsername(input.Username)
	if err != nil {
		return nil, err
	}

	return s.readOne(ctx, store.Filter{"usernameKey": key})
}

func (s *service) readOne(ctx context.Context, filter store.Filter) (*models.User, error) {
	user, err := s.users.ReadOne(ctx, filter)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// List returns every user
func (s *service) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.ReadMany(ctx, store.Filter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUsername renames a user
func (s *service) UpdateUsername(ctx context.Context, input *UpdateUsernameInput) (*models.User, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	name, key, err := s.normalizeUsername(input.Username)
	if err != nil {
		return nil, err
	}

	user, err := s.Get(ctx, &GetInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	if user.UsernameKey != key {
		taken, err := s.usernameTaken(ctx, key)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrUsernameTaken
		}
	}

	if err := s.patch(ctx, input.UserID, store.Patch{"username": name, "usernameKey": key}); err != nil {
		return nil, err
	}

	user.Username = name
	user.UsernameKey = key
	return user, nil
}

// UpdatePassword replaces the password after checking the current one
func (s *service) UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	user, err := s.Get(ctx, &GetInput{UserID: input.UserID})
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := s.hash(input.NewPassword)
	if err != nil {
		return err
	}

	return s.patch(ctx, input.UserID, store.Patch{"passwordHash": hashed})
}

// SetMoodPreference records the mood a user last selected
func (s *service) SetMoodPreference(ctx context.Context, input *SetMoodPreferenceInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return s.patch(ctx, input.UserID, store.Patch{"moodPreference": input.MoodID})
}

func (s *service) patch(ctx context.Context, userID string, patch store.Patch) error {
	n, err := s.users.PartialUpdate(ctx, store.ByID(userID), patch)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes a user
func (s *service) Delete(ctx context.Context, input *DeleteInput) error {
	if input == nil || input.UserID == "" {
		return ErrUserNotFound
	}

	n, err := s.users.Delete(ctx, store.ByID(input.UserID))
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}

	return nil
}

// EnsureExternal finds or creates the account linked to a chat identity.
// A taken username gets a short suffix from the external ID.
func (s *service) EnsureExternal(ctx context.Context, input *EnsureExternalInput) (*models.User, error) {
	if input == nil || input.Provider == "" || input.ExternalID == "" {
		return nil, errors.New("provider and external ID are required")
	}

	externalID := fmt.Sprintf("%s:%s", input.Provider, input.ExternalID)
	user, err := s.readOne(ctx, store.Filter{"externalId": externalID})
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	name, key, err := s.normalizeUsername(input.Username)
	if err != nil {
		name, key, err = s.normalizeUsername(truncateRunes(input.Provider+"-"+input.ExternalID, maxUsernameLength))
		if err != nil {
			return nil, err
		}
	}

	taken, err := s.usernameTaken(ctx, key)
	if err != nil {
		return nil, err
	}
	if taken {
		suffix := input.ExternalID
		if len(suffix) > 4 {
			suffix = suffix[len(suffix)-4:]
		}
		name, key, err = s.normalizeUsername(truncateRunes(name, maxUsernameLength-5) + "#" + suffix)
		if err != nil {
			return nil, err
		}
	}

	// chat accounts never log in with a password
	hashed, err := s.hash(s.uuid.NewID())
	if err != nil {
		return nil, err
	}

	user = &models.User{
		Username:     name,
		UsernameKey:  key,
		PasswordHash: hashed,
		ExternalID:   externalID,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
