package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/KirkDiggler/moodmeet/internal/services/accounts"
	"github.com/KirkDiggler/moodmeet/internal/services/sessions"
)

// Provider tags accounts created for Discord members
const Provider = "discord"

// Member is the Discord user behind an interaction
type Member struct {
	ID   string
	Name string
}

type membership struct {
	userID string
	token  string
}

// Members maps Discord members to accounts and keeps one open session per
// member for the life of the bot
type Members struct {
	accounts accounts.Service
	sessions sessions.Service

	mu      sync.Mutex
	entries map[string]membership
}

// NewMembers creates an empty member cache
func NewMembers(accountService accounts.Service, sessionService sessions.Service) *Members {
	return &Members{
		accounts: accountService,
		sessions: sessionService,
		entries:  make(map[string]membership),
	}
}

// Resolve returns the member's account ID and session token, creating the
// account and session on first use
func (m *Members) Resolve(ctx context.Context, member Member) (userID, token string, err error) {
	m.mu.Lock()
	entry, ok := m.entries[member.ID]
	m.mu.Unlock()
	if ok {
		return entry.userID, entry.token, nil
	}

	user, err := m.accounts.EnsureExternal(ctx, &accounts.EnsureExternalInput{
		Provider:   Provider,
		ExternalID: member.ID,
		Username:   member.Name,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve member %s: %w", member.ID, err)
	}

	session, err := m.sessions.Start(ctx, &sessions.StartInput{UserID: user.ID})
	if err != nil {
		return "", "", fmt.Errorf("failed to start session for member %s: %w", member.ID, err)
	}

	entry = membership{userID: user.ID, token: session.ID}

	m.mu.Lock()
	existing, raced := m.entries[member.ID]
	if !raced {
		m.entries[member.ID] = entry
	}
	m.mu.Unlock()

	if raced {
		// another interaction cached a session first; ours is not needed
		if err := m.sessions.End(ctx, &sessions.EndInput{Token: session.ID}); err != nil && !errors.Is(err, sessions.ErrAlreadyLoggedOut) {
			return "", "", fmt.Errorf("failed to end duplicate session for member %s: %w", member.ID, err)
		}
		return existing.userID, existing.token, nil
	}

	return entry.userID, entry.token, nil
}

// Account returns the member's account ID without opening a session
func (m *Members) Account(ctx context.Context, member Member) (string, error) {
	m.mu.Lock()
	entry, ok := m.entries[member.ID]
	m.mu.Unlock()
	if ok {
		return entry.userID, nil
	}

	user, err := m.accounts.EnsureExternal(ctx, &accounts.EnsureExternalInput{
		Provider:   Provider,
		ExternalID: member.ID,
		Username:   member.Name,
	})
	if err != nil {
		return "", fmt.Errorf("failed to resolve member %s: %w", member.ID, err)
	}

	return user.ID, nil
}

// Forget drops a cached session, e.g. after it was closed elsewhere
func (m *Members) Forget(memberID string) {
	m.mu.Lock()
	delete(m.entries, memberID)
	m.mu.Unlock()
}

// Close ends every cached session
func (m *Members) Close(ctx context.Context) error {
	m.mu.Lock()
	entries := m.entries
	m.entries = make(map[string]membership)
	m.mu.Unlock()

	var firstErr error
	for _, entry := range entries {
		err := m.sessions.End(ctx, &sessions.EndInput{Token: entry.token})
		if err != nil && !errors.Is(err, sessions.ErrAlreadyLoggedOut) && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
