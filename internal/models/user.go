package models

// User represents an account
type User struct {
	Base

	// Username is unique across all users
	Username string `json:"username"`

	// UsernameKey is the case-folded username used for uniqueness and lookup
	UsernameKey string `json:"usernameKey"`

	// PasswordHash is the bcrypt hash of the user's password
	PasswordHash string `json:"passwordHash"`

	// MoodPreference is the ID of the mood the user last selected, if any
	MoodPreference string `json:"moodPreference,omitempty"`

	// ExternalID links the account to a chat identity such as "discord:1234"
	ExternalID string `json:"externalId,omitempty"`
}

// PublicUser is the projection of a user that is safe to return to callers
type PublicUser struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	MoodPreference string `json:"moodPreference,omitempty"`
}

// Public strips the credential from the user
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:             u.ID,
		Username:       u.Username,
		MoodPreference: u.MoodPreference,
	}
}
