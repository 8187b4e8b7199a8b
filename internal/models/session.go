package models

// Session binds a session token to a user. The document ID is the token.
type Session struct {
	Base

	// UserID is the user the session belongs to
	UserID string `json:"userId"`
}
