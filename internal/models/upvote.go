package models

// Upvote marks that a user upvoted an event; presence means upvoted
type Upvote struct {
	Base

	User  string `json:"user"`
	Event string `json:"event"`
}
