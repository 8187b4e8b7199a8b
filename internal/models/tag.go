package models

// Tag is a label that can be attached to events. Moods and categories are
// registered as tags with the same ID.
type Tag struct {
	Base

	Name string `json:"name"`
}

// Mood is a predefined mood; its ID is also a tag ID
type Mood struct {
	Base

	Name string `json:"name"`
}

// Category is a predefined event category; its ID is also a tag ID
type Category struct {
	Base

	Name string `json:"name"`
}

// UserMood holds the current mood selection of a user (one per user)
type UserMood struct {
	Base

	// UserID is the user who selected the mood
	UserID string `json:"userId"`

	// Mood is the ID of the selected mood
	Mood string `json:"mood"`
}
