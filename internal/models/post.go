package models

// PostOptions holds optional presentation settings for a post
type PostOptions struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// Post is a piece of user-authored content
type Post struct {
	Base

	// Author is the ID of the user who wrote the post
	Author  string       `json:"author"`
	Content string       `json:"content"`
	Options *PostOptions `json:"options,omitempty"`
}
