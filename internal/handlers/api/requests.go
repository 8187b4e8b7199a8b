package api

import (
	"time"

	"github.com/KirkDiggler/moodmeet/internal/models"
)

type credentialsRequest struct {
	Username string `json:"username" validate:"required,max=32"`
	Password string `json:"password" validate:"required,max=72"`
}

type updateUsernameRequest struct {
	Username string `json:"username" validate:"required,max=32"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,max=72"`
	NewPassword     string `json:"newPassword" validate:"required,max=72"`
}

type selectMoodRequest struct {
	MoodID string `json:"moodId" validate:"required"`
}

type createEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category" validate:"required"`
	MoodTag     string    `json:"moodTag" validate:"required"`
	Capacity    *int      `json:"capacity" validate:"required,gte=0"`
	Location    string    `json:"location"`
	Date        time.Time `json:"date"`
}

type updateEventRequest struct {
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Capacity    *int    `json:"capacity" validate:"omitempty,gte=0"`
	Category    *string `json:"category" validate:"omitempty,min=1"`
	MoodTag     *string `json:"moodTag" validate:"omitempty,min=1"`
}

type eventStatusRequest struct {
	Status models.EventStatus `json:"status" validate:"required,oneof=upcoming ongoing completed canceled"`
}

type tagEventRequest struct {
	Tag string `json:"tag" validate:"required"`
}

type attendanceRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Attended *bool  `json:"attended" validate:"required"`
}

type createTagRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

type inviteRequest struct {
	EventID string `json:"eventId" validate:"required"`
	To      string `json:"to" validate:"required"`
}

type postRequest struct {
	Content string              `json:"content" validate:"required"`
	Options *models.PostOptions `json:"options"`
}

type updatePostRequest struct {
	Content *string             `json:"content" validate:"omitempty,min=1"`
	Options *models.PostOptions `json:"options"`
}

type listEventsQuery struct {
	Status models.EventStatus `validate:"omitempty,oneof=upcoming ongoing completed canceled"`
}

type listInvitationsQuery struct {
	Status models.InvitationStatus `validate:"omitempty,oneof=pending accepted rejected"`
}

type logInResponse struct {
	Msg   string             `json:"msg"`
	Token string             `json:"token"`
	User  *models.PublicUser `json:"user"`
}

type countResponse struct {
	Count int `json:"count"`
}
