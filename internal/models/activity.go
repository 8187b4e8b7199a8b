package models

import (
	"time"
)

// ActivityAction names a composite action that completed
type ActivityAction string

const (
	ActivityCreateEvent   ActivityAction = "create_event"
	ActivityUpdateEvent   ActivityAction = "update_event"
	ActivityCancelEvent   ActivityAction = "cancel_event"
	ActivityAdvanceEvent  ActivityAction = "advance_event"
	ActivityRSVP          ActivityAction = "rsvp"
	ActivityCancelRSVP    ActivityAction = "cancel_rsvp"
	ActivityUpvote        ActivityAction = "upvote"
	ActivityRemoveUpvote  ActivityAction = "remove_upvote"
	ActivityStreak        ActivityAction = "streak"
	ActivityTagEvent      ActivityAction = "tag_event"
	ActivitySelectMood    ActivityAction = "select_mood"
	ActivityInvite        ActivityAction = "invite"
	ActivityAcceptInvite  ActivityAction = "accept_invitation"
	ActivityRejectInvite  ActivityAction = "reject_invitation"
	ActivityCreatePost    ActivityAction = "create_post"
	ActivityDeleteAccount ActivityAction = "delete_account"
)

// Activity is a record of a completed composite action
type Activity struct {
	Action    ActivityAction `json:"action"`
	UserID    string         `json:"userId"`
	EventID   string         `json:"eventId,omitempty"`
	SubjectID string         `json:"subjectId,omitempty"`
	At        time.Time      `json:"at"`
}
