package models

// InvitationStatus represents the lifecycle of an invitation
type InvitationStatus string

const (
	// InvitationStatusPending indicates the recipient has not responded
	InvitationStatusPending InvitationStatus = "pending"

	// InvitationStatusAccepted indicates the recipient accepted
	InvitationStatusAccepted InvitationStatus = "accepted"

	// InvitationStatusRejected indicates the recipient rejected
	InvitationStatusRejected InvitationStatus = "rejected"
)

// Invitation is a request from one user to another to join an event
type Invitation struct {
	Base

	From   string           `json:"from"`
	To     string           `json:"to"`
	Event  string           `json:"event"`
	Status InvitationStatus `json:"status"`
}
