package events

import (
	"time"
)

// EventType identifies a committed ledger change
type EventType string

const (
	EventTypeGroupCreated      EventType = "group_created"
	EventTypeGroupDeleted      EventType = "group_deleted"
	EventTypeMemberAdded       EventType = "member_added"
	EventTypeMemberRemoved     EventType = "member_removed"
	EventTypeBetCreated        EventType = "bet_created"
	EventTypeBetEdited         EventType = "bet_edited"
	EventTypeBetDeleted        EventType = "bet_deleted"
	EventTypeBetResolved       EventType = "bet_resolved"
	EventTypeBetReopened       EventType = "bet_reopened"
	EventTypeWagerPlaced       EventType = "wager_placed"
	EventTypeDrinksDistributed EventType = "drinks_distributed"
)

// Event describes one committed change to a group
type Event struct {
	// ID is unique per event
	ID string `json:"id"`

	// Type is what happened
	Type EventType `json:"type"`

	// GroupID is the group that changed
	GroupID string `json:"group_id"`

	// BetID is set for bet and wager events
	BetID string `json:"bet_id,omitempty"`

	// UserID is the user who made the change
	UserID string `json:"user_id"`

	// Version is the group version written by the change
	Version int64 `json:"version"`

	// Attributes carry event specific details such as the winning option
	Attributes map[string]string `json:"attributes,omitempty"`

	// Timestamp is when the change was committed
	Timestamp time.Time `json:"timestamp"`
}
