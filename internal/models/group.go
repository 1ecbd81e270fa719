package models

import (
	"time"
)

// UnknownUsername is shown when a member's display name was never recorded
const UnknownUsername = "Unknown"

// Group owns a set of members, their bets and the distribution history
type Group struct {
	// ID is the unique identifier for the group
	ID string `json:"id"`

	// Name is the display name of the group
	Name string `json:"name"`

	// Members are the user IDs in the group, in join order
	Members []string `json:"members"`

	// MemberNames maps member user IDs to their display names
	MemberNames map[string]string `json:"member_names"`

	// CreatedBy is the owner of the group
	CreatedBy string `json:"created_by"`

	// CreatedAt is when the group was created
	CreatedAt time.Time `json:"created_at"`

	// Bets are the group's bets in creation order
	Bets []*Bet `json:"bets"`

	// DistributionHistory is the append-only list of distribution transactions
	DistributionHistory []*DrinkTransaction `json:"distribution_history"`

	// Version is bumped by the store on every write
	Version int64 `json:"version"`
}

// IsMember reports whether userID belongs to the group
func (g *Group) IsMember(userID string) bool {
	for _, id := range g.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// AddMember adds a user, returning false if they were already a member.
// A non-empty username refreshes the stored display name either way.
func (g *Group) AddMember(userID, username string) bool {
	if g.MemberNames == nil {
		g.MemberNames = map[string]string{}
	}
	if username != "" {
		g.MemberNames[userID] = username
	}
	if g.IsMember(userID) {
		return false
	}
	g.Members = append(g.Members, userID)
	return true
}

// RemoveMember removes a user, returning false if they were not a member.
// The display name is kept so history still renders.
func (g *Group) RemoveMember(userID string) bool {
	for i, id := range g.Members {
		if id == userID {
			g.Members = append(g.Members[:i], g.Members[i+1:]...)
			return true
		}
	}
	return false
}

// Username returns the display name for a user, falling back to UnknownUsername.
// Only use this for presentation, never for ledger fields that need an id.
func (g *Group) Username(userID string) string {
	if name, ok := g.MemberNames[userID]; ok && name != "" {
		return name
	}
	return UnknownUsername
}

// Bet returns the index and bet with the given id, or -1 and nil
func (g *Group) Bet(betID string) (int, *Bet) {
	for i, b := range g.Bets {
		if b.ID == betID {
			return i, b
		}
	}
	return -1, nil
}

// Clone returns a deep copy of the group. Transactions are immutable and shared.
func (g *Group) Clone() *Group {
	out := *g

	out.Members = append([]string(nil), g.Members...)

	out.MemberNames = make(map[string]string, len(g.MemberNames))
	for id, name := range g.MemberNames {
		out.MemberNames[id] = name
	}

	out.Bets = make([]*Bet, 0, len(g.Bets))
	for _, b := range g.Bets {
		out.Bets = append(out.Bets, b.Clone())
	}

	out.DistributionHistory = append([]*DrinkTransaction(nil), g.DistributionHistory...)

	return &out
}
