package models

import (
	"fmt"
	"time"
)

// BettingOption is one of the outcomes a bet can resolve to
type BettingOption struct {
	// ID is unique within the owning bet
	ID string `json:"id"`

	// Name is the display text of the option
	Name string `json:"name"`
}

// BetWager is one user's stake on one option of a bet
type BetWager struct {
	// UserID is the user placing the wager
	UserID string `json:"user_id"`

	// Username is the display name of the user at the time of the wager
	Username string `json:"username"`

	// OptionID is the option the user is backing
	OptionID string `json:"option_id"`

	// DrinkType and MeasureType are the unit the wager is denominated in
	DrinkType   DrinkType   `json:"drink_type"`
	MeasureType MeasureType `json:"measure_type"`

	// Amount is the positive number of units staked
	Amount int `json:"amount"`

	// Timestamp is when the wager was last placed or replaced
	Timestamp time.Time `json:"timestamp"`
}

// Unit returns the drink unit of the wager
func (w *BetWager) Unit() DrinkUnit {
	return DrinkUnit{DrinkType: w.DrinkType, MeasureType: w.MeasureType}
}

// Bet is a proposition group members wager drinks on
type Bet struct {
	// ID is the unique identifier for the bet
	ID string `json:"id"`

	// Title is the proposition being bet on
	Title string `json:"title"`

	// Options are the possible outcomes, in display order
	Options []*BettingOption `json:"options"`

	// Wagers holds at most one wager per user
	Wagers []*BetWager `json:"wagers"`

	// CorrectOptionID is set when the bet is resolved
	CorrectOptionID string `json:"correct_option_id,omitempty"`

	// IsFinished is true iff CorrectOptionID is set
	IsFinished bool `json:"is_finished"`

	// CreatedBy is the user who created the bet
	CreatedBy string `json:"created_by"`

	// CreatedAt is when the bet was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the bet was last changed
	UpdatedAt time.Time `json:"updated_at"`

	// ResolvedAt is when the current resolution was made; zero while open
	ResolvedAt time.Time `json:"resolved_at,omitempty"`
}

// OptionID returns the identifier of the option at index for a bet.
// Ids only depend on position, so editing a bet keeps ids of options that stay in place.
func OptionID(betID string, index int) string {
	return fmt.Sprintf("%s-opt-%d", betID, index)
}

// BuildOptions creates the option list for a bet from option names
func BuildOptions(betID string, names []string) []*BettingOption {
	options := make([]*BettingOption, 0, len(names))
	for i, name := range names {
		options = append(options, &BettingOption{
			ID:   OptionID(betID, i),
			Name: name,
		})
	}
	return options
}

// IsResolved reports whether the bet has a correct option
func (b *Bet) IsResolved() bool {
	return b.IsFinished && b.CorrectOptionID != ""
}

// Option returns the option with the given id, or nil
func (b *Bet) Option(optionID string) *BettingOption {
	for _, o := range b.Options {
		if o.ID == optionID {
			return o
		}
	}
	return nil
}

// HasOption reports whether optionID is one of the bet's current options
func (b *Bet) HasOption(optionID string) bool {
	return b.Option(optionID) != nil
}

// WagerFor returns the user's wager on this bet, or nil
func (b *Bet) WagerFor(userID string) *BetWager {
	for _, w := range b.Wagers {
		if w.UserID == userID {
			return w
		}
	}
	return nil
}

// UpsertWager stores w as the user's only wager on the bet, replacing any
// previous wager by the same user. It reports whether a wager was replaced.
func (b *Bet) UpsertWager(w *BetWager) bool {
	for i, existing := range b.Wagers {
		if existing.UserID == w.UserID {
			b.Wagers[i] = w
			return true
		}
	}
	b.Wagers = append(b.Wagers, w)
	return false
}

// OrphanedWagers returns wagers whose option is no longer on the bet
func (b *Bet) OrphanedWagers() []*BetWager {
	var orphaned []*BetWager
	for _, w := range b.Wagers {
		if !b.HasOption(w.OptionID) {
			orphaned = append(orphaned, w)
		}
	}
	return orphaned
}

// Resolve marks optionID as the correct outcome
func (b *Bet) Resolve(optionID string, at time.Time) {
	b.CorrectOptionID = optionID
	b.IsFinished = true
	b.ResolvedAt = at
	b.UpdatedAt = at
}

// Reopen clears the resolution
func (b *Bet) Reopen(at time.Time) {
	b.CorrectOptionID = ""
	b.IsFinished = false
	b.ResolvedAt = time.Time{}
	b.UpdatedAt = at
}

// Clone returns a deep copy of the bet
func (b *Bet) Clone() *Bet {
	out := *b

	out.Options = make([]*BettingOption, 0, len(b.Options))
	for _, o := range b.Options {
		copied := *o
		out.Options = append(out.Options, &copied)
	}

	out.Wagers = make([]*BetWager, 0, len(b.Wagers))
	for _, w := range b.Wagers {
		copied := *w
		out.Wagers = append(out.Wagers, &copied)
	}

	return &out
}
