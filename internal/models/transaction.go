package models

import (
	"time"
)

// TransactionSource records what produced a drink transaction
type TransactionSource string

const (
	// TransactionSourceBet is a transfer derived from a resolved bet
	TransactionSourceBet TransactionSource = "bet"

	// TransactionSourceDistribution is an explicit settlement by a distributor
	TransactionSourceDistribution TransactionSource = "distribution"
)

// DrinkTransaction records drinks moving from one user to another.
// Once recorded it is never changed or removed.
type DrinkTransaction struct {
	// ID is the unique identifier for the transaction
	ID string `json:"id"`

	// GroupID is the group the transaction belongs to
	GroupID string `json:"group_id"`

	// BetID is the bet a bet-sourced transaction was derived from
	BetID string `json:"bet_id,omitempty"`

	// FromUserID is the user the drinks come from
	FromUserID   string `json:"from_user_id"`
	FromUsername string `json:"from_username"`

	// ToUserID is the user the drinks go to
	ToUserID   string `json:"to_user_id"`
	ToUsername string `json:"to_username"`

	// DrinkType and MeasureType are the unit moved
	DrinkType   DrinkType   `json:"drink_type"`
	MeasureType MeasureType `json:"measure_type"`

	// Amount is the positive number of units moved
	Amount int `json:"amount"`

	// Source is bet or distribution
	Source TransactionSource `json:"source"`

	// Timestamp is when the transaction happened
	Timestamp time.Time `json:"timestamp"`
}

// Unit returns the drink unit of the transaction
func (t *DrinkTransaction) Unit() DrinkUnit {
	return DrinkUnit{DrinkType: t.DrinkType, MeasureType: t.MeasureType}
}
