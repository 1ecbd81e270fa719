package models

// MemberDrinkStats is a member's derived standing in a group.
// It is recomputed from bets and distribution history on every request.
type MemberDrinkStats struct {
	// UserID is the member the stats belong to
	UserID string

	// Username is the member's display name
	Username string

	// Wins is the number of resolved bets the member backed correctly
	Wins int

	// TotalDrinksReceived counts winning stakes plus distributed drinks received
	TotalDrinksReceived int

	// TotalDrinksLost counts losing stakes
	TotalDrinksLost int

	// DrinksToConsume holds losing stakes by unit
	DrinksToConsume QuantityMap

	// DrinksToDistribute holds winning stakes by unit
	DrinksToDistribute QuantityMap

	// Transactions are the transfers credited to the member
	Transactions []*DrinkTransaction
}

// NewMemberDrinkStats returns zeroed stats for a member
func NewMemberDrinkStats(userID, username string) *MemberDrinkStats {
	return &MemberDrinkStats{
		UserID:             userID,
		Username:           username,
		DrinksToConsume:    NewQuantityMap(),
		DrinksToDistribute: NewQuantityMap(),
		Transactions:       []*DrinkTransaction{},
	}
}
