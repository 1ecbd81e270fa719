package models

// BalanceField names one of the two running totals kept per member
type BalanceField string

const (
	// BalanceFieldConsume is what the member still has to drink
	BalanceFieldConsume BalanceField = "consume"

	// BalanceFieldDistribute is what the member may hand out to others
	BalanceFieldDistribute BalanceField = "distribute"
)

// Balance is the persisted ledger balance of one member of one group
type Balance struct {
	// GroupID is the group the balance belongs to
	GroupID string

	// UserID is the member the balance belongs to
	UserID string

	// DrinksToConsume is what the member owes to drink
	DrinksToConsume QuantityMap

	// DrinksToDistribute is what the member is owed and may distribute
	DrinksToDistribute QuantityMap
}

// NewBalance returns an empty balance
func NewBalance(groupID, userID string) *Balance {
	return &Balance{
		GroupID:            groupID,
		UserID:             userID,
		DrinksToConsume:    NewQuantityMap(),
		DrinksToDistribute: NewQuantityMap(),
	}
}

// Field returns the quantity map behind a balance field
func (b *Balance) Field(field BalanceField) QuantityMap {
	if field == BalanceFieldDistribute {
		return b.DrinksToDistribute
	}
	return b.DrinksToConsume
}

// BalanceDelta is a signed change to one unit of one member's balance field
type BalanceDelta struct {
	UserID      string
	Field       BalanceField
	DrinkType   DrinkType
	MeasureType MeasureType
	Amount      int
}

// Unit returns the drink unit the delta applies to
func (d BalanceDelta) Unit() DrinkUnit {
	return DrinkUnit{DrinkType: d.DrinkType, MeasureType: d.MeasureType}
}
