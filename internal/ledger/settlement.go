package ledger

import (
	"sort"

	"github.com/KirkDiggler/betabeer/internal/models"
)

// SettleBet returns what a bet contributes to persisted balances.
// Winners may distribute their own stake and losers must consume theirs.
// Open bets and orphaned wagers contribute nothing.
func SettleBet(bet *models.Bet) []models.BalanceDelta {
	if bet == nil || !bet.IsResolved() {
		return nil
	}

	var deltas []models.BalanceDelta
	for _, w := range bet.Wagers {
		if !bet.HasOption(w.OptionID) {
			continue
		}

		field := models.BalanceFieldConsume
		if w.OptionID == bet.CorrectOptionID {
			field = models.BalanceFieldDistribute
		}

		deltas = append(deltas, models.BalanceDelta{
			UserID:      w.UserID,
			Field:       field,
			DrinkType:   w.DrinkType,
			MeasureType: w.MeasureType,
			Amount:      w.Amount,
		})
	}
	return deltas
}

// Reconcile returns the balance changes that move the ledger from the
// settlement of every bet in before to the settlement of every bet in after.
// Either group may be nil. Distributions are not included.
func Reconcile(before, after *models.Group) []models.BalanceDelta {
	var deltas []models.BalanceDelta

	if before != nil {
		for _, bet := range before.Bets {
			for _, d := range SettleBet(bet) {
				d.Amount = -d.Amount
				deltas = append(deltas, d)
			}
		}
	}

	if after != nil {
		for _, bet := range after.Bets {
			deltas = append(deltas, SettleBet(bet)...)
		}
	}

	return MergeDeltas(deltas)
}

type deltaKey struct {
	userID string
	field  models.BalanceField
	unit   models.DrinkUnit
}

// MergeDeltas sums deltas per member, field and unit, drops zero sums and
// returns them in a stable order.
func MergeDeltas(deltas []models.BalanceDelta) []models.BalanceDelta {
	sums := make(map[deltaKey]int)
	for _, d := range deltas {
		sums[deltaKey{userID: d.UserID, field: d.Field, unit: d.Unit()}] += d.Amount
	}

	merged := make([]models.BalanceDelta, 0, len(sums))
	for k, amount := range sums {
		if amount == 0 {
			continue
		}
		merged = append(merged, models.BalanceDelta{
			UserID:      k.userID,
			Field:       k.field,
			DrinkType:   k.unit.DrinkType,
			MeasureType: k.unit.MeasureType,
			Amount:      amount,
		})
	}

	sort.Slice(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if a.UserID != b.UserID {
			return a.UserID < b.UserID
		}
		if a.Field != b.Field {
			return a.Field < b.Field
		}
		return a.Unit().Less(b.Unit())
	})

	return merged
}

// ApplyDeltas applies deltas to a balance, failing on the first one that
// would leave a count below zero. Deltas for other members are ignored.
func ApplyDeltas(balance *models.Balance, deltas []models.BalanceDelta) error {
	for _, d := range deltas {
		if d.UserID != balance.UserID {
			continue
		}
		quantities := balance.Field(d.Field)
		available := quantities.Get(d.DrinkType, d.MeasureType)
		if err := quantities.Add(d.DrinkType, d.MeasureType, d.Amount); err != nil {
			return &InsufficientBalanceError{
				UserID:    d.UserID,
				Field:     d.Field,
				Unit:      d.Unit(),
				Requested: -d.Amount,
				Available: available,
			}
		}
	}
	return nil
}
