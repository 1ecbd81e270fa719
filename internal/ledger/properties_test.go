package ledger

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/betabeer/internal/models"
	"pgregory.net/rapid"
)

var propertyNow = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

var propertyUsers = []string{"alice", "bob", "carol", "dave", "erin"}

func drawUnit(t *rapid.T, label string) models.DrinkUnit {
	return models.DrinkUnit{
		DrinkType:   rapid.SampledFrom(models.DrinkTypes).Draw(t, label+"_drink"),
		MeasureType: rapid.SampledFrom(models.MeasureTypes).Draw(t, label+"_measure"),
	}
}

// drawBet builds a bet with 2-4 options and a wager from a random subset of users
func drawBet(t *rapid.T, betID string) *models.Bet {
	optionCount := rapid.IntRange(2, 4).Draw(t, betID+"_options")
	names := make([]string, optionCount)
	for i := range names {
		names[i] = fmt.Sprintf("option %d", i)
	}
	bet := &models.Bet{ID: betID, Title: betID, Options: models.BuildOptions(betID, names)}

	for _, userID := range propertyUsers {
		if !rapid.Bool().Draw(t, betID+"_"+userID+"_bets") {
			continue
		}
		unit := drawUnit(t, betID+"_"+userID)
		bet.UpsertWager(&models.BetWager{
			UserID:      userID,
			OptionID:    models.OptionID(betID, rapid.IntRange(0, optionCount-1).Draw(t, betID+"_"+userID+"_option")),
			DrinkType:   unit.DrinkType,
			MeasureType: unit.MeasureType,
			Amount:      rapid.IntRange(1, 10).Draw(t, betID+"_"+userID+"_amount"),
		})
	}
	return bet
}

func propertyGroup() *models.Group {
	group := &models.Group{ID: "group-1", CreatedBy: propertyUsers[0]}
	for _, userID := range propertyUsers {
		group.AddMember(userID, userID)
	}
	return group
}

func TestProperty_OneTransactionPerLosingWager(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bet := drawBet(t, "bet")
		correct := rapid.IntRange(0, len(bet.Options)-1).Draw(t, "correct")
		bet.Resolve(models.OptionID(bet.ID, correct), propertyNow)

		group := propertyGroup()
		group.Bets = []*models.Bet{bet}
		stats := ComputeGroupStats(group)

		var winners, losers int
		lostByUser := map[string]int{}
		for _, w := range bet.Wagers {
			if w.OptionID == bet.CorrectOptionID {
				winners++
			} else {
				losers++
				lostByUser[w.UserID] = w.Amount
			}
		}

		var transactions int
		for _, m := range stats.Members {
			for _, tx := range m.Transactions {
				transactions++
				if tx.Amount != lostByUser[tx.FromUserID] {
					t.Fatalf("transaction from %s carries %d, wager was %d", tx.FromUserID, tx.Amount, lostByUser[tx.FromUserID])
				}
			}
		}

		want := losers
		if winners == 0 {
			want = 0
		}
		if transactions != want {
			t.Fatalf("got %d transactions for %d losing wagers and %d winners", transactions, losers, winners)
		}
	})
}

func TestProperty_ReconcileIsPathIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		group := propertyGroup()
		group.Bets = []*models.Bet{drawBet(t, "a"), drawBet(t, "b")}

		balances := map[string]*models.Balance{}
		apply := func(deltas []models.BalanceDelta) {
			for _, d := range deltas {
				if balances[d.UserID] == nil {
					balances[d.UserID] = models.NewBalance(group.ID, d.UserID)
				}
				if err := ApplyDeltas(balances[d.UserID], []models.BalanceDelta{d}); err != nil {
					t.Fatalf("reconciled balance went negative: %v", err)
				}
			}
		}

		steps := rapid.IntRange(1, 8).Draw(t, "steps")
		current := group
		for i := 0; i < steps; i++ {
			next := current.Clone()
			bet := next.Bets[rapid.IntRange(0, len(next.Bets)-1).Draw(t, fmt.Sprintf("step_%d_bet", i))]
			if rapid.Bool().Draw(t, fmt.Sprintf("step_%d_reopen", i)) {
				bet.Reopen(propertyNow)
			} else {
				bet.Resolve(models.OptionID(bet.ID, rapid.IntRange(0, len(bet.Options)-1).Draw(t, fmt.Sprintf("step_%d_option", i))), propertyNow)
			}
			apply(Reconcile(current, next))
			current = next
		}

		direct := map[string]*models.Balance{}
		for _, d := range Reconcile(nil, current) {
			if direct[d.UserID] == nil {
				direct[d.UserID] = models.NewBalance(group.ID, d.UserID)
			}
			if err := ApplyDeltas(direct[d.UserID], []models.BalanceDelta{d}); err != nil {
				t.Fatalf("settlement went negative: %v", err)
			}
		}

		for _, userID := range propertyUsers {
			stepwise, settled := balances[userID], direct[userID]
			if stepwise == nil {
				stepwise = models.NewBalance(group.ID, userID)
			}
			if settled == nil {
				settled = models.NewBalance(group.ID, userID)
			}
			for _, dt := range models.DrinkTypes {
				for _, mt := range models.MeasureTypes {
					if stepwise.DrinksToConsume.Get(dt, mt) != settled.DrinksToConsume.Get(dt, mt) ||
						stepwise.DrinksToDistribute.Get(dt, mt) != settled.DrinksToDistribute.Get(dt, mt) {
						t.Fatalf("balance of %s for %s/%s differs between stepwise and direct settlement", userID, dt, mt)
					}
				}
			}
		}

		if len(Reconcile(current, current)) != 0 {
			t.Fatalf("reconciling a group with itself produced deltas")
		}
	})
}

func TestProperty_DistributionNeverGoesNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		group := propertyGroup()
		balance := models.NewBalance(group.ID, "alice")
		for i := 0; i < 3; i++ {
			unit := drawUnit(t, fmt.Sprintf("grant_%d", i))
			_ = balance.DrinksToDistribute.Add(unit.DrinkType, unit.MeasureType, rapid.IntRange(0, 6).Draw(t, fmt.Sprintf("grant_%d_amount", i)))
		}

		nextID := 0
		newID := func() string {
			nextID++
			return fmt.Sprintf("tx-%d", nextID)
		}

		batches := rapid.IntRange(1, 10).Draw(t, "batches")
		for i := 0; i < batches; i++ {
			size := rapid.IntRange(1, 3).Draw(t, fmt.Sprintf("batch_%d_size", i))
			distributions := make([]Distribution, 0, size)
			for j := 0; j < size; j++ {
				unit := drawUnit(t, fmt.Sprintf("batch_%d_%d", i, j))
				distributions = append(distributions, Distribution{
					UserID:      rapid.SampledFrom(propertyUsers[1:]).Draw(t, fmt.Sprintf("batch_%d_%d_to", i, j)),
					DrinkType:   unit.DrinkType,
					MeasureType: unit.MeasureType,
					Amount:      rapid.IntRange(1, 4).Draw(t, fmt.Sprintf("batch_%d_%d_amount", i, j)),
				})
			}

			before := balance.DrinksToDistribute.Clone()
			plan, err := PlanDistribution(&PlanDistributionInput{
				Group: group, FromUserID: "alice", Balance: balance,
				Distributions: distributions, Now: propertyNow, NewID: newID,
			})
			if err != nil {
				if !errors.Is(err, ErrInsufficientBalance) {
					t.Fatalf("unexpected error: %v", err)
				}
				continue
			}

			if err := ApplyDeltas(balance, plan.Deltas); err != nil {
				t.Fatalf("planned distribution failed to apply: %v", err)
			}

			spent := before.Total() - balance.DrinksToDistribute.Total()
			var requested int
			for _, d := range distributions {
				requested += d.Amount
			}
			if spent != requested {
				t.Fatalf("distributed %d but balance dropped by %d", requested, spent)
			}
		}

		for _, dt := range models.DrinkTypes {
			for _, mt := range models.MeasureTypes {
				if balance.DrinksToDistribute.Get(dt, mt) < 0 {
					t.Fatalf("balance for %s/%s went negative", dt, mt)
				}
			}
		}
	})
}
