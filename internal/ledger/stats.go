package ledger

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/betabeer/internal/models"
)

// OrphanedWager is a wager whose option was removed by an edit
type OrphanedWager struct {
	BetID    string
	BetTitle string
	Wager    *models.BetWager
}

// GroupStats is the leaderboard view of a group
type GroupStats struct {
	// Members are sorted by TotalDrinksReceived, highest first
	Members []*models.MemberDrinkStats

	// OrphanedWagers are wagers on resolved bets that were left out of the stats
	OrphanedWagers []*OrphanedWager
}

// Member returns the stats of one user, or nil
func (gs *GroupStats) Member(userID string) *models.MemberDrinkStats {
	for _, m := range gs.Members {
		if m.UserID == userID {
			return m
		}
	}
	return nil
}

// ComputeGroupStats derives member stats from the group's resolved bets and
// distribution history. It never mutates the group.
//
// Each losing wager yields exactly one bet transaction, credited to one of the
// winners in turn, for the loser's amount in the winning wager's unit.
func ComputeGroupStats(group *models.Group) *GroupStats {
	byUser := make(map[string]*models.MemberDrinkStats)
	var order []*models.MemberDrinkStats

	statsFor := func(userID, username string) *models.MemberDrinkStats {
		if st, ok := byUser[userID]; ok {
			return st
		}
		if username == "" {
			username = group.Username(userID)
		}
		st := models.NewMemberDrinkStats(userID, username)
		byUser[userID] = st
		order = append(order, st)
		return st
	}

	for _, userID := range group.Members {
		statsFor(userID, group.Username(userID))
	}

	result := &GroupStats{}

	for _, bet := range group.Bets {
		if !bet.IsResolved() {
			continue
		}

		var winners, losers []*models.BetWager
		for _, w := range bet.Wagers {
			switch {
			case !bet.HasOption(w.OptionID):
				result.OrphanedWagers = append(result.OrphanedWagers, &OrphanedWager{
					BetID:    bet.ID,
					BetTitle: bet.Title,
					Wager:    w,
				})
			case w.OptionID == bet.CorrectOptionID:
				winners = append(winners, w)
			default:
				losers = append(losers, w)
			}
		}

		for _, w := range winners {
			st := statsFor(w.UserID, w.Username)
			st.Wins++
			st.TotalDrinksReceived += w.Amount
			// Amounts are validated positive on placement, so Add cannot fail here
			_ = st.DrinksToDistribute.Add(w.DrinkType, w.MeasureType, w.Amount)
		}

		for i, w := range losers {
			st := statsFor(w.UserID, w.Username)
			st.TotalDrinksLost += w.Amount
			_ = st.DrinksToConsume.Add(w.DrinkType, w.MeasureType, w.Amount)

			if len(winners) == 0 {
				continue
			}
			winner := winners[i%len(winners)]
			winnerStats := statsFor(winner.UserID, winner.Username)
			winnerStats.Transactions = append(winnerStats.Transactions, &models.DrinkTransaction{
				ID:           fmt.Sprintf("%s-%s", bet.ID, w.UserID),
				GroupID:      group.ID,
				BetID:        bet.ID,
				FromUserID:   w.UserID,
				FromUsername: w.Username,
				ToUserID:     winner.UserID,
				ToUsername:   winner.Username,
				DrinkType:    winner.DrinkType,
				MeasureType:  winner.MeasureType,
				Amount:       w.Amount,
				Source:       models.TransactionSourceBet,
				Timestamp:    bet.ResolvedAt,
			})
		}
	}

	for _, tx := range group.DistributionHistory {
		if tx.Source != models.TransactionSourceDistribution {
			continue
		}
		st := statsFor(tx.ToUserID, tx.ToUsername)
		st.TotalDrinksReceived += tx.Amount
		st.Transactions = append(st.Transactions, tx)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].TotalDrinksReceived > order[j].TotalDrinksReceived
	})
	result.Members = order

	return result
}
