package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/betabeer/internal/ledger"
	"github.com/KirkDiggler/betabeer/internal/models"
	"github.com/bwmarrin/discordgo"
)

// renderQuantities lists non-zero counts, one unit per line
func renderQuantities(q models.QuantityMap) string {
	units := q.Units()
	if len(units) == 0 {
		return "Nothing"
	}

	lines := make([]string, 0, len(units))
	for _, u := range units {
		lines = append(lines, fmt.Sprintf("%d %s", q.Get(u.DrinkType, u.MeasureType), u))
	}
	return strings.Join(lines, "\n")
}

func renderOptionsField(bet *models.Bet) *discordgo.MessageEmbedField {
	lines := make([]string, 0, len(bet.Options))
	for i, o := range bet.Options {
		marker := ""
		if o.ID == bet.CorrectOptionID {
			marker = " ✅"
		}
		lines = append(lines, fmt.Sprintf("%d. %s%s", i+1, o.Name, marker))
	}
	return &discordgo.MessageEmbedField{
		Name:  "Options",
		Value: strings.Join(lines, "\n"),
	}
}

func renderWagersField(bet *models.Bet) *discordgo.MessageEmbedField {
	if len(bet.Wagers) == 0 {
		return &discordgo.MessageEmbedField{Name: "Wagers", Value: "None yet"}
	}

	lines := make([]string, 0, len(bet.Wagers))
	for _, w := range bet.Wagers {
		choice := "(removed option)"
		if o := bet.Option(w.OptionID); o != nil {
			choice = o.Name
		}
		lines = append(lines, fmt.Sprintf("%s: %d %s on %s", w.Username, w.Amount, w.Unit(), choice))
	}
	return &discordgo.MessageEmbedField{
		Name:  "Wagers",
		Value: strings.Join(lines, "\n"),
	}
}

// renderBetList shows every bet with its number, state and wager count
func renderBetList(group *models.Group) *reply {
	r := &reply{
		Title: group.Name,
		Color: colorInfo,
	}
	if len(group.Bets) == 0 {
		r.Description = "No bets yet. Open one with `/bet create`."
		return r
	}

	for i, bet := range group.Bets {
		status := "🟢 Open"
		if bet.IsResolved() {
			status = "🏁 Settled"
			if o := bet.Option(bet.CorrectOptionID); o != nil {
				status = fmt.Sprintf("🏁 %s", o.Name)
			}
		}

		options := make([]string, 0, len(bet.Options))
		for j, o := range bet.Options {
			options = append(options, fmt.Sprintf("%d. %s", j+1, o.Name))
		}

		r.Fields = append(r.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("#%d %s", i+1, bet.Title),
			Value: fmt.Sprintf("%s | %d wager(s)\n%s", status, len(bet.Wagers), strings.Join(options, "\n")),
		})
	}
	return r
}

// renderStats shows the leaderboard, most drinks received first
func renderStats(group *models.Group, stats *ledger.GroupStats) *reply {
	r := &reply{
		Title: fmt.Sprintf("%s Leaderboard", group.Name),
		Color: colorInfo,
	}

	for i, m := range stats.Members {
		prefix := fmt.Sprintf("%d.", i+1)
		switch i {
		case 0:
			prefix = "🥇"
		case 1:
			prefix = "🥈"
		case 2:
			prefix = "🥉"
		}

		r.Fields = append(r.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s %s", prefix, m.Username),
			Value: fmt.Sprintf("Wins: %d | Received: %d | Lost: %d\nTo drink:\n%s\nTo hand out:\n%s",
				m.Wins, m.TotalDrinksReceived, m.TotalDrinksLost,
				renderQuantities(m.DrinksToConsume), renderQuantities(m.DrinksToDistribute)),
			Inline: true,
		})
	}

	if len(stats.OrphanedWagers) > 0 {
		r.Description = fmt.Sprintf("%d wager(s) point at removed options and are not counted.", len(stats.OrphanedWagers))
	}
	return r
}

// renderBalance shows a member's persisted balance
func renderBalance(username string, balance *models.Balance) *reply {
	return &reply{
		Title: fmt.Sprintf("%s's tab", username),
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "To drink", Value: renderQuantities(balance.DrinksToConsume), Inline: true},
			{Name: "To hand out", Value: renderQuantities(balance.DrinksToDistribute), Inline: true},
		},
	}
}

// renderHistory shows the most recent distributions, newest first
func renderHistory(transactions []*models.DrinkTransaction, limit int) *reply {
	r := &reply{
		Title: "Recent hand-outs",
		Color: colorInfo,
	}
	if len(transactions) == 0 {
		r.Description = "Nobody has handed out drinks yet."
		return r
	}

	lines := make([]string, 0, limit)
	for i := len(transactions) - 1; i >= 0 && len(lines) < limit; i-- {
		tx := transactions[i]
		lines = append(lines, fmt.Sprintf("%s → %s: %d %s (%s)",
			tx.FromUsername, tx.ToUsername, tx.Amount, tx.Unit(), tx.Timestamp.Format("Jan 2 15:04")))
	}
	r.Description = strings.Join(lines, "\n")
	return r
}
