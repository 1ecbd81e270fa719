package betting

import (
	"context"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/betabeer/internal/events"
	"github.com/KirkDiggler/betabeer/internal/ledger"
	"github.com/KirkDiggler/betabeer/internal/models"
)

// PlaceWager stores the user's only wager on an open bet, replacing any
// previous one. Wagers do not touch balances until the bet is resolved.
func (s *service) PlaceWager(ctx context.Context, input *PlaceWagerInput) (*PlaceWagerOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}
	if input.UserID == "" {
		return nil, invalid("user is required")
	}
	if input.Amount <= 0 {
		return nil, invalid("amount must be positive, got %d", input.Amount)
	}
	unit := models.DrinkUnit{DrinkType: input.DrinkType, MeasureType: input.MeasureType}
	if !unit.Valid() {
		return nil, invalid("unknown drink unit %s/%s", input.DrinkType, input.MeasureType)
	}

	var wager *models.BetWager
	var replaced bool

	group, _, err := s.updateGroup(ctx, input.GroupID, input.UserID, func(group *models.Group) (*groupChange, error) {
		_, bet := group.Bet(input.BetID)
		if bet == nil {
			return nil, betNotFound(input.BetID)
		}
		if bet.IsFinished {
			return nil, fmt.Errorf("%w: bet %s is already resolved", ledger.ErrInvalidState, bet.ID)
		}
		if !bet.HasOption(input.OptionID) {
			return nil, fmt.Errorf("%w: option %s on bet %s", ledger.ErrNotFound, input.OptionID, bet.ID)
		}

		username := input.Username
		if username == "" {
			username = group.Username(input.UserID)
		}

		wager = &models.BetWager{
			UserID:      input.UserID,
			Username:    username,
			OptionID:    input.OptionID,
			DrinkType:   input.DrinkType,
			MeasureType: input.MeasureType,
			Amount:      input.Amount,
			Timestamp:   s.clock.Now(),
		}
		replaced = bet.UpsertWager(wager)
		bet.UpdatedAt = wager.Timestamp

		event := s.newEvent(events.EventTypeWagerPlaced, input.UserID, bet.ID)
		event.Attributes = map[string]string{
			"option_id": input.OptionID,
			"unit":      unit.String(),
			"amount":    strconv.Itoa(input.Amount),
		}
		return &groupChange{Event: event}, nil
	})
	if err != nil {
		return nil, err
	}

	_, bet := group.Bet(input.BetID)
	return &PlaceWagerOutput{
		Bet:      bet,
		Wager:    bet.WagerFor(input.UserID),
		Replaced: replaced,
	}, nil
}
