package betting

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/betabeer/internal/events"
	"github.com/KirkDiggler/betabeer/internal/ledger"
	"github.com/KirkDiggler/betabeer/internal/models"
	log "github.com/sirupsen/logrus"
)

// validateBetText trims and checks a bet title and its option names
func validateBetText(title string, options []string) (string, []string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", nil, invalid("bet title is required")
	}
	if len(options) == 0 {
		return "", nil, invalid("a bet needs at least one option")
	}

	names := make([]string, 0, len(options))
	for i, option := range options {
		name := strings.TrimSpace(option)
		if name == "" {
			return "", nil, invalid("option %d has no name", i+1)
		}
		names = append(names, name)
	}

	return title, names, nil
}

// CreateBet adds an open bet with no wagers to the group
func (s *service) CreateBet(ctx context.Context, input *CreateBetInput) (*CreateBetOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}
	if input.UserID == "" {
		return nil, invalid("user is required")
	}
	title, names, err := validateBetText(input.Title, input.Options)
	if err != nil {
		return nil, err
	}

	betID := s.uuidGenerator.NewUUID()

	group, _, err := s.updateGroup(ctx, input.GroupID, input.UserID, func(group *models.Group) (*groupChange, error) {
		now := s.clock.Now()
		group.Bets = append(group.Bets, &models.Bet{
			ID:        betID,
			Title:     title,
			Options:   models.BuildOptions(betID, names),
			Wagers:    []*models.BetWager{},
			CreatedBy: input.UserID,
			CreatedAt: now,
			UpdatedAt: now,
		})
		return &groupChange{Event: s.newEvent(events.EventTypeBetCreated, input.UserID, betID)}, nil
	})
	if err != nil {
		return nil, err
	}

	_, bet := group.Bet(betID)

	s.logger.WithFields(log.Fields{
		"groupID": group.ID,
		"betID":   betID,
		"options": len(names),
	}).Info("Bet created")

	return &CreateBetOutput{Bet: bet}, nil
}

// EditBet replaces the title and regenerates the options of a bet in either
// state. Option IDs depend only on position, so wagers keep pointing at the
// option in the same slot. Wagers whose slot was removed become orphaned.
func (s *service) EditBet(ctx context.Context, input *EditBetInput) (*EditBetOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}
	if input.UserID == "" {
		return nil, invalid("user is required")
	}
	title, names, err := validateBetText(input.Title, input.Options)
	if err != nil {
		return nil, err
	}

	group, _, err := s.updateGroup(ctx, input.GroupID, input.UserID, func(group *models.Group) (*groupChange, error) {
		_, bet := group.Bet(input.BetID)
		if bet == nil {
			return nil, betNotFound(input.BetID)
		}

		options := models.BuildOptions(bet.ID, names)
		if bet.IsResolved() && !containsOption(options, bet.CorrectOptionID) {
			return nil, fmt.Errorf("%w: edit would remove the winning option of bet %s, reopen it first",
				ledger.ErrInvalidState, bet.ID)
		}

		bet.Title = title
		bet.Options = options
		bet.UpdatedAt = s.clock.Now()

		return &groupChange{Event: s.newEvent(events.EventTypeBetEdited, input.UserID, bet.ID)}, nil
	})
	if err != nil {
		return nil, err
	}

	_, bet := group.Bet(input.BetID)
	orphaned := bet.OrphanedWagers()
	if len(orphaned) > 0 {
		s.logger.WithFields(log.Fields{
			"groupID":  group.ID,
			"betID":    bet.ID,
			"orphaned": len(orphaned),
		}).Warn("Bet edit orphaned wagers")
	}

	return &EditBetOutput{Bet: bet, OrphanedWagers: orphaned}, nil
}

func containsOption(options []*models.BettingOption, optionID string) bool {
	for _, o := range options {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

// ResolveBet marks the correct option. Resolving to the option already
// marked writes nothing. Balances move by the difference between the old and
// new settlement, so switching the outcome reverses the previous one.
func (s *service) ResolveBet(ctx context.Context, input *ResolveBetInput) (*ResolveBetOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}
	if input.UserID == "" {
		return nil, invalid("user is required")
	}

	group, changed, err := s.updateGroup(ctx, input.GroupID, input.UserID, func(group *models.Group) (*groupChange, error) {
		_, bet := group.Bet(input.BetID)
		if bet == nil {
			return nil, betNotFound(input.BetID)
		}
		if !bet.HasOption(input.OptionID) {
			return nil, fmt.Errorf("%w: option %s on bet %s", ledger.ErrNotFound, input.OptionID, bet.ID)
		}
		if bet.IsResolved() && bet.CorrectOptionID == input.OptionID {
			return nil, nil
		}

		bet.Resolve(input.OptionID, s.clock.Now())

		event := s.newEvent(events.EventTypeBetResolved, input.UserID, bet.ID)
		event.Attributes = map[string]string{"option_id": input.OptionID}
		return &groupChange{Event: event}, nil
	})
	if err != nil {
		return nil, err
	}

	_, bet := group.Bet(input.BetID)

	s.logger.WithFields(log.Fields{
		"groupID":  group.ID,
		"betID":    bet.ID,
		"optionID": input.OptionID,
		"changed":  changed,
	}).Info("Bet resolved")

	return &ResolveBetOutput{
		Bet:            bet,
		Changed:        changed,
		OrphanedWagers: bet.OrphanedWagers(),
	}, nil
}

// ReopenBet clears the resolution of a bet. Only the group owner or the bet's
// creator may reopen. It fails with an insufficient balance error when the
// winnings being reversed were already distributed.
func (s *service) ReopenBet(ctx context.Context, input *ReopenBetInput) (*ReopenBetOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}
	if input.UserID == "" {
		return nil, invalid("user is required")
	}

	group, changed, err := s.updateGroup(ctx, input.GroupID, input.UserID, func(group *models.Group) (*groupChange, error) {
		_, bet := group.Bet(input.BetID)
		if bet == nil {
			return nil, betNotFound(input.BetID)
		}
		if err := requireBetAdmin(group, bet, input.UserID); err != nil {
			return nil, err
		}
		if !bet.IsResolved() {
			return nil, nil
		}

		bet.Reopen(s.clock.Now())
		return &groupChange{Event: s.newEvent(events.EventTypeBetReopened, input.UserID, bet.ID)}, nil
	})
	if err != nil {
		return nil, err
	}

	_, bet := group.Bet(input.BetID)
	return &ReopenBetOutput{Bet: bet, Changed: changed}, nil
}

// DeleteBet removes a bet in either state and reverses its settlement
func (s *service) DeleteBet(ctx context.Context, input *DeleteBetInput) (*DeleteBetOutput, error) {
	if input == nil {
		return nil, invalid("input is required")
	}
	if input.UserID == "" {
		return nil, invalid("user is required")
	}

	_, _, err := s.updateGroup(ctx, input.GroupID, input.UserID, func(group *models.Group) (*groupChange, error) {
		i, bet := group.Bet(input.BetID)
		if bet == nil {
			return nil, betNotFound(input.BetID)
		}
		if err := requireBetAdmin(group, bet, input.UserID); err != nil {
			return nil, err
		}

		group.Bets = append(group.Bets[:i], group.Bets[i+1:]...)
		return &groupChange{Event: s.newEvent(events.EventTypeBetDeleted, input.UserID, bet.ID)}, nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteBetOutput{}, nil
}

// requireBetAdmin allows the group owner and the bet's creator
func requireBetAdmin(group *models.Group, bet *models.Bet, userID string) error {
	if userID != "" && (userID == group.CreatedBy || userID == bet.CreatedBy) {
		return nil
	}
	return fmt.Errorf("%w: only the group owner or the bet creator can change bet %s", ledger.ErrNotPermitted, bet.ID)
}
