package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/KirkDiggler/betabeer/internal/ledger"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

// GetBetCreatedMessage returns an announcement for a new bet
func (s *service) GetBetCreatedMessage(ctx context.Context, input *GetBetCreatedMessageInput) (*GetBetCreatedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	if tone == ToneNeutral {
		return &GetBetCreatedMessageOutput{
			Message: fmt.Sprintf("%s opened a bet: %s", input.CreatorName, input.Title),
			Tone:    tone,
		}, nil
	}

	messages := []string{
		fmt.Sprintf("%s wants to know: **%s** Put your drinks where your mouth is!", input.CreatorName, input.Title),
		fmt.Sprintf("New bet from %s! **%s** %d ways to be wrong.", input.CreatorName, input.Title, input.OptionCount),
		fmt.Sprintf("**%s** The bar is open for wagers, courtesy of %s.", input.Title, input.CreatorName),
		fmt.Sprintf("%s has a question and your liver has a stake in it: **%s**", input.CreatorName, input.Title),
		fmt.Sprintf("Place your bets! %s asks **%s**", input.CreatorName, input.Title),
	}

	return &GetBetCreatedMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetWagerPlacedMessage returns a message for a placed or replaced wager
func (s *service) GetWagerPlacedMessage(ctx context.Context, input *GetWagerPlacedMessageInput) (*GetWagerPlacedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stake := fmt.Sprintf("%d %s", input.Amount, input.Unit)

	var messages []string
	if input.Replaced {
		messages = []string{
			fmt.Sprintf("%s changed their mind and now backs **%s** for %s. Cold feet?", input.PlayerName, input.OptionName, stake),
			fmt.Sprintf("Flip-flop! %s moves to **%s** with %s.", input.PlayerName, input.OptionName, stake),
			fmt.Sprintf("%s rewrote history: %s on **%s** now.", input.PlayerName, stake, input.OptionName),
		}
	} else {
		messages = []string{
			fmt.Sprintf("%s puts %s on **%s**. Bold.", input.PlayerName, stake, input.OptionName),
			fmt.Sprintf("%s is in! %s riding on **%s**.", input.PlayerName, stake, input.OptionName),
			fmt.Sprintf("%s backs **%s** with %s. Somebody's going to drink.", input.PlayerName, input.OptionName, stake),
			fmt.Sprintf("%s on **%s** from %s. The bartender is taking notes.", stake, input.OptionName, input.PlayerName),
		}
	}

	return &GetWagerPlacedMessageOutput{Message: s.pick(messages)}, nil
}

// GetBetResolvedMessage returns the announcement of a bet's outcome
func (s *service) GetBetResolvedMessage(ctx context.Context, input *GetBetResolvedMessageInput) (*GetBetResolvedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.Changed {
		return &GetBetResolvedMessageOutput{
			Title:   "Already Settled",
			Message: fmt.Sprintf("**%s** was already settled on **%s**. Nothing changes.", input.Title, input.WinningOption),
		}, nil
	}

	titles := []string{
		"Bet Settled!",
		"The Verdict Is In!",
		"Cheers to That!",
		"Bottoms Up!",
	}

	var message string
	switch {
	case len(input.WinnerNames) == 0 && len(input.LoserNames) == 0:
		message = fmt.Sprintf("**%s** is settled on **%s**, but nobody had the guts to wager.", input.Title, input.WinningOption)
	case len(input.WinnerNames) == 0:
		messages := []string{
			fmt.Sprintf("**%s** went to **%s** and nobody saw it coming. %s, the drinks are on you.", input.Title, input.WinningOption, joinNames(input.LoserNames)),
			fmt.Sprintf("Nobody backed **%s**. Everybody drinks: %s.", input.WinningOption, joinNames(input.LoserNames)),
		}
		message = s.pick(messages)
	case len(input.LoserNames) == 0:
		messages := []string{
			fmt.Sprintf("**%s** is **%s**! Everybody called it, so nobody has to drink for it.", input.Title, input.WinningOption),
			fmt.Sprintf("A clean sweep on **%s**. %s, you're all geniuses with nobody to punish.", input.WinningOption, joinNames(input.WinnerNames)),
		}
		message = s.pick(messages)
	default:
		messages := []string{
			fmt.Sprintf("**%s** is **%s**! %s get to hand out drinks. %s, start drinking.", input.Title, input.WinningOption, joinNames(input.WinnerNames), joinNames(input.LoserNames)),
			fmt.Sprintf("It was **%s** all along. Winners: %s. Drinkers: %s.", input.WinningOption, joinNames(input.WinnerNames), joinNames(input.LoserNames)),
			fmt.Sprintf("The bar has spoken: **%s**. %s called it, %s did not.", input.WinningOption, joinNames(input.WinnerNames), joinNames(input.LoserNames)),
		}
		message = s.pick(messages)
	}

	return &GetBetResolvedMessageOutput{
		Title:   s.pick(titles),
		Message: message,
	}, nil
}

// GetDistributionMessage returns a message for drinks handed out
func (s *service) GetDistributionMessage(ctx context.Context, input *GetDistributionMessageInput) (*GetDistributionMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	drinks := fmt.Sprintf("%d %s", input.Amount, input.Unit)
	messages := []string{
		fmt.Sprintf("%s hands %s to %s. Bottoms up! 🍻", input.FromName, drinks, input.ToName),
		fmt.Sprintf("%s, %s sends you %s with their compliments.", input.ToName, input.FromName, drinks),
		fmt.Sprintf("Delivery for %s: %s, paid for by %s's good judgement.", input.ToName, drinks, input.FromName),
		fmt.Sprintf("%s cashes in %s on %s. No refunds.", input.FromName, drinks, input.ToName),
	}

	return &GetDistributionMessageOutput{Message: s.pick(messages)}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input cannot be nil")
	}

	err := input.Err

	var insufficient *ledger.InsufficientBalanceError
	switch {
	case errors.As(err, &insufficient):
		return &GetErrorMessageOutput{
			Title: "Not So Fast",
			Message: fmt.Sprintf("You only have %d %s to give, not %d. Those drinks are already spoken for.",
				insufficient.Available, insufficient.Unit, insufficient.Requested),
		}, nil
	case errors.Is(err, ledger.ErrNotMember):
		return &GetErrorMessageOutput{
			Title:   "Who Are You?",
			Message: s.pick([]string{"You're not in this group. Use `/bet join` first.", "Members only! Try `/bet join`."}),
		}, nil
	case errors.Is(err, ledger.ErrNotPermitted):
		return &GetErrorMessageOutput{
			Title:   "Nice Try",
			Message: "Only the group owner or the bet's creator can do that.",
		}, nil
	case errors.Is(err, ledger.ErrNotFound):
		return &GetErrorMessageOutput{
			Title:   "Not Found",
			Message: s.pick([]string{"I couldn't find that. Did you have one too many?", "That doesn't exist. Check `/bet list`."}),
		}, nil
	case errors.Is(err, ledger.ErrInvalidState):
		return &GetErrorMessageOutput{
			Title:   "Can't Do That Now",
			Message: strings.TrimPrefix(err.Error(), ledger.ErrInvalidState.Error()+": "),
		}, nil
	case errors.Is(err, ledger.ErrValidation):
		return &GetErrorMessageOutput{
			Title:   "Hmm",
			Message: strings.TrimPrefix(err.Error(), ledger.ErrValidation.Error()+": "),
		}, nil
	case errors.Is(err, ledger.ErrConflict):
		return &GetErrorMessageOutput{
			Title:   "Too Slow",
			Message: "Someone else changed this group at the same time. Give it another go.",
		}, nil
	default:
		return &GetErrorMessageOutput{
			Title:   "Error",
			Message: s.pick([]string{"Something went wrong. The bartender is looking into it.", "Oops! Something spilled. Try again in a moment."}),
		}, nil
	}
}

// joinNames lists names as "a", "a and b" or "a, b and c"
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
