package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/betabeer/internal/ledger"
	"github.com/KirkDiggler/betabeer/internal/models"
	"github.com/KirkDiggler/betabeer/internal/services/betting"
	"github.com/KirkDiggler/betabeer/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// optionSeparator splits the option list typed into /bet create and /bet edit
const optionSeparator = "|"

// historyLimit caps the transactions shown by /bet history
const historyLimit = 10

// BetCommand handles the /bet command. Each channel is one betting group.
type BetCommand struct {
	BaseCommand
	bettingService   betting.Service
	messagingService messaging.Service
	logger           log.FieldLogger
}

// request is the parsed invocation of a /bet subcommand
type request struct {
	GroupID    string
	UserID     string
	Username   string
	Subcommand string
	options    map[string]*discordgo.ApplicationCommandInteractionDataOption
}

func (r *request) str(name string) string {
	if o, ok := r.options[name]; ok {
		return o.StringValue()
	}
	return ""
}

func (r *request) integer(name string) int {
	if o, ok := r.options[name]; ok {
		return int(o.IntValue())
	}
	return 0
}

func (r *request) user(name string) string {
	if o, ok := r.options[name]; ok {
		return o.UserValue(nil).ID
	}
	return ""
}

// NewBetCommand creates a new bet command handler
func NewBetCommand(bettingService betting.Service, messagingService messaging.Service, logger log.FieldLogger) *BetCommand {
	if logger == nil {
		logger = log.StandardLogger()
	}

	betNumber := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "bet",
		Description: "Bet number from /bet list",
		Required:    true,
		MinValue:    floatPtr(1),
	}
	optionNumber := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "option",
		Description: "Option number",
		Required:    true,
		MinValue:    floatPtr(1),
	}
	title := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "title",
		Description: "What are we betting on?",
		Required:    true,
	}
	options := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "options",
		Description: "Options separated by " + optionSeparator,
		Required:    true,
	}
	amount := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "amount",
		Description: "How many",
		Required:    true,
		MinValue:    floatPtr(1),
	}

	return &BetCommand{
		BaseCommand: BaseCommand{
			Name:        "bet",
			Description: "Bet drinks with your friends",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("setup", "Start a betting group in this channel", &discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Group name",
				}),
				subcommand("join", "Join this channel's betting group"),
				subcommand("leave", "Leave this channel's betting group"),
				subcommand("create", "Open a new bet", title, options),
				subcommand("edit", "Change a bet's title and options", betNumber, title, options),
				subcommand("wager", "Wager drinks on an option", betNumber, optionNumber, drinkOption(), measureOption(), amount),
				subcommand("resolve", "Mark the winning option", betNumber, optionNumber),
				subcommand("reopen", "Undo a bet's resolution", betNumber),
				subcommand("delete", "Delete a bet", betNumber),
				subcommand("list", "Show the bets in this channel"),
				subcommand("stats", "Show the leaderboard"),
				subcommand("balance", "Show your drinks to consume and distribute"),
				subcommand("give", "Hand out drinks you won", &discordgo.ApplicationCommandOption{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "to",
					Description: "Who drinks",
					Required:    true,
				}, drinkOption(), measureOption(), amount),
				subcommand("history", "Show recent drink hand-outs"),
			},
		},
		bettingService:   bettingService,
		messagingService: messagingService,
		logger:           logger,
	}
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

func drinkOption() *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.DrinkTypes))
	for _, d := range models.DrinkTypes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: d.DisplayName(), Value: string(d)})
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "drink",
		Description: "Drink type",
		Required:    true,
		Choices:     choices,
	}
}

func measureOption() *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.MeasureTypes))
	for _, m := range models.MeasureTypes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: m.DisplayName(), Value: string(m)})
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "measure",
		Description: "Measure",
		Required:    true,
		Choices:     choices,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

// Handle processes a Discord interaction for the bet command
func (c *BetCommand) Handle(s Responder, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	req, err := parseRequest(i)
	if err != nil {
		return RespondWithError(s, i, "Error", err.Error())
	}
	if req == nil {
		return nil
	}

	ctx := context.Background()
	r, err := c.execute(ctx, req)
	if err != nil {
		c.logger.WithFields(log.Fields{
			"subcommand": req.Subcommand,
			"groupID":    req.GroupID,
			"userID":     req.UserID,
			"error":      err,
		}).Warn("Bet command failed")

		msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
		if msgErr != nil {
			return RespondWithError(s, i, "Error", err.Error())
		}
		return RespondWithError(s, i, msg.Title, msg.Message)
	}

	return s.InteractionRespond(i.Interaction, r.toResponse())
}

// parseRequest extracts the subcommand and caller from an interaction.
// It returns nil when the interaction is not a /bet subcommand.
func parseRequest(i *discordgo.InteractionCreate) (*request, error) {
	data := i.ApplicationCommandData()
	if data.Name != "bet" || len(data.Options) == 0 {
		return nil, nil
	}

	var user *discordgo.User
	username := ""
	switch {
	case i.Member != nil && i.Member.User != nil:
		user = i.Member.User
		username = i.Member.Nick
	case i.User != nil:
		user = i.User
	default:
		return nil, errors.New("could not identify the user")
	}
	if username == "" {
		username = user.GlobalName
	}
	if username == "" {
		username = user.Username
	}

	sub := data.Options[0]
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(sub.Options))
	for _, o := range sub.Options {
		opts[o.Name] = o
	}

	return &request{
		GroupID:    i.ChannelID,
		UserID:     user.ID,
		Username:   username,
		Subcommand: sub.Name,
		options:    opts,
	}, nil
}

// execute runs a subcommand against the betting service
func (c *BetCommand) execute(ctx context.Context, req *request) (*reply, error) {
	switch req.Subcommand {
	case "setup":
		return c.handleSetup(ctx, req)
	case "join":
		return c.handleJoin(ctx, req)
	case "leave":
		return c.handleLeave(ctx, req)
	case "create":
		return c.handleCreate(ctx, req)
	case "edit":
		return c.handleEdit(ctx, req)
	case "wager":
		return c.handleWager(ctx, req)
	case "resolve":
		return c.handleResolve(ctx, req)
	case "reopen":
		return c.handleReopen(ctx, req)
	case "delete":
		return c.handleDelete(ctx, req)
	case "list":
		return c.handleList(ctx, req)
	case "stats":
		return c.handleStats(ctx, req)
	case "balance":
		return c.handleBalance(ctx, req)
	case "give":
		return c.handleGive(ctx, req)
	case "history":
		return c.handleHistory(ctx, req)
	default:
		return nil, fmt.Errorf("%w: unknown subcommand %q", ledger.ErrValidation, req.Subcommand)
	}
}

func (c *BetCommand) handleSetup(ctx context.Context, req *request) (*reply, error) {
	name := req.str("name")
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("%s's bets", req.Username)
	}

	out, err := c.bettingService.CreateGroup(ctx, &betting.CreateGroupInput{
		GroupID:   req.GroupID,
		Name:      name,
		OwnerID:   req.UserID,
		OwnerName: req.Username,
	})
	if err != nil {
		return nil, err
	}

	return &reply{
		Title:       out.Group.Name,
		Description: fmt.Sprintf("%s opened the bar. Everyone else: `/bet join`.", req.Username),
	}, nil
}

func (c *BetCommand) handleJoin(ctx context.Context, req *request) (*reply, error) {
	out, err := c.bettingService.AddMember(ctx, &betting.AddMemberInput{
		GroupID:  req.GroupID,
		UserID:   req.UserID,
		Username: req.Username,
	})
	if err != nil {
		return nil, err
	}

	if !out.Added {
		return &reply{Content: "You're already in. Have a drink.", Ephemeral: true}, nil
	}
	return &reply{Content: fmt.Sprintf("%s joined **%s**. 🍻", req.Username, out.Group.Name)}, nil
}

func (c *BetCommand) handleLeave(ctx context.Context, req *request) (*reply, error) {
	_, err := c.bettingService.RemoveMember(ctx, &betting.RemoveMemberInput{
		GroupID: req.GroupID,
		ActorID: req.UserID,
		UserID:  req.UserID,
	})
	if err != nil {
		return nil, err
	}
	return &reply{Content: fmt.Sprintf("%s left the group. Their tab stays open.", req.Username)}, nil
}

func (c *BetCommand) handleCreate(ctx context.Context, req *request) (*reply, error) {
	out, err := c.bettingService.CreateBet(ctx, &betting.CreateBetInput{
		GroupID: req.GroupID,
		UserID:  req.UserID,
		Title:   req.str("title"),
		Options: splitOptions(req.str("options")),
	})
	if err != nil {
		return nil, err
	}

	group, err := c.bettingService.GetGroup(ctx, &betting.GetGroupInput{GroupID: req.GroupID})
	if err != nil {
		return nil, err
	}
	number, _ := group.Group.Bet(out.Bet.ID)

	announcement := fmt.Sprintf("%s opened a bet: %s", req.Username, out.Bet.Title)
	msg, err := c.messagingService.GetBetCreatedMessage(ctx, &messaging.GetBetCreatedMessageInput{
		CreatorName: req.Username,
		Title:       out.Bet.Title,
		OptionCount: len(out.Bet.Options),
	})
	if err == nil {
		announcement = msg.Message
	}

	return &reply{
		Title:       fmt.Sprintf("Bet #%d", number+1),
		Description: announcement,
		Fields:      []*discordgo.MessageEmbedField{renderOptionsField(out.Bet)},
	}, nil
}

func (c *BetCommand) handleEdit(ctx context.Context, req *request) (*reply, error) {
	bet, _, err := c.findBet(ctx, req)
	if err != nil {
		return nil, err
	}

	out, err := c.bettingService.EditBet(ctx, &betting.EditBetInput{
		GroupID: req.GroupID,
		BetID:   bet.ID,
		UserID:  req.UserID,
		Title:   req.str("title"),
		Options: splitOptions(req.str("options")),
	})
	if err != nil {
		return nil, err
	}

	r := &reply{
		Title:  fmt.Sprintf("Bet #%d edited", req.integer("bet")),
		Fields: []*discordgo.MessageEmbedField{renderOptionsField(out.Bet)},
	}
	if len(out.OrphanedWagers) > 0 {
		r.Description = fmt.Sprintf("%d wager(s) lost their option and no longer count.", len(out.OrphanedWagers))
	}
	return r, nil
}

func (c *BetCommand) handleWager(ctx context.Context, req *request) (*reply, error) {
	bet, group, err := c.findBet(ctx, req)
	if err != nil {
		return nil, err
	}
	option, err := optionAt(bet, req.integer("option"))
	if err != nil {
		return nil, err
	}
	drink, err := models.ParseDrinkType(req.str("drink"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrValidation, err)
	}
	measure, err := models.ParseMeasureType(req.str("measure"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrValidation, err)
	}

	out, err := c.bettingService.PlaceWager(ctx, &betting.PlaceWagerInput{
		GroupID:     group.ID,
		BetID:       bet.ID,
		UserID:      req.UserID,
		Username:    req.Username,
		OptionID:    option.ID,
		DrinkType:   drink,
		MeasureType: measure,
		Amount:      req.integer("amount"),
	})
	if err != nil {
		return nil, err
	}

	content := fmt.Sprintf("%s wagered %d %s on %s", req.Username, out.Wager.Amount, out.Wager.Unit(), option.Name)
	msg, err := c.messagingService.GetWagerPlacedMessage(ctx, &messaging.GetWagerPlacedMessageInput{
		PlayerName: req.Username,
		OptionName: option.Name,
		Amount:     out.Wager.Amount,
		Unit:       out.Wager.Unit().String(),
		Replaced:   out.Replaced,
	})
	if err == nil {
		content = msg.Message
	}

	return &reply{Content: content}, nil
}

func (c *BetCommand) handleResolve(ctx context.Context, req *request) (*reply, error) {
	bet, group, err := c.findBet(ctx, req)
	if err != nil {
		return nil, err
	}
	option, err := optionAt(bet, req.integer("option"))
	if err != nil {
		return nil, err
	}

	out, err := c.bettingService.ResolveBet(ctx, &betting.ResolveBetInput{
		GroupID:  group.ID,
		BetID:    bet.ID,
		UserID:   req.UserID,
		OptionID: option.ID,
	})
	if err != nil {
		return nil, err
	}

	winners, losers := splitWagerers(out.Bet, group)
	r := &reply{
		Title:       "Bet Settled",
		Description: fmt.Sprintf("**%s** resolved to **%s**", out.Bet.Title, option.Name),
		Fields:      []*discordgo.MessageEmbedField{renderWagersField(out.Bet)},
	}
	msg, err := c.messagingService.GetBetResolvedMessage(ctx, &messaging.GetBetResolvedMessageInput{
		Title:         out.Bet.Title,
		WinningOption: option.Name,
		WinnerNames:   winners,
		LoserNames:    losers,
		Changed:       out.Changed,
	})
	if err == nil {
		r.Title = msg.Title
		r.Description = msg.Message
	}
	return r, nil
}

func (c *BetCommand) handleReopen(ctx context.Context, req *request) (*reply, error) {
	bet, group, err := c.findBet(ctx, req)
	if err != nil {
		return nil, err
	}

	out, err := c.bettingService.ReopenBet(ctx, &betting.ReopenBetInput{
		GroupID: group.ID,
		BetID:   bet.ID,
		UserID:  req.UserID,
	})
	if err != nil {
		return nil, err
	}

	if !out.Changed {
		return &reply{Content: fmt.Sprintf("**%s** is already open.", out.Bet.Title), Ephemeral: true}, nil
	}
	return &reply{Content: fmt.Sprintf("**%s** is open again. All drinks from it were taken back.", out.Bet.Title)}, nil
}

func (c *BetCommand) handleDelete(ctx context.Context, req *request) (*reply, error) {
	bet, group, err := c.findBet(ctx, req)
	if err != nil {
		return nil, err
	}

	if _, err := c.bettingService.DeleteBet(ctx, &betting.DeleteBetInput{
		GroupID: group.ID,
		BetID:   bet.ID,
		UserID:  req.UserID,
	}); err != nil {
		return nil, err
	}
	return &reply{Content: fmt.Sprintf("Deleted **%s**.", bet.Title)}, nil
}

func (c *BetCommand) handleList(ctx context.Context, req *request) (*reply, error) {
	out, err := c.bettingService.GetGroup(ctx, &betting.GetGroupInput{GroupID: req.GroupID})
	if err != nil {
		return nil, err
	}
	return renderBetList(out.Group), nil
}

func (c *BetCommand) handleStats(ctx context.Context, req *request) (*reply, error) {
	group, err := c.bettingService.GetGroup(ctx, &betting.GetGroupInput{GroupID: req.GroupID})
	if err != nil {
		return nil, err
	}
	out, err := c.bettingService.GetGroupStats(ctx, &betting.GetGroupStatsInput{GroupID: req.GroupID})
	if err != nil {
		return nil, err
	}
	return renderStats(group.Group, out.Stats), nil
}

func (c *BetCommand) handleBalance(ctx context.Context, req *request) (*reply, error) {
	out, err := c.bettingService.GetBalance(ctx, &betting.GetBalanceInput{
		GroupID: req.GroupID,
		UserID:  req.UserID,
	})
	if err != nil {
		return nil, err
	}
	r := renderBalance(req.Username, out.Balance)
	r.Ephemeral = true
	return r, nil
}

func (c *BetCommand) handleGive(ctx context.Context, req *request) (*reply, error) {
	drink, err := models.ParseDrinkType(req.str("drink"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrValidation, err)
	}
	measure, err := models.ParseMeasureType(req.str("measure"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ledger.ErrValidation, err)
	}

	out, err := c.bettingService.DistributeDrinks(ctx, &betting.DistributeDrinksInput{
		GroupID:    req.GroupID,
		FromUserID: req.UserID,
		Distributions: []ledger.Distribution{{
			UserID:      req.user("to"),
			DrinkType:   drink,
			MeasureType: measure,
			Amount:      req.integer("amount"),
		}},
	})
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(out.Transactions))
	for _, tx := range out.Transactions {
		line := fmt.Sprintf("%s gave %d %s to %s", tx.FromUsername, tx.Amount, tx.Unit(), tx.ToUsername)
		msg, err := c.messagingService.GetDistributionMessage(ctx, &messaging.GetDistributionMessageInput{
			FromName: tx.FromUsername,
			ToName:   tx.ToUsername,
			Amount:   tx.Amount,
			Unit:     tx.Unit().String(),
		})
		if err == nil {
			line = msg.Message
		}
		lines = append(lines, line)
	}

	return &reply{
		Content: strings.Join(lines, "\n"),
		Fields: []*discordgo.MessageEmbedField{{
			Name:  "Left to hand out",
			Value: renderQuantities(out.Balance.DrinksToDistribute),
		}},
	}, nil
}

func (c *BetCommand) handleHistory(ctx context.Context, req *request) (*reply, error) {
	out, err := c.bettingService.GetTransactionHistory(ctx, &betting.GetTransactionHistoryInput{GroupID: req.GroupID})
	if err != nil {
		return nil, err
	}
	return renderHistory(out.Transactions, historyLimit), nil
}

// findBet loads the group and resolves the 1-based bet number
func (c *BetCommand) findBet(ctx context.Context, req *request) (*models.Bet, *models.Group, error) {
	out, err := c.bettingService.GetGroup(ctx, &betting.GetGroupInput{GroupID: req.GroupID})
	if err != nil {
		return nil, nil, err
	}

	number := req.integer("bet")
	if number < 1 || number > len(out.Group.Bets) {
		return nil, nil, fmt.Errorf("%w: bet #%d", ledger.ErrNotFound, number)
	}
	return out.Group.Bets[number-1], out.Group, nil
}

func optionAt(bet *models.Bet, number int) (*models.BettingOption, error) {
	if number < 1 || number > len(bet.Options) {
		return nil, fmt.Errorf("%w: option #%d on %s", ledger.ErrNotFound, number, bet.Title)
	}
	return bet.Options[number-1], nil
}

// splitOptions splits "a | b | c" into option names. Blank entries are kept
// so validation can report them.
func splitOptions(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, optionSeparator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// splitWagerers returns the display names of winners and losers of a resolved bet
func splitWagerers(bet *models.Bet, group *models.Group) ([]string, []string) {
	var winners, losers []string
	for _, w := range bet.Wagers {
		if !bet.HasOption(w.OptionID) {
			continue
		}
		name := w.Username
		if name == "" {
			name = group.Username(w.UserID)
		}
		if w.OptionID == bet.CorrectOptionID {
			winners = append(winners, name)
		} else {
			losers = append(losers, name)
		}
	}
	return winners, losers
}
