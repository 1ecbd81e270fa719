package discord

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/betabeer/internal/services/betting"
	"github.com/KirkDiggler/betabeer/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	logger     log.FieldLogger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	BettingService   betting.Service
	MessagingService messaging.Service

	// Logger defaults to the standard logrus logger
	Logger log.FieldLogger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.BettingService == nil {
		return nil, errors.New("betting service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		logger:     logger,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	betCmd := NewBetCommand(b.config.BettingService, b.config.MessagingService, b.logger)
	if err := b.RegisterCommand(betCmd); err != nil {
		return fmt.Errorf("failed to register bet command: %w", err)
	}

	b.logger.Info("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop removes registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		fields := log.Fields{"command": cmdName, "commandID": cmdID}
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.WithFields(fields).WithError(err).Warn("Failed to delete command")
		} else {
			b.logger.WithFields(fields).Debug("Deleted command")
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to the session user when no application ID is configured
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for the configured guild
// when one is set and globally otherwise
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	fields := log.Fields{"command": cmd.GetName()}
	if b.config.GuildID != "" {
		fields["guildID"] = b.config.GuildID
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.WithFields(fields).WithField("commandID", createdCmd.ID).Info("Registered command")

	return nil
}

// handleInteraction routes slash commands to their handlers
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	h, ok := b.commands[name]
	if !ok {
		if err := RespondWithMessage(s, i, "I don't know that command."); err != nil {
			b.logger.WithError(err).Warn("Failed to respond to unknown command")
		}
		return
	}

	if err := h.Handle(s, i); err != nil {
		b.logger.WithField("command", name).WithError(err).Error("Error handling command")
	}
}
