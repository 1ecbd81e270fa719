package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	colorSuccess = 0x00ff00
	colorInfo    = 0x3498db
	colorError   = 0xff0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s Responder, i *discordgo.InteractionCreate) error
}

// Responder sends interaction responses; *discordgo.Session satisfies it
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// reply is the rendered result of a command before it is sent
type reply struct {
	Content     string
	Title       string
	Description string
	Fields      []*discordgo.MessageEmbedField
	Color       int

	// Ephemeral replies are only shown to the invoking user
	Ephemeral bool
}

// toResponse converts a reply into a channel message response
func (r *reply) toResponse() *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{
		Content: r.Content,
	}
	if r.Title != "" || r.Description != "" || len(r.Fields) > 0 {
		color := r.Color
		if color == 0 {
			color = colorSuccess
		}
		data.Embeds = []*discordgo.MessageEmbed{{
			Title:       r.Title,
			Description: r.Description,
			Color:       color,
			Fields:      r.Fields,
		}}
	}
	if r.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// RespondWithMessage sends a simple text message response to an interaction
func RespondWithMessage(s Responder, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, (&reply{Content: message}).toResponse())
}

// RespondWithError sends an ephemeral error embed to an interaction
func RespondWithError(s Responder, i *discordgo.InteractionCreate, title, message string) error {
	r := &reply{
		Title:       title,
		Description: message,
		Color:       colorError,
		Ephemeral:   true,
	}
	return s.InteractionRespond(i.Interaction, r.toResponse())
}
