package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/moodmeet/internal/logger"
	"github.com/KirkDiggler/moodmeet/internal/services/accounts"
	"github.com/KirkDiggler/moodmeet/internal/services/messaging"
	"github.com/KirkDiggler/moodmeet/internal/services/orchestrator"
	"github.com/KirkDiggler/moodmeet/internal/services/sessions"
	"github.com/bwmarrin/discordgo"
)

// ComponentHandler is implemented by commands whose messages carry buttons.
// Component custom IDs are prefixed with the command name.
type ComponentHandler interface {
	HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// Bot represents the Discord bot instance
type Bot struct {
	session      *discordgo.Session
	commands     map[string]CommandHandler
	commandIDs   map[string]string // Maps command name to command ID
	orchestrator orchestrator.Service
	members      *Members
	messages     messaging.Service
	logger       *slog.Logger
	config       *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	Orchestrator orchestrator.Service

	// Accounts and Sessions map Discord members to accounts
	Accounts accounts.Service
	Sessions sessions.Service

	// Messages flavors replies, a randomly seeded service when nil
	Messages messaging.Service

	Logger *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.Orchestrator == nil {
		return nil, errors.New("orchestrator cannot be nil")
	}

	if cfg.Accounts == nil || cfg.Sessions == nil {
		return nil, errors.New("account and session services cannot be nil")
	}

	messages := cfg.Messages
	if messages == nil {
		var err error
		if messages, err = messaging.New(&messaging.Config{}); err != nil {
			return nil, err
		}
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:      session,
		commands:     make(map[string]CommandHandler),
		commandIDs:   make(map[string]string),
		orchestrator: cfg.Orchestrator,
		members:      NewMembers(cfg.Accounts, cfg.Sessions),
		messages:     messages,
		logger:       logger.OrDefault(cfg.Logger),
		config:       cfg,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	moods, err := b.orchestrator.ListMoods(ctx)
	if err != nil {
		return fmt.Errorf("failed to load moods: %w", err)
	}

	meetup := NewMeetupCommand(&MeetupConfig{
		Orchestrator: b.orchestrator,
		Members:      b.members,
		Messages:     b.messages,
		Moods:        moods,
		Logger:       b.logger,
	})
	if err := b.RegisterCommand(meetup); err != nil {
		return fmt.Errorf("failed to register meetup command: %w", err)
	}

	b.logger.Info("discord bot is running")
	return nil
}

// Stop removes the registered commands, ends member sessions and closes
// the connection
func (b *Bot) Stop(ctx context.Context) error {
	appID, guildID := b.target()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "id", cmdID, "error", err)
		}
	}

	if err := b.members.Close(ctx); err != nil {
		b.logger.Warn("failed to end member sessions", "error", err)
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID, guildID := b.target()

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "id", createdCmd.ID, "guild", guildID)

	return nil
}

// target returns the application and guild commands are registered under.
// An empty guild registers globally.
func (b *Bot) target() (appID, guildID string) {
	appID = b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}
	return appID, b.config.GuildID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("failed to handle command", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("failed to handle component interaction", "error", err)
		}
	}
}

// handleComponentInteraction routes a button click to the command that
// rendered it
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	name, _, _ := strings.Cut(customID, ":")

	h, ok := b.commands[name].(ComponentHandler)
	if !ok {
		return fmt.Errorf("no handler for component %q", customID)
	}

	return h.HandleComponent(s, i)
}
