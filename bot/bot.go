package bot

import (
	"fmt"

	"novabot/application"
	"novabot/bot/features/leaderboard"
	"novabot/bot/features/profile"
	"novabot/bot/features/ranks"
	"novabot/infrastructure"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

// Bot manages the Discord bot and all feature modules
type Bot struct {
	// Core components
	config     Config
	session    *discordgo.Session
	uowFactory application.UnitOfWorkFactory
	dispatcher *infrastructure.EventDispatcher

	// Feature modules
	profile     *profile.Feature
	leaderboard *leaderboard.Feature
	ranks       *ranks.Feature
}

// New creates a new bot instance with all features
func New(config Config, uowFactory application.UnitOfWorkFactory, dispatcher *infrastructure.EventDispatcher) (*Bot, error) {
	// Create Discord session
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentMessageContent

	bot := &Bot{
		config:     config,
		session:    dg,
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}

	// Create feature modules
	bot.profile = profile.NewFeature(uowFactory)
	bot.leaderboard = leaderboard.NewFeature(uowFactory)
	bot.ranks = ranks.NewFeature(uowFactory)

	// Committed domain events drive the user-facing announcements
	bot.registerNotifications()

	// Register handlers
	dg.AddHandler(bot.handleCommands)
	dg.AddHandler(bot.handleMessageCreate)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	log.Info("Bot connected and commands registered")

	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleCommands routes slash commands to appropriate handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "profile":
		b.profile.HandleCommand(s, i)
	case "leaderboard":
		b.leaderboard.HandleCommand(s, i)
	case "ranks":
		b.ranks.HandleCommand(s, i)
	}
}
