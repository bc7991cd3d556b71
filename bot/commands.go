package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	limitOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "limit",
		Description: "Number of entries to show (1-20, default 10)",
		Required:    false,
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "profile",
			Description: "View a progression profile",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to view (defaults to you)",
					Required:    false,
				},
			},
		},
		{
			Name:        "leaderboard",
			Description: "Server leaderboards",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "xp",
					Description: "Top users by experience",
					Options:     []*discordgo.ApplicationCommandOption{limitOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "coins",
					Description: "Top users by coin balance",
					Options:     []*discordgo.ApplicationCommandOption{limitOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "sparkles",
					Description: "Top users by sparkles collected",
					Options:     []*discordgo.ApplicationCommandOption{limitOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "networth",
					Description: "Top users by coins plus rank value",
					Options:     []*discordgo.ApplicationCommandOption{limitOption},
				},
			},
		},
		{
			Name:        "ranks",
			Description: "View, buy and equip ranks",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List the ranks you own",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "shop",
					Description: "Browse the rank shop",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "buy",
					Description: "Buy a rank from the shop",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "rank",
							Description: "Name of the rank to buy",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "equip",
					Description: "Equip a purchased rank",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "rank",
							Description: "Name of the rank to equip",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unequip",
					Description: "Unequip your equipped rank",
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
