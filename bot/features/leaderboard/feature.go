package leaderboard

import (
	"novabot/application"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const (
	defaultLimit = 10
	maxLimit     = 20
)

// Feature serves the leaderboard command group.
type Feature struct {
	uowFactory application.UnitOfWorkFactory
}

// NewFeature creates a new leaderboard feature instance
func NewFeature(uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{uowFactory: uowFactory}
}

// HandleCommand routes leaderboard subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "xp":
		f.handleXP(s, i, options[0])
	case "coins":
		f.handleCoins(s, i, options[0])
	case "sparkles":
		f.handleSparkles(s, i, options[0])
	case "networth":
		f.handleNetWorth(s, i, options[0])
	default:
		log.Warnf("Unknown leaderboard subcommand: %s", options[0].Name)
	}
}

// limitOption extracts the optional limit argument, clamped to [1, maxLimit].
func limitOption(opt *discordgo.ApplicationCommandInteractionDataOption) int {
	limit := defaultLimit
	for _, o := range opt.Options {
		if o.Name == "limit" {
			limit = int(o.IntValue())
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit
}
