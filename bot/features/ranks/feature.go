package ranks

import (
	"novabot/application"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature serves the ranks command group: owned-rank listing, the shop
// catalog, purchases and equipping.
type Feature struct {
	uowFactory application.UnitOfWorkFactory
}

// NewFeature creates a new ranks feature instance
func NewFeature(uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{uowFactory: uowFactory}
}

// HandleCommand routes ranks subcommands
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return
	}

	switch options[0].Name {
	case "list":
		f.handleList(s, i)
	case "shop":
		f.handleShop(s, i)
	case "buy":
		f.handleBuy(s, i, options[0])
	case "equip":
		f.handleEquip(s, i, options[0])
	case "unequip":
		f.handleUnequip(s, i)
	default:
		log.Warnf("Unknown ranks subcommand: %s", options[0].Name)
	}
}
