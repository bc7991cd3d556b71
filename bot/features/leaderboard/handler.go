package leaderboard

import (
	"context"
	"fmt"

	"novabot/application"
	"novabot/bot/common"
	"novabot/domain/entities"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// withUow runs a read-only query block in its own unit of work.
func (f *Feature) withUow(ctx context.Context, fn func(uow application.UnitOfWork) error) error {
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := fn(uow); err != nil {
		return err
	}
	return uow.Commit()
}

func (f *Feature) handleXP(s *discordgo.Session, i *discordgo.InteractionCreate, opt *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	serverID, err := common.ParseSnowflake(i.GuildID)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var top []*entities.UserProgression
	err = f.withUow(ctx, func(uow application.UnitOfWork) error {
		var err error
		top, err = uow.ProgressionRepository().TopByXP(ctx, serverID, limitOption(opt))
		return err
	})
	if err != nil {
		log.Errorf("Error querying xp leaderboard for server %d: %v", serverID, err)
		common.RespondWithError(s, i, "Unable to load the leaderboard. Please try again.")
		return
	}

	if len(top) == 0 {
		respondEphemeral(s, i, "No XP data available for this server yet.")
		return
	}

	respondEmbed(s, i, buildXPEmbed(s, i.GuildID, top))
}

func (f *Feature) handleCoins(s *discordgo.Session, i *discordgo.InteractionCreate, opt *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var top []*entities.UserWallet
	err := f.withUow(ctx, func(uow application.UnitOfWork) error {
		var err error
		top, err = uow.WalletRepository().TopByCoins(ctx, limitOption(opt))
		return err
	})
	if err != nil {
		log.Errorf("Error querying coin leaderboard: %v", err)
		common.RespondWithError(s, i, "Unable to load the leaderboard. Please try again.")
		return
	}

	if len(top) == 0 {
		respondEphemeral(s, i, "Nobody has earned coins yet.")
		return
	}

	respondEmbed(s, i, buildCoinsEmbed(s, i.GuildID, top))
}

func (f *Feature) handleSparkles(s *discordgo.Session, i *discordgo.InteractionCreate, opt *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	serverID, err := common.ParseSnowflake(i.GuildID)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	var top []*entities.SparkleTally
	err = f.withUow(ctx, func(uow application.UnitOfWork) error {
		var err error
		top, err = uow.SparkleRepository().TopByTotal(ctx, serverID, limitOption(opt))
		return err
	})
	if err != nil {
		log.Errorf("Error querying sparkle leaderboard for server %d: %v", serverID, err)
		common.RespondWithError(s, i, "Unable to load the leaderboard. Please try again.")
		return
	}

	if len(top) == 0 {
		respondEphemeral(s, i, "No sparkle data available for this server yet.")
		return
	}

	respondEmbed(s, i, buildSparklesEmbed(s, i.GuildID, top))
}

func (f *Feature) handleNetWorth(s *discordgo.Session, i *discordgo.InteractionCreate, opt *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	var top []*entities.NetWorth
	err := f.withUow(ctx, func(uow application.UnitOfWork) error {
		var err error
		top, err = uow.WalletRepository().TopByNetWorth(ctx, limitOption(opt))
		return err
	})
	if err != nil {
		log.Errorf("Error querying net worth leaderboard: %v", err)
		common.RespondWithError(s, i, "Unable to load the leaderboard. Please try again.")
		return
	}

	if len(top) == 0 {
		respondEphemeral(s, i, "Nobody has any net worth yet.")
		return
	}

	respondEmbed(s, i, buildNetWorthEmbed(s, i.GuildID, top))
}
