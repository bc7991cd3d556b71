package bot

import (
	"context"
	"time"

	"novabot/bot/common"
	"novabot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleMessageCreate runs the progression pipeline for one guild message:
// the XP award and the sparkle roll share a single transaction, so a user
// either gets the full outcome of a message or none of it.
func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Skip messages from our own bot to avoid loops
	if m.Author.ID == s.State.User.ID {
		return
	}
	if m.Author.Bot {
		return
	}

	// Skip if message is not from a guild
	if m.GuildID == "" {
		log.Debugf("Skipping message %s - not from a guild (possibly a DM)", m.ID)
		return
	}

	serverID, err := common.ParseSnowflake(m.GuildID)
	if err != nil {
		log.Errorf("Failed to parse guild ID %s: %v", m.GuildID, err)
		return
	}
	userID, err := common.ParseSnowflake(m.Author.ID)
	if err != nil {
		log.Errorf("Failed to parse user ID %s: %v", m.Author.ID, err)
		return
	}

	ctx := context.Background()

	uow := b.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Failed to begin transaction: %v", err)
		return
	}
	defer uow.Rollback()

	rankService := services.NewRankService(
		uow.RankRepository(),
		uow.WalletRepository(),
		uow.EventBus(),
	)
	awardService := services.NewAwardService(
		uow.ProgressionRepository(),
		uow.WalletRepository(),
		uow.CooldownRepository(),
		rankService,
		uow.EventBus(),
	)
	sparkleService := services.NewSparkleService(
		uow.SparkleRepository(),
		uow.EventBus(),
	)

	result, err := awardService.AwardMessageXP(ctx, serverID, userID, m.ChannelID, time.Now())
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"guild_id":   m.GuildID,
			"user_id":    m.Author.ID,
			"message_id": m.ID,
		}).Error("Failed to award message XP")
		return
	}

	// The sparkle roll is independent of the cooldown gate.
	if _, _, err := sparkleService.RollMessage(ctx, serverID, userID, m.ChannelID, m.ID); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"guild_id":   m.GuildID,
			"user_id":    m.Author.ID,
			"message_id": m.ID,
		}).Error("Failed to roll sparkle")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Failed to commit progression transaction: %v", err)
		return
	}

	if result.LeveledUp() {
		log.WithFields(log.Fields{
			"user_id":   m.Author.ID,
			"new_level": result.NewLevel,
		}).Info("User leveled up")
	}
}
