package profile

import (
	"context"

	"novabot/application"
	"novabot/bot/common"
	"novabot/domain/entities"
	"novabot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature serves the profile command: XP, level progress, coins, equipped
// rank and sparkle counts for a user.
type Feature struct {
	uowFactory application.UnitOfWorkFactory
	card       *CardRenderer
}

// NewFeature creates a new profile feature instance
func NewFeature(uowFactory application.UnitOfWorkFactory) *Feature {
	return &Feature{
		uowFactory: uowFactory,
		card:       NewCardRenderer(),
	}
}

// HandleCommand handles the profile command
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	// Default to the caller; an optional user argument shows someone else.
	targetID := i.Member.User.ID
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "user" {
			targetID = opt.UserValue(nil).ID
		}
	}

	userID, err := common.ParseSnowflake(targetID)
	if err != nil {
		log.Errorf("Error parsing Discord ID %s: %v", targetID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	serverID, err := common.ParseSnowflake(i.GuildID)
	if err != nil {
		log.Errorf("Error parsing guild ID %s: %v", i.GuildID, err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.Errorf("Error beginning transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}
	defer uow.Rollback()

	xp, err := uow.ProgressionRepository().GetXP(ctx, serverID, userID)
	if err != nil {
		log.Errorf("Error getting xp for user %d: %v", userID, err)
		common.RespondWithError(s, i, "Unable to load the profile. Please try again.")
		return
	}

	coins, err := uow.WalletRepository().GetCoins(ctx, userID)
	if err != nil {
		log.Errorf("Error getting coins for user %d: %v", userID, err)
		common.RespondWithError(s, i, "Unable to load the profile. Please try again.")
		return
	}

	equipped, err := uow.RankRepository().GetEquipped(ctx, userID)
	if err != nil {
		log.Errorf("Error getting equipped rank for user %d: %v", userID, err)
		common.RespondWithError(s, i, "Unable to load the profile. Please try again.")
		return
	}

	sparkles, err := uow.SparkleRepository().Get(ctx, serverID, userID)
	if err != nil {
		log.Errorf("Error getting sparkles for user %d: %v", userID, err)
		common.RespondWithError(s, i, "Unable to load the profile. Please try again.")
		return
	}

	if err := uow.Commit(); err != nil {
		log.Errorf("Error committing transaction: %v", err)
		common.RespondWithError(s, i, "Unable to process request. Please try again.")
		return
	}

	level, xpIntoLevel := services.LevelForXP(xp)
	displayName := common.GetDisplayName(s, i.GuildID, targetID)

	data := &ProfileData{
		DisplayName: displayName,
		XP:          xp,
		Level:       level,
		XPIntoLevel: xpIntoLevel,
		XPForNext:   services.XPForNextLevel(level),
		Coins:       coins,
		LevelRank:   entities.CurrentLevelRank(level).Name,
		Sparkles:    sparkles,
	}
	if equipped != nil {
		data.EquippedRank = equipped.RankName
	}

	response := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{buildProfileEmbed(data)},
	}

	// The card is decoration; if rendering fails the embed still answers.
	if png, err := f.card.Render(data); err == nil {
		response.Files = []*discordgo.File{{
			Name:        "profile.png",
			ContentType: "image/png",
			Reader:      png,
		}}
	} else {
		log.Warnf("Error rendering profile card for user %d: %v", userID, err)
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: response,
	})
	if err != nil {
		log.Errorf("Error responding to profile command: %v", err)
	}
}

// ProfileData is everything the profile embed and card need.
type ProfileData struct {
	DisplayName  string
	XP           int64
	Level        int
	XPIntoLevel  int64
	XPForNext    int64
	Coins        int64
	LevelRank    string
	EquippedRank string
	Sparkles     *entities.SparkleTally
}
