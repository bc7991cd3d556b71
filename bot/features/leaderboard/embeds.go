package leaderboard

import (
	"fmt"

	"novabot/bot/common"
	"novabot/domain/entities"
	"novabot/domain/services"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to leaderboard command: %v", err)
	}
}

func buildXPEmbed(s *discordgo.Session, guildID string, top []*entities.UserProgression) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "XP Leaderboard",
		Description: "Top members by XP",
		Color:       0xFFD700,
	}
	for rank, row := range top {
		level, _ := services.LevelForXP(row.XP)
		name := common.GetDisplayNameInt64(s, guildID, row.UserID)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d. %s", rank+1, name),
			Value: fmt.Sprintf("Level %d | %s XP", level, common.FormatCount(row.XP)),
		})
	}
	return embed
}

func buildCoinsEmbed(s *discordgo.Session, guildID string, top []*entities.UserWallet) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Coins Leaderboard",
		Description: "Top members by coins (global)",
		Color:       0xFFD700,
	}
	for rank, row := range top {
		name := common.GetDisplayNameInt64(s, guildID, row.UserID)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d. %s", rank+1, name),
			Value: fmt.Sprintf("%s coins", common.FormatCount(row.Coins)),
		})
	}
	return embed
}

func buildSparklesEmbed(s *discordgo.Session, guildID string, top []*entities.SparkleTally) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Sparkle Leaderboard",
		Color: 0xFFD700,
	}
	for rank, row := range top {
		name := common.GetDisplayNameInt64(s, guildID, row.UserID)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%d. %s (%s total)", rank+1, name, common.FormatCount(row.Total())),
			Value: fmt.Sprintf("✨ %d epic | 🌟 %d rare | ⭐ %d regular",
				row.Epic, row.Rare, row.Regular),
		})
	}
	return embed
}

func buildNetWorthEmbed(s *discordgo.Session, guildID string, top []*entities.NetWorth) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Net Worth Leaderboard",
		Color: 0xFFD700,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Net worth = coins + value of purchased ranks",
		},
	}
	for rank, row := range top {
		name := common.GetDisplayNameInt64(s, guildID, row.UserID)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%d. %s", rank+1, name),
			Value: fmt.Sprintf("**%s** total (%s coins + %s in ranks)",
				common.FormatCount(row.Total), common.FormatCount(row.Coins), common.FormatCount(row.RankValue)),
		})
	}
	return embed
}
