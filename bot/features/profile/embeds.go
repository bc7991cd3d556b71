package profile

import (
	"fmt"

	"novabot/bot/common"

	"github.com/bwmarrin/discordgo"
)

func buildProfileEmbed(data *ProfileData) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Level",
			Value:  fmt.Sprintf("%d (%s)", data.Level, data.LevelRank),
			Inline: true,
		},
		{
			Name:   "XP",
			Value:  fmt.Sprintf("%s (%s / %s into level)", common.FormatCount(data.XP), common.FormatCount(data.XPIntoLevel), common.FormatCount(data.XPForNext)),
			Inline: true,
		},
		{
			Name:   "Coins",
			Value:  common.FormatCount(data.Coins),
			Inline: true,
		},
	}

	if data.EquippedRank != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Equipped Rank",
			Value:  common.FormatRankName(data.EquippedRank),
			Inline: true,
		})
	}

	if data.Sparkles != nil && data.Sparkles.Total() > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Sparkles",
			Value: fmt.Sprintf("✨ %d  🌟 %d  ⭐ %d",
				data.Sparkles.Epic, data.Sparkles.Rare, data.Sparkles.Regular),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("%s's Profile", data.DisplayName),
		Color:  0x9B59B6,
		Fields: fields,
		Image: &discordgo.MessageEmbedImage{
			URL: "attachment://profile.png",
		},
	}
}
