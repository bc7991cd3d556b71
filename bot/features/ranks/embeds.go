package ranks

import (
	"fmt"
	"strings"

	"novabot/bot/common"
	"novabot/domain/entities"

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
		log.Errorf("Error responding to ranks command: %v", err)
	}
}

func respondContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
	if err != nil {
		log.Errorf("Error responding to ranks command: %v", err)
	}
}

func buildRankListEmbed(displayName string, level int, owned []*entities.RankOwnership) *discordgo.MessageEmbed {
	current := entities.CurrentLevelRank(level)

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s's Ranks", displayName),
		Color: 0xC0C0C0,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Current Level Rank",
				Value: fmt.Sprintf("🌱 %s (Level %d)", current.Name, level),
			},
		},
	}

	var levelLines, purchasedLines []string
	for _, rank := range owned {
		switch rank.RankType {
		case entities.RankTypeLevel:
			if rank.RankName != current.Name {
				levelLines = append(levelLines, "• "+rank.RankName)
			}
		case entities.RankTypePurchased:
			line := common.FormatRankName(rank.RankName)
			if rank.IsEquipped {
				line = "⭐ " + line
			}
			purchasedLines = append(purchasedLines, line)
		}
	}

	if len(levelLines) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Other Level Ranks",
			Value: strings.Join(levelLines, "\n"),
		})
	}

	if len(purchasedLines) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Purchased Ranks",
			Value: strings.Join(purchasedLines, "\n"),
		})
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "⭐ = Currently equipped"}
	} else {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Purchased Ranks",
			Value: "You haven't bought any ranks yet! Use /ranks shop",
		})
	}

	return embed
}

func buildShopEmbed(coins int64, owned []*entities.RankOwnership) *discordgo.MessageEmbed {
	ownedNames := make(map[string]bool, len(owned))
	for _, rank := range owned {
		ownedNames[rank.RankName] = true
	}

	var lines []string
	for _, item := range entities.ShopCatalog() {
		line := fmt.Sprintf("**%s**: %s coins", common.FormatRankName(item.Name), common.FormatCount(item.Price))
		if ownedNames[item.Name] {
			line += " (owned)"
		}
		lines = append(lines, line)
	}

	return &discordgo.MessageEmbed{
		Title:       "Rank Shop",
		Description: strings.Join(lines, "\n"),
		Color:       0xFFB6C1,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Your balance: %s coins | Buy with /ranks buy", common.FormatCount(coins)),
		},
	}
}
