package ranks

import (
	"context"
	"errors"
	"fmt"

	"novabot/bot/common"
	"novabot/domain/entities"
	"novabot/domain/services"

	"github.com/bwmarrin/discordgo"
)

func (f *Feature) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, serverID, err := interactionIDs(i)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Error parsing interaction IDs"))
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Error beginning transaction"))
		return
	}
	defer uow.Rollback()

	xp, err := uow.ProgressionRepository().GetXP(ctx, serverID, userID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, fmt.Sprintf("Error getting xp for user %d", userID)))
		return
	}

	owned, err := uow.RankRepository().ListByUser(ctx, userID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, fmt.Sprintf("Error listing ranks for user %d", userID)))
		return
	}

	if err := uow.Commit(); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Error committing transaction"))
		return
	}

	level, _ := services.LevelForXP(xp)
	displayName := common.GetDisplayName(s, i.GuildID, i.Member.User.ID)
	respondEmbed(s, i, buildRankListEmbed(displayName, level, owned))
}

func (f *Feature) handleShop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := common.ParseSnowflake(i.Member.User.ID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, fmt.Sprintf("Error parsing Discord ID %s", i.Member.User.ID)))
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Error beginning transaction"))
		return
	}
	defer uow.Rollback()

	coins, err := uow.WalletRepository().GetCoins(ctx, userID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, fmt.Sprintf("Error getting coins for user %d", userID)))
		return
	}

	owned, err := uow.RankRepository().ListByUser(ctx, userID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, fmt.Sprintf("Error listing ranks for user %d", userID)))
		return
	}

	if err := uow.Commit(); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Error committing transaction"))
		return
	}

	respondEmbed(s, i, buildShopEmbed(coins, owned))
}

func (f *Feature) handleBuy(s *discordgo.Session, i *discordgo.InteractionCreate, opt *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	userID, err := common.ParseSnowflake(i.Member.User.ID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, fmt.Sprintf("Error parsing Discord ID %s", i.Member.User.ID)))
		return
	}
	rankName := stringOption(opt, "rank")

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Error beginning transaction"))
		return
	}
	defer uow.Rollback()

	rankService := services.NewRankService(uow.RankRepository(), uow.WalletRepository(), uow.EventBus())
	purchased, err := rankService.PurchaseRank(ctx, userID, rankName)
	if err != nil {
		common.HandleError(s, i, purchaseError(rankName, err))
		return
	}

	if err := uow.Commit(); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, fmt.Sprintf("Error committing purchase for user %d", userID)))
		return
	}

	price, _ := entities.ShopPrice(purchased.RankName)
	respondContent(s, i, fmt.Sprintf("🛍️ You bought the **%s** rank for **%s coins**! Equip it with `/ranks equip`.",
		common.FormatRankName(purchased.RankName), common.FormatCount(price)))
}

func (f *Feature) handleEquip(s *discordgo.Session, i *discordgo.InteractionCreate, opt *discordgo.ApplicationCommandInteractionDataOption) {
	ctx := context.Background()

	userID, err := common.ParseSnowflake(i.Member.User.ID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, fmt.Sprintf("Error parsing Discord ID %s", i.Member.User.ID)))
		return
	}
	rankName := stringOption(opt, "rank")

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Error beginning transaction"))
		return
	}
	defer uow.Rollback()

	rankService := services.NewRankService(uow.RankRepository(), uow.WalletRepository(), uow.EventBus())
	if err := rankService.EquipRank(ctx, userID, rankName); err != nil {
		common.HandleError(s, i, equipError(rankName, err))
		return
	}

	if err := uow.Commit(); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, fmt.Sprintf("Error committing equip for user %d", userID)))
		return
	}

	respondContent(s, i, fmt.Sprintf("⭐ **%s** is now your equipped rank.", common.FormatRankName(rankName)))
}

func (f *Feature) handleUnequip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	userID, err := common.ParseSnowflake(i.Member.User.ID)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, fmt.Sprintf("Error parsing Discord ID %s", i.Member.User.ID)))
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Error beginning transaction"))
		return
	}
	defer uow.Rollback()

	rankService := services.NewRankService(uow.RankRepository(), uow.WalletRepository(), uow.EventBus())
	if err := rankService.UnequipRank(ctx, userID); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, fmt.Sprintf("Error unequipping rank for user %d", userID)))
		return
	}

	if err := uow.Commit(); err != nil {
		common.HandleError(s, i, common.NewSystemError(err, fmt.Sprintf("Error committing unequip for user %d", userID)))
		return
	}

	respondContent(s, i, "Your equipped rank has been removed.")
}

// purchaseError maps purchase failures to the error rendered to the user.
// Business-rule rejections keep the rank name in the message; anything else
// is a storage failure and stays internal.
func purchaseError(rankName string, err error) *common.BotError {
	switch {
	case errors.Is(err, entities.ErrUnknownRank):
		return common.NewUserError(
			fmt.Sprintf("**%s** is not in the shop. Check `/ranks shop`.", common.FormatRankName(rankName)),
			fmt.Sprintf("Rejected purchase of unknown rank %q", rankName))
	case errors.Is(err, entities.ErrAlreadyOwned):
		return common.NewUserError(
			fmt.Sprintf("You already own **%s**.", common.FormatRankName(rankName)),
			fmt.Sprintf("Rejected purchase of already-owned rank %q", rankName))
	case errors.Is(err, entities.ErrInsufficientFunds):
		return common.NewUserError(
			fmt.Sprintf("You don't have enough coins for **%s**.", common.FormatRankName(rankName)),
			fmt.Sprintf("Rejected purchase of rank %q: insufficient funds", rankName))
	default:
		return common.NewSystemError(err, fmt.Sprintf("Error purchasing rank %q", rankName))
	}
}

func equipError(rankName string, err error) *common.BotError {
	if errors.Is(err, entities.ErrNotOwned) {
		return common.NewUserError(
			fmt.Sprintf("You don't own a purchasable rank called **%s**.", common.FormatRankName(rankName)),
			fmt.Sprintf("Rejected equip of unowned rank %q", rankName))
	}
	return common.NewSystemError(err, fmt.Sprintf("Error equipping rank %q", rankName))
}

func interactionIDs(i *discordgo.InteractionCreate) (userID, serverID int64, err error) {
	userID, err = common.ParseSnowflake(i.Member.User.ID)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid user ID %q: %w", i.Member.User.ID, err)
	}
	serverID, err = common.ParseSnowflake(i.GuildID)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid guild ID %q: %w", i.GuildID, err)
	}
	return userID, serverID, nil
}

func stringOption(opt *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, o := range opt.Options {
		if o.Name == name {
			return o.StringValue()
		}
	}
	return ""
}
