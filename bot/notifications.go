package bot

import (
	"fmt"

	"novabot/bot/common"
	"novabot/domain/events"

	log "github.com/sirupsen/logrus"
)

// registerNotifications subscribes the Discord announcements to committed
// domain events. Handlers run after the producing transaction has committed;
// a failed announcement is logged and never unwinds the bookkeeping.
func (b *Bot) registerNotifications() {
	b.dispatcher.Subscribe(events.EventTypeLevelUp, b.announceLevelUp)
	b.dispatcher.Subscribe(events.EventTypeSparkleHit, b.announceSparkleHit)
	b.dispatcher.Subscribe(events.EventTypeRankPurchased, b.logRankPurchase)
}

func (b *Bot) announceLevelUp(event events.Event) {
	levelUp, ok := event.(events.LevelUpEvent)
	if !ok {
		log.Errorf("Received non-LevelUpEvent in level up handler: %T", event)
		return
	}

	content := fmt.Sprintf("🎉 %s reached level %d! (+%s coins)",
		common.GetUserMention(levelUp.UserID),
		levelUp.NewLevel,
		common.FormatCount(levelUp.BonusCoins))

	if _, err := b.session.ChannelMessageSend(levelUp.ChannelID, content); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"user_id":    levelUp.UserID,
			"channel_id": levelUp.ChannelID,
			"new_level":  levelUp.NewLevel,
		}).Error("Failed to announce level up")
	}
}

func (b *Bot) announceSparkleHit(event events.Event) {
	sparkle, ok := event.(events.SparkleHitEvent)
	if !ok {
		log.Errorf("Received non-SparkleHitEvent in sparkle handler: %T", event)
		return
	}

	// React on the triggering message first, then announce.
	if err := b.session.MessageReactionAdd(sparkle.ChannelID, sparkle.MessageID, sparkle.Tier.Emoji()); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"channel_id": sparkle.ChannelID,
			"message_id": sparkle.MessageID,
			"tier":       sparkle.Tier,
		}).Warn("Failed to add sparkle reaction")
	}

	content := fmt.Sprintf("%s %s found a %s sparkle!",
		sparkle.Tier.Emoji(),
		common.GetUserMention(sparkle.UserID),
		sparkle.Tier)

	if _, err := b.session.ChannelMessageSend(sparkle.ChannelID, content); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"user_id":    sparkle.UserID,
			"channel_id": sparkle.ChannelID,
			"tier":       sparkle.Tier,
		}).Error("Failed to announce sparkle")
	}
}

func (b *Bot) logRankPurchase(event events.Event) {
	purchase, ok := event.(events.RankPurchasedEvent)
	if !ok {
		log.Errorf("Received non-RankPurchasedEvent in purchase handler: %T", event)
		return
	}

	log.WithFields(log.Fields{
		"user_id": purchase.UserID,
		"rank":    purchase.RankName,
		"price":   purchase.Price,
	}).Info("Rank purchased")
}
