package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"novabot/config"
	"novabot/domain/entities"
	"novabot/domain/events"
	"novabot/domain/interfaces"
)

type awardService struct {
	progressionRepo interfaces.ProgressionRepository
	walletRepo      interfaces.WalletRepository
	cooldownRepo    interfaces.CooldownRepository
	rankService     interfaces.RankService
	eventPublisher  interfaces.EventPublisher
}

// NewAwardService creates a new award service. All repositories must come
// from the same unit of work: the cooldown stamp, XP and coin writes for one
// award commit or roll back together.
func NewAwardService(
	progressionRepo interfaces.ProgressionRepository,
	walletRepo interfaces.WalletRepository,
	cooldownRepo interfaces.CooldownRepository,
	rankService interfaces.RankService,
	eventPublisher interfaces.EventPublisher,
) interfaces.AwardService {
	return &awardService{
		progressionRepo: progressionRepo,
		walletRepo:      walletRepo,
		cooldownRepo:    cooldownRepo,
		rankService:     rankService,
		eventPublisher:  eventPublisher,
	}
}

func (s *awardService) AwardMessageXP(ctx context.Context, serverID, userID int64, channelID string, now time.Time) (*entities.AwardResult, error) {
	cfg := config.Get()

	// The check-and-stamp is one atomic statement: two racing messages from
	// the same user, including two first-ever messages, cannot both claim
	// the slot.
	stamped, err := s.cooldownRepo.TryStamp(ctx, userID, now, cfg.CooldownWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to stamp cooldown for user %d: %w", userID, err)
	}
	if !stamped {
		return &entities.AwardResult{OnCooldown: true}, nil
	}

	xpGain := cfg.XPPerMessageMin + rand.Int63n(cfg.XPPerMessageMax-cfg.XPPerMessageMin+1)

	newXP, err := s.progressionRepo.AddXP(ctx, serverID, userID, xpGain)
	if err != nil {
		return nil, fmt.Errorf("failed to add xp for user %d in server %d: %w", userID, serverID, err)
	}

	if _, err := s.walletRepo.AddCoins(ctx, userID, xpGain); err != nil {
		return nil, fmt.Errorf("failed to credit coins for user %d: %w", userID, err)
	}

	oldLevel, _ := LevelForXP(newXP - xpGain)
	newLevel, _ := LevelForXP(newXP)

	result := &entities.AwardResult{
		XPGained: xpGain,
		NewXP:    newXP,
		OldLevel: oldLevel,
		NewLevel: newLevel,
	}

	if newLevel > oldLevel {
		// A single message can cross several thresholds; the bonus applies
		// once per level crossed, not once per message.
		bonus := cfg.LevelUpBonus * int64(newLevel-oldLevel)
		if _, err := s.walletRepo.AddCoins(ctx, userID, bonus); err != nil {
			return nil, fmt.Errorf("failed to credit level-up bonus for user %d: %w", userID, err)
		}
		result.BonusCoins = bonus

		if err := s.rankService.ReconcileLevelRanks(ctx, userID, newLevel); err != nil {
			return nil, fmt.Errorf("failed to reconcile level ranks for user %d: %w", userID, err)
		}

		s.eventPublisher.Publish(events.NewLevelUpEvent(serverID, userID, channelID, newLevel, bonus))
	}

	return result, nil
}
