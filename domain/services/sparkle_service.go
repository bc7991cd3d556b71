package services

import (
	"context"
	"fmt"
	"math/rand"

	"novabot/domain/entities"
	"novabot/domain/events"
	"novabot/domain/interfaces"
)

// sparkleRollMax is the size of the per-message roll. With the thresholds
// below a message has a 1/100000 chance of an epic sparkle, 9/100000 of a
// rare one and 90/100000 of a regular one.
const sparkleRollMax = 100000

// TierForRoll maps a roll in [1, sparkleRollMax] to a sparkle tier. The
// second return is false when the roll is a miss.
func TierForRoll(roll int64) (entities.SparkleTier, bool) {
	switch {
	case roll == 1:
		return entities.SparkleTierEpic, true
	case roll <= 10:
		return entities.SparkleTierRare, true
	case roll <= 100:
		return entities.SparkleTierRegular, true
	default:
		return "", false
	}
}

type sparkleService struct {
	sparkleRepo    interfaces.SparkleRepository
	eventPublisher interfaces.EventPublisher
}

// NewSparkleService creates a new sparkle service
func NewSparkleService(sparkleRepo interfaces.SparkleRepository, eventPublisher interfaces.EventPublisher) interfaces.SparkleService {
	return &sparkleService{
		sparkleRepo:    sparkleRepo,
		eventPublisher: eventPublisher,
	}
}

// RollMessage runs the sparkle roll for one message. The roll is independent
// of the XP cooldown and happens on every qualifying message.
func (s *sparkleService) RollMessage(ctx context.Context, serverID, userID int64, channelID, messageID string) (entities.SparkleTier, bool, error) {
	roll := 1 + rand.Int63n(sparkleRollMax)
	tier, hit := TierForRoll(roll)
	if !hit {
		return "", false, nil
	}

	if err := s.sparkleRepo.Increment(ctx, serverID, userID, tier); err != nil {
		return "", false, fmt.Errorf("failed to increment %s sparkle for user %d in server %d: %w", tier, userID, serverID, err)
	}

	s.eventPublisher.Publish(events.NewSparkleHitEvent(serverID, userID, channelID, messageID, tier))

	return tier, true, nil
}
