package interfaces

import (
	"context"
	"time"

	"novabot/domain/entities"
	"novabot/domain/events"
)

// EventPublisher publishes domain events. Inside a unit of work the
// publisher buffers events and delivers them only after the transaction
// commits; a rollback discards them.
type EventPublisher interface {
	Publish(event events.Event)
}

// AwardService is the XP award engine: cooldown gating, randomized XP,
// 1:1 coin credit, level-up bonuses and rank reconciliation, all applied
// within the caller's unit of work.
type AwardService interface {
	// AwardMessageXP processes one message event for a user. The channelID
	// is carried into the level-up event so the presentation layer knows
	// where to announce; the service itself performs no user-facing I/O.
	AwardMessageXP(ctx context.Context, serverID, userID int64, channelID string, now time.Time) (*entities.AwardResult, error)
}

// RankService maintains both rank universes: automatic level ranks and
// shop purchases.
type RankService interface {
	// ReconcileLevelRanks grants every level rank with a threshold at or
	// below the given level. Idempotent; never removes ranks.
	ReconcileLevelRanks(ctx context.Context, userID int64, level int) error

	// PurchaseRank buys a shop rank. Fails with entities.ErrUnknownRank,
	// ErrAlreadyOwned or ErrInsufficientFunds; on success the debit and the
	// ownership row are written as one atomic unit.
	PurchaseRank(ctx context.Context, userID int64, rankName string) (*entities.RankOwnership, error)

	// EquipRank equips an owned purchased rank, unequipping everything
	// else. Fails with entities.ErrNotOwned when the user has no
	// purchased rank by that name.
	EquipRank(ctx context.Context, userID int64, rankName string) error

	// UnequipRank clears the user's equipped rank, if any
	UnequipRank(ctx context.Context, userID int64) error
}

// SparkleService is the independent low-probability per-message reward roll.
type SparkleService interface {
	// RollMessage rolls once for a message and, on a hit, increments the
	// matching tier counter and publishes a sparkle event. The returned
	// tier is only meaningful when hit is true.
	RollMessage(ctx context.Context, serverID, userID int64, channelID, messageID string) (tier entities.SparkleTier, hit bool, err error)
}
