package events

import (
	"novabot/domain/entities"

	"github.com/google/uuid"
)

// EventType identifies the kind of a domain event.
type EventType string

const (
	EventTypeLevelUp       EventType = "level_up"
	EventTypeSparkleHit    EventType = "sparkle_hit"
	EventTypeRankPurchased EventType = "rank_purchased"
)

// Event is the base interface for all domain events. Events are buffered
// inside the unit of work and only delivered after the transaction commits.
type Event interface {
	ID() string
	Type() EventType
}

type base struct {
	id string
}

func newBase() base {
	return base{id: uuid.NewString()}
}

func (b base) ID() string { return b.id }

// LevelUpEvent is emitted when an award pushes a user across one or more
// level thresholds.
type LevelUpEvent struct {
	base
	ServerID   int64
	UserID     int64
	ChannelID  string
	NewLevel   int
	BonusCoins int64
}

// NewLevelUpEvent creates a LevelUpEvent with a fresh event ID.
func NewLevelUpEvent(serverID, userID int64, channelID string, newLevel int, bonusCoins int64) LevelUpEvent {
	return LevelUpEvent{
		base:       newBase(),
		ServerID:   serverID,
		UserID:     userID,
		ChannelID:  channelID,
		NewLevel:   newLevel,
		BonusCoins: bonusCoins,
	}
}

func (e LevelUpEvent) Type() EventType { return EventTypeLevelUp }

// SparkleHitEvent is emitted when the per-message sparkle roll lands.
type SparkleHitEvent struct {
	base
	ServerID  int64
	UserID    int64
	ChannelID string
	MessageID string
	Tier      entities.SparkleTier
}

// NewSparkleHitEvent creates a SparkleHitEvent with a fresh event ID.
func NewSparkleHitEvent(serverID, userID int64, channelID, messageID string, tier entities.SparkleTier) SparkleHitEvent {
	return SparkleHitEvent{
		base:      newBase(),
		ServerID:  serverID,
		UserID:    userID,
		ChannelID: channelID,
		MessageID: messageID,
		Tier:      tier,
	}
}

func (e SparkleHitEvent) Type() EventType { return EventTypeSparkleHit }

// RankPurchasedEvent is emitted after a successful shop purchase.
type RankPurchasedEvent struct {
	base
	UserID   int64
	RankName string
	Price    int64
}

// NewRankPurchasedEvent creates a RankPurchasedEvent with a fresh event ID.
func NewRankPurchasedEvent(userID int64, rankName string, price int64) RankPurchasedEvent {
	return RankPurchasedEvent{
		base:     newBase(),
		UserID:   userID,
		RankName: rankName,
		Price:    price,
	}
}

func (e RankPurchasedEvent) Type() EventType { return EventTypeRankPurchased }
