package interfaces

import (
	"context"
	"time"

	"novabot/domain/entities"
)

// ProgressionRepository defines data access for server-scoped XP
type ProgressionRepository interface {
	// GetXP returns a user's XP in a server; users without a row read as 0
	GetXP(ctx context.Context, serverID, userID int64) (int64, error)

	// AddXP adds amount to a user's XP, creating the row if absent, and
	// returns the new total
	AddXP(ctx context.Context, serverID, userID, amount int64) (int64, error)

	// TopByXP returns the server's XP leaderboard, highest first
	TopByXP(ctx context.Context, serverID int64, limit int) ([]*entities.UserProgression, error)
}

// WalletRepository defines data access for the global coin balances
type WalletRepository interface {
	// GetCoins returns a user's coin balance; users without a row read as 0
	GetCoins(ctx context.Context, userID int64) (int64, error)

	// AddCoins credits amount to a user's wallet, creating the row if
	// absent, and returns the new balance
	AddCoins(ctx context.Context, userID, amount int64) (int64, error)

	// Debit removes amount from a user's wallet. Returns
	// entities.ErrInsufficientFunds when the balance does not cover it;
	// the balance is left untouched in that case.
	Debit(ctx context.Context, userID, amount int64) error

	// TopByCoins returns the global coin leaderboard, highest first
	TopByCoins(ctx context.Context, limit int) ([]*entities.UserWallet, error)

	// TopByNetWorth returns the richest users by coins plus the catalog
	// value of their purchased ranks, highest first
	TopByNetWorth(ctx context.Context, limit int) ([]*entities.NetWorth, error)
}

// RankRepository defines data access for rank ownership rows
type RankRepository interface {
	// Get returns the ownership row for (userID, rankName), or nil when the
	// user does not own the rank
	Get(ctx context.Context, userID int64, rankName string) (*entities.RankOwnership, error)

	// ListByUser returns all of a user's ranks, level ranks first
	ListByUser(ctx context.Context, userID int64) ([]*entities.RankOwnership, error)

	// InsertIfAbsent creates an unequipped ownership row unless one already
	// exists. Returns true when a row was inserted.
	InsertIfAbsent(ctx context.Context, userID int64, rankName string, rankType entities.RankType) (bool, error)

	// GetEquipped returns the user's equipped rank, or nil when none is
	GetEquipped(ctx context.Context, userID int64) (*entities.RankOwnership, error)

	// ClearEquipped unequips all of the user's ranks
	ClearEquipped(ctx context.Context, userID int64) error

	// SetEquipped marks the given rank as equipped. Returns false when the
	// user does not own the rank.
	SetEquipped(ctx context.Context, userID int64, rankName string) (bool, error)
}

// CooldownRepository defines data access for XP award cooldown stamps
type CooldownRepository interface {
	// TryStamp atomically claims an award slot for the user at `now`: it
	// writes the stamp and returns true only when no stamp newer than
	// now - window exists. Check and write are one statement, so two
	// concurrent awards for the same user, including two first-ever
	// awards, cannot both claim the slot.
	TryStamp(ctx context.Context, userID int64, now time.Time, window time.Duration) (bool, error)
}

// SparkleRepository defines data access for sparkle tallies
type SparkleRepository interface {
	// Get returns a user's tally in a server; users without a row read as
	// all zeroes
	Get(ctx context.Context, serverID, userID int64) (*entities.SparkleTally, error)

	// Increment adds one to the tier's counter, creating the row if absent
	Increment(ctx context.Context, serverID, userID int64, tier entities.SparkleTier) error

	// TopByTotal returns the server's sparkle leaderboard ordered by
	// combined count, highest first
	TopByTotal(ctx context.Context, serverID int64, limit int) ([]*entities.SparkleTally, error)
}
