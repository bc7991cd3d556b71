package entities

import "time"

// RankType distinguishes the two rank universes a user can hold.
type RankType string

const (
	// RankTypeLevel ranks are granted automatically at level thresholds and
	// accumulate as history; they are never equipped individually.
	RankTypeLevel RankType = "level"
	// RankTypePurchased ranks come from the coin shop; at most one may be
	// equipped at a time.
	RankTypePurchased RankType = "purchased"
)

// RankOwnership is one rank held by one user.
type RankOwnership struct {
	UserID     int64     `db:"user_id"`
	RankName   string    `db:"rank_name"`
	RankType   RankType  `db:"rank_type"`
	IsEquipped bool      `db:"is_equipped"`
	CreatedAt  time.Time `db:"created_at"`
}

// IsPurchased reports whether this rank came from the shop.
func (r *RankOwnership) IsPurchased() bool {
	return r.RankType == RankTypePurchased
}
