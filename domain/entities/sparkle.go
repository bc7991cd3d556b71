package entities

// SparkleTier is the rarity of a sparkle hit.
type SparkleTier string

const (
	SparkleTierEpic    SparkleTier = "epic"
	SparkleTierRare    SparkleTier = "rare"
	SparkleTierRegular SparkleTier = "regular"
)

// Emoji returns the reaction emoji used for this tier.
func (t SparkleTier) Emoji() string {
	switch t {
	case SparkleTierEpic:
		return "✨"
	case SparkleTierRare:
		return "🌟"
	default:
		return "⭐"
	}
}

// SparkleTally is a user's accumulated sparkle counts in one server. The
// counters are independent of XP and coins.
type SparkleTally struct {
	ServerID int64 `db:"server_id"`
	UserID   int64 `db:"user_id"`
	Epic     int64 `db:"epic"`
	Rare     int64 `db:"rare"`
	Regular  int64 `db:"regular"`
}

// Total returns the combined sparkle count across tiers.
func (s *SparkleTally) Total() int64 {
	return s.Epic + s.Rare + s.Regular
}
