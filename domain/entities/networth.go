package entities

// NetWorth is a leaderboard row combining liquid coins with the catalog
// value of a user's purchased ranks.
type NetWorth struct {
	UserID    int64 `db:"user_id"`
	Coins     int64 `db:"coins"`
	RankValue int64 `db:"rank_value"`
	Total     int64 `db:"total"`
}
