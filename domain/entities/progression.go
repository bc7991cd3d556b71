package entities

import "time"

// UserProgression is a user's server-scoped XP row. XP only ever grows, and
// only through the award engine; levels are always derived from it, never
// stored.
type UserProgression struct {
	ServerID  int64     `db:"server_id"`
	UserID    int64     `db:"user_id"`
	XP        int64     `db:"xp"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
