package repository

import (
	"context"
	"fmt"
	"time"

	"novabot/database"
	"novabot/domain/interfaces"
)

// CooldownRepository implements interfaces.CooldownRepository over the
// cooldowns table.
type CooldownRepository struct {
	q Queryable
}

// NewCooldownRepository creates a repository running on the pool.
func NewCooldownRepository(db *database.DB) *CooldownRepository {
	return &CooldownRepository{q: db.Pool}
}

func newCooldownRepository(tx Queryable) interfaces.CooldownRepository {
	return &CooldownRepository{q: tx}
}

// TryStamp claims an award slot with a single guarded upsert. The insert path
// covers users with no stamp yet; the update path only fires when the stored
// stamp is at least one full window old, so a message arriving exactly
// `window` after the stamp is eligible. Two concurrent awards for the same
// user serialize on the row: the loser re-checks the guard against the
// winner's committed stamp and matches zero rows.
func (r *CooldownRepository) TryStamp(ctx context.Context, userID int64, now time.Time, window time.Duration) (bool, error) {
	query := `
		INSERT INTO cooldowns (user_id, last_message_time)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET last_message_time = EXCLUDED.last_message_time
		WHERE cooldowns.last_message_time <= $3
	`
	tag, err := r.q.Exec(ctx, query, userID, now, now.Add(-window))
	if err != nil {
		return false, fmt.Errorf("failed to stamp cooldown for user %d: %w", userID, err)
	}
	return tag.RowsAffected() > 0, nil
}
