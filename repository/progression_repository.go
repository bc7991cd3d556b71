package repository

import (
	"context"
	"fmt"

	"novabot/database"
	"novabot/domain/entities"
	"novabot/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// ProgressionRepository implements interfaces.ProgressionRepository over the
// user_xp table.
type ProgressionRepository struct {
	q Queryable
}

// NewProgressionRepository creates a repository running on the pool.
func NewProgressionRepository(db *database.DB) *ProgressionRepository {
	return &ProgressionRepository{q: db.Pool}
}

func newProgressionRepository(tx Queryable) interfaces.ProgressionRepository {
	return &ProgressionRepository{q: tx}
}

// GetXP returns a user's XP in a server. Users without a row read as 0.
func (r *ProgressionRepository) GetXP(ctx context.Context, serverID, userID int64) (int64, error) {
	query := `
		SELECT xp FROM user_xp
		WHERE server_id = $1 AND user_id = $2
	`
	var xp int64
	err := r.q.QueryRow(ctx, query, serverID, userID).Scan(&xp)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get xp for user %d in server %d: %w", userID, serverID, err)
	}
	return xp, nil
}

// AddXP adds amount to a user's XP with upsert semantics and returns the new
// total. The row is created on first award.
func (r *ProgressionRepository) AddXP(ctx context.Context, serverID, userID, amount int64) (int64, error) {
	query := `
		INSERT INTO user_xp (server_id, user_id, xp)
		VALUES ($1, $2, $3)
		ON CONFLICT (server_id, user_id) DO UPDATE
		SET xp = user_xp.xp + EXCLUDED.xp, updated_at = NOW()
		RETURNING xp
	`
	var newXP int64
	if err := r.q.QueryRow(ctx, query, serverID, userID, amount).Scan(&newXP); err != nil {
		return 0, fmt.Errorf("failed to add xp for user %d in server %d: %w", userID, serverID, err)
	}
	return newXP, nil
}

// TopByXP returns the server's XP leaderboard, highest first.
func (r *ProgressionRepository) TopByXP(ctx context.Context, serverID int64, limit int) ([]*entities.UserProgression, error) {
	query := `
		SELECT server_id, user_id, xp, created_at, updated_at
		FROM user_xp
		WHERE server_id = $1
		ORDER BY xp DESC, user_id
		LIMIT $2
	`
	rows, err := r.q.Query(ctx, query, serverID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query xp leaderboard for server %d: %w", serverID, err)
	}
	defer rows.Close()

	var top []*entities.UserProgression
	for rows.Next() {
		var p entities.UserProgression
		if err := rows.Scan(&p.ServerID, &p.UserID, &p.XP, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan xp leaderboard row: %w", err)
		}
		top = append(top, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read xp leaderboard for server %d: %w", serverID, err)
	}
	return top, nil
}
