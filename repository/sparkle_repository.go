package repository

import (
	"context"
	"fmt"

	"novabot/database"
	"novabot/domain/entities"
	"novabot/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// SparkleRepository implements interfaces.SparkleRepository over the
// sparkles table.
type SparkleRepository struct {
	q Queryable
}

// NewSparkleRepository creates a repository running on the pool.
func NewSparkleRepository(db *database.DB) *SparkleRepository {
	return &SparkleRepository{q: db.Pool}
}

func newSparkleRepository(tx Queryable) interfaces.SparkleRepository {
	return &SparkleRepository{q: tx}
}

// Get returns a user's tally in a server. Users without a row read as all
// zeroes.
func (r *SparkleRepository) Get(ctx context.Context, serverID, userID int64) (*entities.SparkleTally, error) {
	query := `
		SELECT server_id, user_id, epic, rare, regular
		FROM sparkles
		WHERE server_id = $1 AND user_id = $2
	`
	var tally entities.SparkleTally
	err := r.q.QueryRow(ctx, query, serverID, userID).Scan(
		&tally.ServerID, &tally.UserID, &tally.Epic, &tally.Rare, &tally.Regular,
	)
	if err == pgx.ErrNoRows {
		return &entities.SparkleTally{ServerID: serverID, UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sparkles for user %d in server %d: %w", userID, serverID, err)
	}
	return &tally, nil
}

// Increment adds one to the tier's counter with upsert semantics. The tier
// selects a fixed column; values never reach the SQL text.
func (r *SparkleRepository) Increment(ctx context.Context, serverID, userID int64, tier entities.SparkleTier) error {
	var query string
	switch tier {
	case entities.SparkleTierEpic:
		query = `
			INSERT INTO sparkles (server_id, user_id, epic) VALUES ($1, $2, 1)
			ON CONFLICT (server_id, user_id) DO UPDATE SET epic = sparkles.epic + 1
		`
	case entities.SparkleTierRare:
		query = `
			INSERT INTO sparkles (server_id, user_id, rare) VALUES ($1, $2, 1)
			ON CONFLICT (server_id, user_id) DO UPDATE SET rare = sparkles.rare + 1
		`
	case entities.SparkleTierRegular:
		query = `
			INSERT INTO sparkles (server_id, user_id, regular) VALUES ($1, $2, 1)
			ON CONFLICT (server_id, user_id) DO UPDATE SET regular = sparkles.regular + 1
		`
	default:
		return fmt.Errorf("unknown sparkle tier %q", tier)
	}

	if _, err := r.q.Exec(ctx, query, serverID, userID); err != nil {
		return fmt.Errorf("failed to increment %s sparkle for user %d in server %d: %w", tier, userID, serverID, err)
	}
	return nil
}

// TopByTotal returns the server's sparkle leaderboard ordered by combined
// count, highest first.
func (r *SparkleRepository) TopByTotal(ctx context.Context, serverID int64, limit int) ([]*entities.SparkleTally, error) {
	query := `
		SELECT server_id, user_id, epic, rare, regular
		FROM sparkles
		WHERE server_id = $1
		ORDER BY epic + rare + regular DESC, user_id
		LIMIT $2
	`
	rows, err := r.q.Query(ctx, query, serverID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query sparkle leaderboard for server %d: %w", serverID, err)
	}
	defer rows.Close()

	var top []*entities.SparkleTally
	for rows.Next() {
		var tally entities.SparkleTally
		if err := rows.Scan(&tally.ServerID, &tally.UserID, &tally.Epic, &tally.Rare, &tally.Regular); err != nil {
			return nil, fmt.Errorf("failed to scan sparkle leaderboard row: %w", err)
		}
		top = append(top, &tally)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sparkle leaderboard for server %d: %w", serverID, err)
	}
	return top, nil
}
