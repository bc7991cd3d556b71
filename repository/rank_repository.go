package repository

import (
	"context"
	"fmt"

	"novabot/database"
	"novabot/domain/entities"
	"novabot/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// RankRepository implements interfaces.RankRepository over the user_ranks
// table.
type RankRepository struct {
	q Queryable
}

// NewRankRepository creates a repository running on the pool.
func NewRankRepository(db *database.DB) *RankRepository {
	return &RankRepository{q: db.Pool}
}

func newRankRepository(tx Queryable) interfaces.RankRepository {
	return &RankRepository{q: tx}
}

// Get returns the ownership row for (userID, rankName), or nil when absent.
func (r *RankRepository) Get(ctx context.Context, userID int64, rankName string) (*entities.RankOwnership, error) {
	query := `
		SELECT user_id, rank_name, rank_type, is_equipped, created_at
		FROM user_ranks
		WHERE user_id = $1 AND rank_name = $2
	`
	var rank entities.RankOwnership
	err := r.q.QueryRow(ctx, query, userID, rankName).Scan(
		&rank.UserID, &rank.RankName, &rank.RankType, &rank.IsEquipped, &rank.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rank %q for user %d: %w", rankName, userID, err)
	}
	return &rank, nil
}

// ListByUser returns all of a user's ranks, level ranks before purchased
// ones, alphabetical within each type.
func (r *RankRepository) ListByUser(ctx context.Context, userID int64) ([]*entities.RankOwnership, error) {
	query := `
		SELECT user_id, rank_name, rank_type, is_equipped, created_at
		FROM user_ranks
		WHERE user_id = $1
		ORDER BY CASE rank_type WHEN 'level' THEN 0 ELSE 1 END, rank_name
	`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ranks for user %d: %w", userID, err)
	}
	defer rows.Close()

	var ranks []*entities.RankOwnership
	for rows.Next() {
		var rank entities.RankOwnership
		if err := rows.Scan(&rank.UserID, &rank.RankName, &rank.RankType, &rank.IsEquipped, &rank.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rank row: %w", err)
		}
		ranks = append(ranks, &rank)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ranks for user %d: %w", userID, err)
	}
	return ranks, nil
}

// InsertIfAbsent creates an unequipped ownership row unless one exists.
// ON CONFLICT DO NOTHING makes repeated grants a no-op rather than a
// duplicate or an overwrite.
func (r *RankRepository) InsertIfAbsent(ctx context.Context, userID int64, rankName string, rankType entities.RankType) (bool, error) {
	query := `
		INSERT INTO user_ranks (user_id, rank_name, rank_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, rank_name) DO NOTHING
	`
	result, err := r.q.Exec(ctx, query, userID, rankName, rankType)
	if err != nil {
		return false, fmt.Errorf("failed to insert rank %q for user %d: %w", rankName, userID, err)
	}
	return result.RowsAffected() > 0, nil
}

// GetEquipped returns the user's equipped rank, or nil when none is.
func (r *RankRepository) GetEquipped(ctx context.Context, userID int64) (*entities.RankOwnership, error) {
	query := `
		SELECT user_id, rank_name, rank_type, is_equipped, created_at
		FROM user_ranks
		WHERE user_id = $1 AND is_equipped
	`
	var rank entities.RankOwnership
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&rank.UserID, &rank.RankName, &rank.RankType, &rank.IsEquipped, &rank.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get equipped rank for user %d: %w", userID, err)
	}
	return &rank, nil
}

// ClearEquipped unequips all of the user's ranks.
func (r *RankRepository) ClearEquipped(ctx context.Context, userID int64) error {
	query := `
		UPDATE user_ranks SET is_equipped = FALSE
		WHERE user_id = $1 AND is_equipped
	`
	if _, err := r.q.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear equipped ranks for user %d: %w", userID, err)
	}
	return nil
}

// SetEquipped marks the given rank as equipped. Returns false when the user
// does not own the rank.
func (r *RankRepository) SetEquipped(ctx context.Context, userID int64, rankName string) (bool, error) {
	query := `
		UPDATE user_ranks SET is_equipped = TRUE
		WHERE user_id = $1 AND rank_name = $2
	`
	result, err := r.q.Exec(ctx, query, userID, rankName)
	if err != nil {
		return false, fmt.Errorf("failed to equip rank %q for user %d: %w", rankName, userID, err)
	}
	return result.RowsAffected() > 0, nil
}
