package repository

import (
	"context"
	"fmt"
	"strings"

	"novabot/database"
	"novabot/domain/entities"
	"novabot/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

// WalletRepository implements interfaces.WalletRepository over the
// user_coins table.
type WalletRepository struct {
	q Queryable
}

// NewWalletRepository creates a repository running on the pool.
func NewWalletRepository(db *database.DB) *WalletRepository {
	return &WalletRepository{q: db.Pool}
}

func newWalletRepository(tx Queryable) interfaces.WalletRepository {
	return &WalletRepository{q: tx}
}

// GetCoins returns a user's coin balance. Users without a row read as 0.
func (r *WalletRepository) GetCoins(ctx context.Context, userID int64) (int64, error) {
	query := `
		SELECT coins FROM user_coins
		WHERE user_id = $1
	`
	var coins int64
	err := r.q.QueryRow(ctx, query, userID).Scan(&coins)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get coins for user %d: %w", userID, err)
	}
	return coins, nil
}

// AddCoins credits amount to a user's wallet with upsert semantics and
// returns the new balance.
func (r *WalletRepository) AddCoins(ctx context.Context, userID, amount int64) (int64, error) {
	query := `
		INSERT INTO user_coins (user_id, coins)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET coins = user_coins.coins + EXCLUDED.coins, updated_at = NOW()
		RETURNING coins
	`
	var newBalance int64
	if err := r.q.QueryRow(ctx, query, userID, amount).Scan(&newBalance); err != nil {
		return 0, fmt.Errorf("failed to credit coins for user %d: %w", userID, err)
	}
	return newBalance, nil
}

// Debit removes amount from a user's wallet. The guarded UPDATE only matches
// when the balance covers the debit, so an overdraw is rejected with
// entities.ErrInsufficientFunds and the balance is untouched.
func (r *WalletRepository) Debit(ctx context.Context, userID, amount int64) error {
	query := `
		UPDATE user_coins
		SET coins = coins - $2, updated_at = NOW()
		WHERE user_id = $1 AND coins >= $2
	`
	result, err := r.q.Exec(ctx, query, userID, amount)
	if err != nil {
		return fmt.Errorf("failed to debit %d coins from user %d: %w", amount, userID, err)
	}
	if result.RowsAffected() == 0 {
		return entities.ErrInsufficientFunds
	}
	return nil
}

// TopByCoins returns the global coin leaderboard, highest first.
func (r *WalletRepository) TopByCoins(ctx context.Context, limit int) ([]*entities.UserWallet, error) {
	query := `
		SELECT user_id, coins, created_at, updated_at
		FROM user_coins
		ORDER BY coins DESC, user_id
		LIMIT $1
	`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query coin leaderboard: %w", err)
	}
	defer rows.Close()

	var top []*entities.UserWallet
	for rows.Next() {
		var w entities.UserWallet
		if err := rows.Scan(&w.UserID, &w.Coins, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan coin leaderboard row: %w", err)
		}
		top = append(top, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read coin leaderboard: %w", err)
	}
	return top, nil
}

// TopByNetWorth ranks users by coins plus the catalog value of their
// purchased ranks. Catalog prices are interpolated as a VALUES list so the
// pricing stays in code next to the shop table.
func (r *WalletRepository) TopByNetWorth(ctx context.Context, limit int) ([]*entities.NetWorth, error) {
	catalog := entities.ShopCatalog()
	values := make([]string, 0, len(catalog))
	args := []any{limit}
	for _, rank := range catalog {
		values = append(values, fmt.Sprintf("($%d::text, $%d::bigint)", len(args)+1, len(args)+2))
		args = append(args, rank.Name, rank.Price)
	}

	query := fmt.Sprintf(`
		WITH prices (rank_name, price) AS (VALUES %s),
		rank_values AS (
			SELECT ur.user_id, SUM(p.price) AS rank_value
			FROM user_ranks ur
			JOIN prices p ON p.rank_name = ur.rank_name
			WHERE ur.rank_type = 'purchased'
			GROUP BY ur.user_id
		)
		SELECT
			uc.user_id,
			uc.coins,
			COALESCE(rv.rank_value, 0) AS rank_value,
			uc.coins + COALESCE(rv.rank_value, 0) AS total
		FROM user_coins uc
		LEFT JOIN rank_values rv ON rv.user_id = uc.user_id
		ORDER BY total DESC, uc.user_id
		LIMIT $1
	`, strings.Join(values, ", "))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query net worth leaderboard: %w", err)
	}
	defer rows.Close()

	var top []*entities.NetWorth
	for rows.Next() {
		var nw entities.NetWorth
		if err := rows.Scan(&nw.UserID, &nw.Coins, &nw.RankValue, &nw.Total); err != nil {
			return nil, fmt.Errorf("failed to scan net worth row: %w", err)
		}
		top = append(top, &nw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read net worth leaderboard: %w", err)
	}
	return top, nil
}
