package repository

import (
	"context"
	"testing"

	"novabot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressionRepository_GetXP(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewProgressionRepository(testDB.DB)
	ctx := context.Background()

	t.Run("unknown user reads as zero", func(t *testing.T) {
		xp, err := repo.GetXP(ctx, 100, 999999)
		require.NoError(t, err)
		assert.Zero(t, xp)
	})

	t.Run("returns stored xp", func(t *testing.T) {
		_, err := repo.AddXP(ctx, 100, 42, 57)
		require.NoError(t, err)

		xp, err := repo.GetXP(ctx, 100, 42)
		require.NoError(t, err)
		assert.Equal(t, int64(57), xp)
	})

	t.Run("xp is scoped to the server", func(t *testing.T) {
		xp, err := repo.GetXP(ctx, 200, 42)
		require.NoError(t, err)
		assert.Zero(t, xp)
	})
}

func TestProgressionRepository_AddXP(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewProgressionRepository(testDB.DB)
	ctx := context.Background()

	t.Run("creates the row on first award", func(t *testing.T) {
		newXP, err := repo.AddXP(ctx, 100, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), newXP)
	})

	t.Run("accumulates on repeat awards", func(t *testing.T) {
		newXP, err := repo.AddXP(ctx, 100, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(15), newXP)

		newXP, err = repo.AddXP(ctx, 100, 1, 15)
		require.NoError(t, err)
		assert.Equal(t, int64(30), newXP)
	})
}

func TestProgressionRepository_TopByXP(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewProgressionRepository(testDB.DB)
	ctx := context.Background()

	t.Run("empty server", func(t *testing.T) {
		top, err := repo.TopByXP(ctx, 100, 10)
		require.NoError(t, err)
		assert.Empty(t, top)
	})

	t.Run("orders by xp descending and respects the limit", func(t *testing.T) {
		for userID, xp := range map[int64]int64{1: 50, 2: 300, 3: 120} {
			_, err := repo.AddXP(ctx, 100, userID, xp)
			require.NoError(t, err)
		}
		// Another server's rows must not leak in.
		_, err := repo.AddXP(ctx, 200, 9, 9999)
		require.NoError(t, err)

		top, err := repo.TopByXP(ctx, 100, 2)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, int64(2), top[0].UserID)
		assert.Equal(t, int64(300), top[0].XP)
		assert.Equal(t, int64(3), top[1].UserID)
	})
}
