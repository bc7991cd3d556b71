package repository

import (
	"context"
	"testing"

	"novabot/domain/entities"
	"novabot/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankRepository_InsertIfAbsent(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewRankRepository(testDB.DB)
	ctx := context.Background()

	inserted, err := repo.InsertIfAbsent(ctx, 1, "uwu", entities.RankTypePurchased)
	require.NoError(t, err)
	assert.True(t, inserted)

	// Repeating the grant is a no-op, not an error.
	inserted, err = repo.InsertIfAbsent(ctx, 1, "uwu", entities.RankTypePurchased)
	require.NoError(t, err)
	assert.False(t, inserted)

	ranks, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, ranks, 1)
}

func TestRankRepository_Get(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewRankRepository(testDB.DB)
	ctx := context.Background()

	t.Run("absent rank returns nil", func(t *testing.T) {
		rank, err := repo.Get(ctx, 1, "angel")
		require.NoError(t, err)
		assert.Nil(t, rank)
	})

	t.Run("returns the ownership row", func(t *testing.T) {
		_, err := repo.InsertIfAbsent(ctx, 1, "angel", entities.RankTypePurchased)
		require.NoError(t, err)

		rank, err := repo.Get(ctx, 1, "angel")
		require.NoError(t, err)
		require.NotNil(t, rank)
		assert.Equal(t, int64(1), rank.UserID)
		assert.Equal(t, "angel", rank.RankName)
		assert.Equal(t, entities.RankTypePurchased, rank.RankType)
		assert.False(t, rank.IsEquipped)
		assert.False(t, rank.CreatedAt.IsZero())
	})
}

func TestRankRepository_ListByUser_Ordering(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewRankRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.InsertIfAbsent(ctx, 1, "uwu", entities.RankTypePurchased)
	require.NoError(t, err)
	_, err = repo.InsertIfAbsent(ctx, 1, "Nova Seed", entities.RankTypeLevel)
	require.NoError(t, err)
	_, err = repo.InsertIfAbsent(ctx, 1, "angel", entities.RankTypePurchased)
	require.NoError(t, err)

	ranks, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, ranks, 3)

	// Level ranks first, then purchased alphabetically.
	assert.Equal(t, "Nova Seed", ranks[0].RankName)
	assert.Equal(t, "angel", ranks[1].RankName)
	assert.Equal(t, "uwu", ranks[2].RankName)
}

func TestRankRepository_EquipFlow(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	repo := NewRankRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.InsertIfAbsent(ctx, 1, "uwu", entities.RankTypePurchased)
	require.NoError(t, err)
	_, err = repo.InsertIfAbsent(ctx, 1, "angel", entities.RankTypePurchased)
	require.NoError(t, err)

	t.Run("nothing equipped initially", func(t *testing.T) {
		equipped, err := repo.GetEquipped(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, equipped)
	})

	t.Run("set and read back", func(t *testing.T) {
		set, err := repo.SetEquipped(ctx, 1, "uwu")
		require.NoError(t, err)
		assert.True(t, set)

		equipped, err := repo.GetEquipped(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, equipped)
		assert.Equal(t, "uwu", equipped.RankName)
	})

	t.Run("second equip without clearing violates the single-equip index", func(t *testing.T) {
		_, err := repo.SetEquipped(ctx, 1, "angel")
		assert.Error(t, err)
	})

	t.Run("clear then equip the other rank", func(t *testing.T) {
		require.NoError(t, repo.ClearEquipped(ctx, 1))

		set, err := repo.SetEquipped(ctx, 1, "angel")
		require.NoError(t, err)
		assert.True(t, set)

		equipped, err := repo.GetEquipped(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, equipped)
		assert.Equal(t, "angel", equipped.RankName)
	})

	t.Run("equipping an unowned rank reports false", func(t *testing.T) {
		require.NoError(t, repo.ClearEquipped(ctx, 1))

		set, err := repo.SetEquipped(ctx, 1, "legendary")
		require.NoError(t, err)
		assert.False(t, set)
	})
}
