package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelRanksUpTo(t *testing.T) {
	t.Run("level zero earns the seed rank", func(t *testing.T) {
		earned := LevelRanksUpTo(0)
		require.Len(t, earned, 1)
		assert.Equal(t, "Nova Seed", earned[0].Name)
	})

	t.Run("thresholds every five levels", func(t *testing.T) {
		earned := LevelRanksUpTo(12)
		require.Len(t, earned, 3)
		assert.Equal(t, "Nova Seed", earned[0].Name)
		assert.Equal(t, "Blossoming Nova", earned[1].Name)
		assert.Equal(t, "Starlight Sprite", earned[2].Name)
	})

	t.Run("level one hundred earns everything", func(t *testing.T) {
		earned := LevelRanksUpTo(100)
		require.Len(t, earned, 21)
		assert.Equal(t, "Ultimate Nova", earned[len(earned)-1].Name)
	})

	t.Run("levels past the table cap at the last rank", func(t *testing.T) {
		assert.Len(t, LevelRanksUpTo(250), 21)
	})
}

func TestCurrentLevelRank(t *testing.T) {
	assert.Equal(t, "Nova Seed", CurrentLevelRank(0).Name)
	assert.Equal(t, "Nova Seed", CurrentLevelRank(4).Name)
	assert.Equal(t, "Blossoming Nova", CurrentLevelRank(5).Name)
	assert.Equal(t, "Ultimate Nova", CurrentLevelRank(100).Name)
	assert.Equal(t, "Ultimate Nova", CurrentLevelRank(999).Name)
}

func TestShopCatalog_SortedByPrice(t *testing.T) {
	catalog := ShopCatalog()
	require.Len(t, catalog, 11)

	for i := 1; i < len(catalog); i++ {
		assert.LessOrEqual(t, catalog[i-1].Price, catalog[i].Price)
	}

	// Tie on price resolves alphabetically.
	assert.Equal(t, "cutie", catalog[0].Name)
	assert.Equal(t, "potato", catalog[1].Name)
	assert.Equal(t, "legendary", catalog[len(catalog)-1].Name)
}

func TestShopPrice(t *testing.T) {
	price, ok := ShopPrice("goddess")
	assert.True(t, ok)
	assert.Equal(t, int64(10000), price)

	_, ok = ShopPrice("Nova Seed")
	assert.False(t, ok)

	_, ok = ShopPrice("")
	assert.False(t, ok)
}
