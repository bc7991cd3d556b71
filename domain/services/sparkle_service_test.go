package services

import (
	"testing"

	"novabot/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestTierForRoll_Boundaries(t *testing.T) {
	tests := []struct {
		roll int64
		tier entities.SparkleTier
		hit  bool
	}{
		{1, entities.SparkleTierEpic, true},
		{2, entities.SparkleTierRare, true},
		{10, entities.SparkleTierRare, true},
		{11, entities.SparkleTierRegular, true},
		{100, entities.SparkleTierRegular, true},
		{101, "", false},
		{50000, "", false},
		{sparkleRollMax, "", false},
	}

	for _, tt := range tests {
		tier, hit := TierForRoll(tt.roll)
		assert.Equal(t, tt.hit, hit, "roll %d", tt.roll)
		assert.Equal(t, tt.tier, tier, "roll %d", tt.roll)
	}
}

func TestTierForRoll_HitCounts(t *testing.T) {
	// Over the whole roll space there are exactly 1 epic, 9 rare and 90
	// regular outcomes.
	counts := map[entities.SparkleTier]int{}
	for roll := int64(1); roll <= sparkleRollMax; roll++ {
		if tier, hit := TierForRoll(roll); hit {
			counts[tier]++
		}
	}
	assert.Equal(t, 1, counts[entities.SparkleTierEpic])
	assert.Equal(t, 9, counts[entities.SparkleTierRare])
	assert.Equal(t, 90, counts[entities.SparkleTierRegular])
}

func TestSparkleTier_Emoji(t *testing.T) {
	assert.Equal(t, "✨", entities.SparkleTierEpic.Emoji())
	assert.Equal(t, "🌟", entities.SparkleTierRare.Emoji())
	assert.Equal(t, "⭐", entities.SparkleTierRegular.Emoji())
}
