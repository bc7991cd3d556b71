package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP_ExactValues(t *testing.T) {
	tests := []struct {
		name        string
		xp          int64
		level       int
		xpIntoLevel int64
	}{
		{"zero xp", 0, 0, 0},
		{"just below first threshold", 99, 0, 99},
		{"exactly first threshold", 100, 1, 0},
		{"partway into level one", 219, 1, 119},
		{"exactly second threshold", 220, 2, 0},
		{"just below third threshold", 363, 2, 143},
		{"exactly third threshold", 364, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, into := LevelForXP(tt.xp)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.xpIntoLevel, into)
		})
	}
}

func TestXPForNextLevel_TruncatedGeometricGrowth(t *testing.T) {
	// Each step multiplies by 1.2 and truncates: 100, 120, 144, 172, 206.
	assert.Equal(t, int64(100), XPForNextLevel(0))
	assert.Equal(t, int64(120), XPForNextLevel(1))
	assert.Equal(t, int64(144), XPForNextLevel(2))
	assert.Equal(t, int64(172), XPForNextLevel(3))
	assert.Equal(t, int64(206), XPForNextLevel(4))
}

func TestLevelForXP_MonotonicInXP(t *testing.T) {
	prevLevel := 0
	for xp := int64(0); xp <= 5000; xp++ {
		level, into := LevelForXP(xp)
		assert.GreaterOrEqual(t, level, prevLevel, "level regressed at xp=%d", xp)
		assert.GreaterOrEqual(t, into, int64(0))
		assert.Less(t, into, XPForNextLevel(level), "xpIntoLevel reached the next threshold at xp=%d", xp)
		prevLevel = level
	}
}

func TestLevelForXP_ConsistentWithXPForNextLevel(t *testing.T) {
	// Summing thresholds 0..n-1 must land exactly on level n with zero
	// progress.
	var total int64
	for level := 1; level <= 30; level++ {
		total += XPForNextLevel(level - 1)
		gotLevel, into := LevelForXP(total)
		assert.Equal(t, level, gotLevel)
		assert.Equal(t, int64(0), into)
	}
}
