package services

// The level curve is geometric: advancing from level 0 costs BaseXPNeeded,
// and each subsequent level costs the previous threshold times
// XPGrowthFactor, truncated to an integer. Levels are never stored; both
// functions below replay the same sequence from level 0, which keeps them
// mutually consistent by construction.
const (
	BaseXPNeeded   = 100
	XPGrowthFactor = 1.2
)

// LevelForXP maps cumulative XP to the derived level and the XP progressed
// into that level.
func LevelForXP(xp int64) (level int, xpIntoLevel int64) {
	needed := int64(BaseXPNeeded)
	for xp >= needed {
		xp -= needed
		level++
		needed = int64(float64(needed) * XPGrowthFactor)
	}
	return level, xp
}

// XPForNextLevel returns the XP needed to advance from the given level to
// the next one.
func XPForNextLevel(level int) int64 {
	needed := int64(BaseXPNeeded)
	for i := 0; i < level; i++ {
		needed = int64(float64(needed) * XPGrowthFactor)
	}
	return needed
}
