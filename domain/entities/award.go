package entities

// AwardResult is the outcome of processing one message through the award
// engine. OnCooldown results carry no other state: nothing was written.
type AwardResult struct {
	OnCooldown bool
	XPGained   int64
	NewXP      int64
	OldLevel   int
	NewLevel   int
	BonusCoins int64
}

// LeveledUp reports whether the award crossed at least one level threshold.
func (r *AwardResult) LeveledUp() bool {
	return r.NewLevel > r.OldLevel
}

// LevelsGained returns how many thresholds the award crossed.
func (r *AwardResult) LevelsGained() int {
	if r.NewLevel <= r.OldLevel {
		return 0
	}
	return r.NewLevel - r.OldLevel
}
