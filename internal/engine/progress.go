package engine

import (
	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/alexanderramin/xpcalc/internal/gamedata"
)

type ProgressInput struct {
	CurrentLevel int
	// CurrentXP is XP earned past CurrentLevel's threshold, not cumulative.
	CurrentXP     int64
	TargetLevel   int
	CategoryTotal int64
}

type ProgressResult struct {
	CurrentTotalXP int64 `json:"current_total_xp"`
	TargetTotalXP  int64 `json:"target_total_xp"`
	NewTotalXP     int64 `json:"new_total_xp"`
	XPNeeded       int64 `json:"xp_needed"`
	XPRemaining    int64 `json:"xp_remaining"`
	TargetReached  bool  `json:"target_reached"`
	ReachedLevel   int   `json:"reached_level"`
}

// Resolve applies a session's XP to the player's position on the level table.
// The reached level only advances through an unbroken run of satisfied
// thresholds starting at CurrentLevel+1.
func Resolve(in ProgressInput, thresholds gamedata.ThresholdTable) ProgressResult {
	currentTotal := thresholds.At(in.CurrentLevel) + in.CurrentXP
	targetTotal := thresholds.At(in.TargetLevel)
	newTotal := currentTotal + in.CategoryTotal

	reached := in.CurrentLevel
	for level := in.CurrentLevel + 1; level <= domain.MaxLevel; level++ {
		if newTotal < thresholds.At(level) {
			break
		}
		reached = level
	}

	return ProgressResult{
		CurrentTotalXP: currentTotal,
		TargetTotalXP:  targetTotal,
		NewTotalXP:     newTotal,
		XPNeeded:       max(0, targetTotal-currentTotal),
		XPRemaining:    max(0, targetTotal-newTotal),
		TargetReached:  newTotal >= targetTotal,
		ReachedLevel:   reached,
	}
}
