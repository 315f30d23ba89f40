package gamedata

import (
	"fmt"

	"github.com/alexanderramin/xpcalc/internal/domain"
)

// ThresholdTable holds the cumulative XP required to reach each level.
// Index = level; index 0 is unused.
type ThresholdTable [domain.MaxLevel + 1]int64

var defaultThresholds = ThresholdTable{
	0,         // unused
	0,         // 1
	1000,      // 2
	3000,      // 3
	6000,      // 4
	10000,     // 5
	15000,     // 6
	21000,     // 7
	28000,     // 8
	36000,     // 9
	45000,     // 10
	55000,     // 11
	65000,     // 12
	75000,     // 13
	85000,     // 14
	100000,    // 15
	120000,    // 16
	140000,    // 17
	160000,    // 18
	185000,    // 19
	210000,    // 20
	260000,    // 21
	335000,    // 22
	435000,    // 23
	560000,    // 24
	710000,    // 25
	900000,    // 26
	1100000,   // 27
	1350000,   // 28
	1650000,   // 29
	2000000,   // 30
	2500000,   // 31
	3000000,   // 32
	3750000,   // 33
	4750000,   // 34
	6000000,   // 35
	7500000,   // 36
	9500000,   // 37
	12000000,  // 38
	15000000,  // 39
	20000000,  // 40
	26000000,  // 41
	33500000,  // 42
	42500000,  // 43
	53500000,  // 44
	66500000,  // 45
	82000000,  // 46
	100000000, // 47
	121000000, // 48
	146000000, // 49
	176000000, // 50
}

// DefaultThresholds returns the built-in level table.
func DefaultThresholds() ThresholdTable {
	return defaultThresholds
}

// NewThresholdTable builds a table from the cumulative XP of levels 1..50.
func NewThresholdTable(levels []int64) (ThresholdTable, error) {
	var t ThresholdTable
	if len(levels) != domain.MaxLevel {
		return t, fmt.Errorf("threshold table needs %d levels, got %d", domain.MaxLevel, len(levels))
	}
	copy(t[1:], levels)
	return t, nil
}

// At returns the cumulative XP for level. Levels outside [1, 50] resolve to
// the level 50 threshold.
func (t ThresholdTable) At(level int) int64 {
	if level < domain.MinLevel || level > domain.MaxLevel {
		return t[domain.MaxLevel]
	}
	return t[level]
}

// Validate reports the first level whose threshold is lower than the
// previous level's.
func (t ThresholdTable) Validate() error {
	for level := domain.MinLevel + 1; level <= domain.MaxLevel; level++ {
		if t[level] < t[level-1] {
			return fmt.Errorf("level %d threshold %d is below level %d threshold %d",
				level, t[level], level-1, t[level-1])
		}
	}
	return nil
}
