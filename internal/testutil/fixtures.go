package testutil

import (
	"time"

	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/alexanderramin/xpcalc/internal/gamedata"
)

// FixedNow is the reference clock used by deterministic tests.
var FixedNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

// Counts options
type CountsOption func(domain.ActivityCounts)

func WithCount(a domain.Activity, n int64) CountsOption {
	return func(c domain.ActivityCounts) {
		c[a] = n
	}
}

// WithCatching sets the base catch count and the two throw sub-counts used by
// the catching scenarios.
func WithCatching(normal, excellent, curve int64) CountsOption {
	return func(c domain.ActivityCounts) {
		c[domain.NormalCatches] = normal
		c[domain.ExcellentThrows] = excellent
		c[domain.CurveBalls] = curve
	}
}

func WithFriendship(good, great, ultra, best int64) CountsOption {
	return func(c domain.ActivityCounts) {
		c[domain.GoodFriends] = good
		c[domain.GreatFriends] = great
		c[domain.UltraFriends] = ultra
		c[domain.BestFriends] = best
	}
}

func NewTestCounts(opts ...CountsOption) domain.ActivityCounts {
	c := domain.ActivityCounts{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ScenarioRates overrides the catching rates with round numbers:
// normal 100, excellent throw 50, curve ball 10.
func ScenarioRates() gamedata.RateTable {
	rates := gamedata.DefaultRates()
	rates[domain.NormalCatches] = 100
	rates[domain.ExcellentThrows] = 50
	rates[domain.CurveBalls] = 10
	return rates
}

// ScenarioThresholds is a monotonic table with level 5 at 10,000 and level
// 10 at 50,000.
func ScenarioThresholds() gamedata.ThresholdTable {
	levels := make([]int64, domain.MaxLevel)
	for i := range levels {
		level := int64(i + 1)
		switch {
		case level <= 5:
			levels[i] = (level - 1) * 2500
		case level <= 10:
			levels[i] = 10000 + (level-5)*8000
		default:
			levels[i] = 50000 + (level-10)*100000
		}
	}
	table, err := gamedata.NewThresholdTable(levels)
	if err != nil {
		panic(err)
	}
	return table
}
