// Package gamedata holds the compiled-in XP rate and level threshold tables.
package gamedata

import "github.com/alexanderramin/xpcalc/internal/domain"

// MaxRate bounds a configured per-occurrence rate. Every capped count at
// this rate, doubled by the booster, still fits in an int64 total.
const MaxRate int64 = 1_000_000_000

// RateTable maps an activity to the XP awarded per occurrence.
// Activities missing from the table award nothing.
type RateTable map[domain.Activity]int64

// Rate returns the XP per occurrence for a.
func (r RateTable) Rate(a domain.Activity) int64 {
	return r[a]
}

var defaultRates = RateTable{
	domain.NormalCatches:     100,
	domain.NewPokemonCatches: 500,
	domain.ExcellentThrows:   100,
	domain.CurveBalls:        10,
	domain.FirstThrows:       50,
	domain.GreatThrows:       50,
	domain.NiceThrows:        10,

	domain.NormalEvolutions:     500,
	domain.NewPokemonEvolutions: 1000,

	domain.Km2Eggs:  500,
	domain.Km5Eggs:  1000,
	domain.Km7Eggs:  1000,
	domain.Km10Eggs: 2000,
	domain.Km12Eggs: 4000,

	domain.Star1Raids:  3500,
	domain.Star3Raids:  5000,
	domain.Star5Raids:  10000,
	domain.MegaRaids:   10000,
	domain.ShadowRaids: 10000,

	domain.Star1Battles:  500,
	domain.Star2Battles:  1000,
	domain.Star3Battles:  2000,
	domain.Star4Battles:  3000,
	domain.Star5Battles:  5000,
	domain.Star6Battles:  10000,
	domain.InPersonBonus: 1000,

	domain.Level1Moves:   500,
	domain.Level2Moves:   1000,
	domain.LevelMaxMoves: 2000,

	domain.GoodFriends:  3000,
	domain.GreatFriends: 10000,
	domain.UltraFriends: 50000,
	domain.BestFriends:  100000,
}

// DefaultRates returns a copy of the built-in rate table.
func DefaultRates() RateTable {
	out := make(RateTable, len(defaultRates))
	for k, v := range defaultRates {
		out[k] = v
	}
	return out
}
