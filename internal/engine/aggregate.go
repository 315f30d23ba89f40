package engine

import (
	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/alexanderramin/xpcalc/internal/gamedata"
)

// BoosterMultiplier is the lucky egg factor.
const BoosterMultiplier = 2

type CategoryXPResult struct {
	ByCategory map[domain.Category]int64 `json:"by_category"`
	// DailyXP sums the repeatable categories after the booster.
	DailyXP int64 `json:"daily_xp"`
	// Total is DailyXP plus the undoubled friendship bonus.
	Total int64 `json:"total_xp"`
}

// Of returns the subtotal of c.
func (r CategoryXPResult) Of(c domain.Category) int64 {
	return r.ByCategory[c]
}

// Aggregate converts activity counts into per-category XP for the detailed
// calculator. The booster doubles every daily category; friendship XP is a
// one-time bonus and is added undoubled.
func Aggregate(counts domain.ActivityCounts, booster bool, rates gamedata.RateTable) CategoryXPResult {
	result := CategoryXPResult{
		ByCategory: make(map[domain.Category]int64, len(domain.Categories)),
	}

	for _, cat := range domain.Categories {
		xp := subtotal(cat, counts, rates)
		if booster && cat.IsDaily() {
			xp *= BoosterMultiplier
		}
		result.ByCategory[cat] = xp
		if cat.IsDaily() {
			result.DailyXP += xp
		}
	}

	result.Total = result.DailyXP + result.ByCategory[domain.CategoryFriendship]
	return result
}

// CategoryXP is the single-category calculator. Unlike Aggregate, the
// booster doubles every category here, friendship included.
func CategoryXP(cat domain.Category, counts domain.ActivityCounts, booster bool, rates gamedata.RateTable) int64 {
	xp := subtotal(cat, counts, rates)
	if booster {
		xp *= BoosterMultiplier
	}
	return xp
}

func subtotal(cat domain.Category, counts domain.ActivityCounts, rates gamedata.RateTable) int64 {
	var xp int64
	for _, def := range domain.ActivitiesIn(cat) {
		xp += counts.Get(def.Key) * rates.Rate(def.Key)
	}
	return xp
}
