package engine

import (
	"math/rand"
	"testing"

	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/alexanderramin/xpcalc/internal/gamedata"
	"github.com/stretchr/testify/assert"
)

func randomCounts(rng *rand.Rand) domain.ActivityCounts {
	counts := domain.ActivityCounts{}
	for _, def := range domain.Catalog {
		if rng.Intn(3) == 0 {
			continue
		}
		counts[def.Key] = rng.Int63n(500)
	}
	return domain.Normalize(counts)
}

// TestAggregate_Invariants_BoosterAndTotals checks that the booster exactly
// doubles the daily categories, never touches friendship, and that Total is
// the sum of the parts.
func TestAggregate_Invariants_BoosterAndTotals(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rates := gamedata.DefaultRates()

	for trial := 0; trial < 200; trial++ {
		counts := randomCounts(rng)
		plain := Aggregate(counts, false, rates)
		boosted := Aggregate(counts, true, rates)

		var sum int64
		for _, cat := range domain.Categories {
			if cat.IsDaily() {
				assert.Equal(t, 2*plain.Of(cat), boosted.Of(cat), "trial %d: category %s", trial, cat)
			} else {
				assert.Equal(t, plain.Of(cat), boosted.Of(cat), "trial %d: category %s", trial, cat)
			}
			sum += boosted.Of(cat)
		}
		assert.Equal(t, sum, boosted.Total, "trial %d", trial)
		assert.Equal(t, boosted.Total-boosted.Of(domain.CategoryFriendship), boosted.DailyXP, "trial %d", trial)
	}
}

// TestAggregate_Invariants_Monotonic checks that raising any single count
// never lowers its category subtotal.
func TestAggregate_Invariants_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rates := gamedata.DefaultRates()

	for trial := 0; trial < 200; trial++ {
		counts := randomCounts(rng)
		def := domain.Catalog[rng.Intn(len(domain.Catalog))]
		booster := rng.Intn(2) == 1

		before := Aggregate(counts, booster, rates)
		after := Aggregate(counts.With(def.Key, counts.Get(def.Key)+1+rng.Int63n(50)), booster, rates)

		assert.GreaterOrEqual(t, after.Of(def.Category), before.Of(def.Category),
			"trial %d: raising %s lowered %s", trial, def.Key, def.Category)
		assert.GreaterOrEqual(t, after.Total, before.Total, "trial %d", trial)
	}
}

// TestNormalize_Invariants_Idempotent checks Normalize(Normalize(c)) == Normalize(c)
// and that sub-counts never exceed their parent.
func TestNormalize_Invariants_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 200; trial++ {
		raw := domain.ActivityCounts{}
		for _, def := range domain.Catalog {
			raw[def.Key] = rng.Int63n(2*def.Cap+2) - def.Cap/4
		}
		once := domain.Normalize(raw)
		assert.Equal(t, once, domain.Normalize(once), "trial %d", trial)

		for _, def := range domain.Catalog {
			assert.LessOrEqual(t, once.Get(def.Key), def.Cap, "trial %d: %s", trial, def.Key)
			if def.Parent != "" {
				assert.LessOrEqual(t, once.Get(def.Key), once.Get(def.Parent), "trial %d: %s", trial, def.Key)
			}
		}
	}
}

// TestRequiredDaily_Invariants_CeilingCovers checks that the required daily XP
// sustained over the deadline always covers the remaining XP, and that one
// XP less per day would not.
func TestRequiredDaily_Invariants_CeilingCovers(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	for trial := 0; trial < 500; trial++ {
		remaining := rng.Int63n(200_000_000) + 1
		days := rng.Int63n(3650) + 1

		req := RequiredDaily(DeadlineInput{Enabled: true, Mode: domain.TargetByDays, Days: days},
			ProgressResult{XPRemaining: remaining})

		assert.Equal(t, days, req.DaysNeeded)
		assert.GreaterOrEqual(t, req.DailyXPNeeded*days, remaining, "trial %d", trial)
		assert.Less(t, (req.DailyXPNeeded-1)*days, remaining, "trial %d", trial)

		pace := ProjectPace(ProgressResult{XPRemaining: remaining}, req.DailyXPNeeded)
		assert.False(t, pace.Infinite)
		assert.LessOrEqual(t, pace.Value, days, "trial %d", trial)
	}
}

// TestResolve_Invariants_Boundary checks that the reached level's threshold
// is covered and the next level's is not.
func TestResolve_Invariants_Boundary(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	thresholds := gamedata.DefaultThresholds()

	for trial := 0; trial < 300; trial++ {
		current := rng.Intn(domain.MaxLevel) + 1
		target := rng.Intn(domain.MaxLevel) + 1
		in := ProgressInput{
			CurrentLevel:  current,
			CurrentXP:     rng.Int63n(domain.MaxCurrentXP),
			TargetLevel:   target,
			CategoryTotal: rng.Int63n(50_000_000),
		}
		got := Resolve(in, thresholds)

		assert.GreaterOrEqual(t, got.ReachedLevel, current, "trial %d", trial)
		assert.GreaterOrEqual(t, got.XPNeeded, got.XPRemaining, "trial %d", trial)
		assert.Equal(t, got.XPRemaining == 0, got.TargetReached, "trial %d", trial)
		if got.ReachedLevel > current {
			assert.GreaterOrEqual(t, got.NewTotalXP, thresholds.At(got.ReachedLevel), "trial %d", trial)
		}
		if got.ReachedLevel < domain.MaxLevel {
			assert.Less(t, got.NewTotalXP, thresholds.At(got.ReachedLevel+1), "trial %d", trial)
		}
	}
}
