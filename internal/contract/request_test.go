package contract

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/alexanderramin/xpcalc/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- CalculateRequest constructor defaults ---

func TestNewCalculateRequest_SetsDefaults(t *testing.T) {
	req := NewCalculateRequest()

	assert.True(t, req.UseTimeline)
	assert.Equal(t, domain.TargetByDate, req.TargetMode)
	assert.Empty(t, req.TargetDate)
	assert.NotNil(t, req.Counts)
	assert.Zero(t, req.CurrentLevel)
	assert.Zero(t, req.TargetLevel)
	assert.False(t, req.LuckyEgg)
	assert.Nil(t, req.Now)
}

// --- Coercion ---

func TestCoerceCount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"abc", 0},
		{"12", 12},
		{"12abc", 12},
		{"  42", 42},
		{"3.9", 3},
		{"1e3", 1},
		{"+7", 7},
		{"-5", -5},
		{"-", 0},
		{"99999999999999999999999", math.MaxInt64},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CoerceCount(tc.in), "input=%q", tc.in)
	}
}

func TestCoerceLevel_Saturates(t *testing.T) {
	assert.Equal(t, 23, CoerceLevel("23"))
	assert.Equal(t, 0, CoerceLevel("lvl"))
	assert.Equal(t, math.MaxInt32, CoerceLevel("9999999999999"))
	assert.Equal(t, domain.MaxLevel, domain.ClampLevel(CoerceLevel("9999999999999"), 1))
}

func TestCountsFromStrings(t *testing.T) {
	counts := CountsFromStrings(map[string]string{
		"normal_catches": "15",
		" curve_balls ":  "3x",
		"km_5_eggs":      "",
	})
	assert.Equal(t, int64(15), counts.Get(domain.NormalCatches))
	assert.Equal(t, int64(3), counts.Get(domain.CurveBalls))
	assert.Equal(t, int64(0), counts.Get(domain.Km5Eggs))
}

func TestParseTargetDate(t *testing.T) {
	got, err := ParseTargetDate("2025-12-31", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseTargetDate("31/12/2025", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTargetDate))

	var calcErr *CalcError
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, ErrCodeInvalidTargetDate, calcErr.Code)
}

func TestDefaultTargetDate_IsYearEnd(t *testing.T) {
	now := time.Date(2026, 2, 3, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), DefaultTargetDate(now))
}

// --- Error types ---

func TestCalcError_ErrorString(t *testing.T) {
	err := &CalcError{
		Code:    ErrCodeUnknownActivity,
		Message: `no activity named "pokestops"`,
	}
	assert.Equal(t, `UNKNOWN_ACTIVITY: no activity named "pokestops"`, err.Error())
}

func TestCalcError_UnwrapsToSentinel(t *testing.T) {
	assert.ErrorIs(t, NewCalcError(ErrCodeUnknownActivity, "x"), ErrUnknownActivity)
	assert.ErrorIs(t, NewCalcError(ErrCodeUnknownCategory, "x"), ErrUnknownCategory)
	assert.Nil(t, NewCalcError(ErrCodeInvalidArgument, "x").Unwrap())
}

func TestCalcErrorCodes_AreDistinct(t *testing.T) {
	codes := []CalcErrorCode{
		ErrCodeUnknownActivity,
		ErrCodeUnknownCategory,
		ErrCodeInvalidTargetDate,
		ErrCodeInvalidArgument,
	}
	seen := make(map[CalcErrorCode]bool)
	for _, c := range codes {
		assert.False(t, seen[c], "duplicate error code: %s", c)
		seen[c] = true
	}
}

// --- JSON shape ---

func TestTimelineResult_FlattensRequirement(t *testing.T) {
	b, err := json.Marshal(TimelineResult{
		Enabled:      true,
		Mode:         domain.TargetByDays,
		TargetDays:   10,
		DaysToTarget: engine.InfiniteDays,
		Requirement:  engine.Requirement{DaysNeeded: 10, DailyXPNeeded: 3716},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"enabled": true,
		"mode": "days",
		"target_days": 10,
		"days_to_target": "infinite",
		"days_needed": 10,
		"daily_xp_needed": 3716
	}`, string(b))
}

func TestResolveActivity(t *testing.T) {
	a, err := ResolveActivity("Curve-Balls")
	require.NoError(t, err)
	assert.Equal(t, domain.CurveBalls, a)

	a, err = ResolveActivity(" km 10 eggs ")
	require.NoError(t, err)
	assert.Equal(t, domain.Km10Eggs, a)
}

func TestResolveActivity_UnknownSuggests(t *testing.T) {
	_, err := ResolveActivity("curveball")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownActivity)
	assert.Contains(t, err.Error(), `did you mean "curve_balls"?`)

	_, err = ResolveActivity("zzzz")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestResolveCategory(t *testing.T) {
	c, err := ResolveCategory("Max-Battle")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryMaxBattle, c)

	_, err = ResolveCategory("raid")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCategory)
	assert.Contains(t, err.Error(), `did you mean "raids"?`)
}

func TestResolveCounts(t *testing.T) {
	counts, err := ResolveCounts(map[string]int64{"normal_catches": 10, "Normal Catches": 5, "best_friends": 2})
	require.NoError(t, err)
	assert.Equal(t, domain.ActivityCounts{domain.NormalCatches: 15, domain.BestFriends: 2}, counts)

	_, err = ResolveCounts(map[string]int64{"pokestops": 1})
	assert.ErrorIs(t, err, ErrUnknownActivity)
}

func TestResolveCounts_SaturatesAliasedSum(t *testing.T) {
	counts, err := ResolveCounts(map[string]int64{"normal_catches": math.MaxInt64, "Normal Catches": 5})
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), counts[domain.NormalCatches])

	def, ok := domain.Lookup(domain.NormalCatches)
	require.True(t, ok)
	assert.Equal(t, def.Cap, domain.Normalize(counts)[domain.NormalCatches])

	counts, err = ResolveCounts(map[string]int64{"curve_balls": math.MinInt64, "Curve Balls": -5})
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), counts[domain.CurveBalls])
}
