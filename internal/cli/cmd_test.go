package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/xpcalc/internal/config"
	"github.com/alexanderramin/xpcalc/internal/contract"
	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/alexanderramin/xpcalc/internal/service"
	"github.com/alexanderramin/xpcalc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires an App backed by the scenario tables and a fixed clock.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Calc:          service.NewCalculatorService(testutil.ScenarioRates(), testutil.ScenarioThresholds()),
		Defaults:      config.DefaultConfig().Defaults,
		Version:       "test",
		Now:           func() time.Time { return testutil.FixedNow },
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

var scenarioArgs = []string{
	"calc",
	"--count", "normal_catches=10",
	"--count", "excellent_throws=3,curve_balls=2",
	"--lucky-egg",
	"--current-level", "5",
	"--current-xp", "500",
	"--target-level", "10",
}

// --- calc ---

func TestCalcCmd_Scenario(t *testing.T) {
	out, err := executeCmd(t, testApp(t), append(scenarioArgs, "--target-days", "10")...)
	require.NoError(t, err)

	assert.Contains(t, out, "XP CALCULATION")
	assert.Contains(t, out, "2,340 XP")
	assert.Contains(t, out, "12,840 / 50,000")
	assert.Contains(t, out, "37,160 XP")
	assert.Contains(t, out, "IN PROGRESS")
	assert.Contains(t, out, "16 days")
	assert.Contains(t, out, "3,716 XP")
}

func TestCalcCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), append(scenarioArgs, "--target-days", "10", "--json")...)
	require.NoError(t, err)

	var resp contract.CalculateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, int64(2340), resp.XP.DailyXP)
	assert.Equal(t, int64(37160), resp.Progress.XPRemaining)
	assert.Equal(t, domain.TargetByDays, resp.Timeline.Mode)
	assert.Equal(t, int64(3716), resp.Timeline.DailyXPNeeded)
	assert.True(t, resp.LuckyEgg)
}

func TestCalcCmd_TargetDate(t *testing.T) {
	out, err := executeCmd(t, testApp(t), append(scenarioArgs, "--target-date", "2025-03-25", "--json")...)
	require.NoError(t, err)

	var resp contract.CalculateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, domain.TargetByDate, resp.Timeline.Mode)
	assert.Equal(t, "2025-03-25", resp.Timeline.TargetDate)
	assert.Equal(t, int64(10), resp.Timeline.DaysNeeded)
	assert.Equal(t, int64(3716), resp.Timeline.DailyXPNeeded)
}

func TestCalcCmd_NoTimeline(t *testing.T) {
	out, err := executeCmd(t, testApp(t), append(scenarioArgs, "--no-timeline", "--json")...)
	require.NoError(t, err)

	var resp contract.CalculateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.False(t, resp.Timeline.Enabled)
	assert.Equal(t, int64(0), resp.Timeline.DailyXPNeeded)
}

func TestCalcCmd_InvalidTargetDate(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "calc", "--target-date", "25/03/2025")
	require.Error(t, err)
	assert.True(t, errors.Is(err, contract.ErrInvalidTargetDate))
	assert.Contains(t, err.Error(), "INVALID_TARGET_DATE")
}

func TestCalcCmd_TargetDateAndDaysConflict(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "calc", "--target-date", "2025-04-01", "--target-days", "5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target-date")
}

func TestCalcCmd_UnknownActivitySuggests(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "calc", "--count", "curveball=3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, contract.ErrUnknownActivity))
	assert.Contains(t, err.Error(), "curve_balls")
}

func TestCalcCmd_ClampWarnings(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "calc", "--count", "curve_balls=4", "--current-level", "70")
	require.NoError(t, err)
	assert.Contains(t, out, "WARNING: ")
	assert.Contains(t, out, "current level 70 clamped to 50")
}

func TestCalcCmd_UsesConfiguredDefaults(t *testing.T) {
	app := testApp(t)
	app.Defaults.LuckyEgg = true

	out, err := executeCmd(t, app, "calc", "--count", "normal_catches=1", "--json")
	require.NoError(t, err)
	var resp contract.CalculateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, int64(200), resp.XP.DailyXP)

	out, err = executeCmd(t, app, "calc", "--count", "normal_catches=1", "--lucky-egg=false", "--json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, int64(100), resp.XP.DailyXP)
}

// --- single-category commands ---

func TestCatchCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "catch", "normal_catches=10", "excellent-throws=3", "Curve Balls=2", "--lucky-egg")
	require.NoError(t, err)
	assert.Contains(t, out, "CATCHING XP")
	assert.Contains(t, out, "1,170 XP")
	assert.Contains(t, out, "2,340 XP")
}

func TestFriendshipCmd_Doubles(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "friendship", "best_friends=1", "--lucky-egg", "--json")
	require.NoError(t, err)

	var resp contract.CategoryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, int64(100000), resp.BaseXP)
	assert.Equal(t, int64(200000), resp.XP)
}

func TestCategoryCmd_Alias(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "hatching", "km_10_eggs=2")
	require.NoError(t, err)
	assert.Contains(t, out, "HATCHING XP")
	assert.Contains(t, out, "4,000 XP")
}

func TestCategoryCmd_OtherCategoryWarns(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "raid", "mega_raids=1", "km_2_eggs=4")
	require.NoError(t, err)
	assert.Contains(t, out, "10,000 XP")
	assert.Contains(t, out, "is not a raids activity")
}

func TestCategoryCmd_BadArgument(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "catch", "normal_catches")
	require.Error(t, err)
	var calcErr *contract.CalcError
	require.True(t, errors.As(err, &calcErr))
	assert.Equal(t, contract.ErrCodeInvalidArgument, calcErr.Code)

	_, err = executeCmd(t, testApp(t), "catch", "pokeballs=3")
	assert.True(t, errors.Is(err, contract.ErrUnknownActivity))
}

// --- tables ---

func TestLevelsCmd_Highlight(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "levels", "--highlight", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "▸ 10")
	assert.Contains(t, out, "50,000")
}

func TestLevelsCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "levels", "--json")
	require.NoError(t, err)

	var rows []contract.LevelRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, domain.MaxLevel)
	assert.Equal(t, int64(8000), rows[5].FromPrevXP)
}

func TestRatesCmd_FilterByCategory(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "rates", "--category", "max-moves", "--json")
	require.NoError(t, err)

	var rows []contract.RateRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, domain.CategoryMaxMoves, r.Category)
	}

	_, err = executeCmd(t, testApp(t), "rates", "--category", "raid")
	assert.True(t, errors.Is(err, contract.ErrUnknownCategory))
}

func TestRatesCmd_Table(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "rates")
	require.NoError(t, err)
	assert.Contains(t, out, "normal_catches")
	assert.Contains(t, out, "Friendship")
}

// --- interactive commands ---

func TestInteractiveCommands_RequireTerminal(t *testing.T) {
	for _, name := range []string{"wizard", "live"} {
		_, err := executeCmd(t, testApp(t), name)
		assert.ErrorIs(t, err, errNotInteractive, name)
	}
}

// --- bootstrap ---

func TestRootCmd_BootstrapReceivesPersistentFlags(t *testing.T) {
	app := testApp(t)
	var got BootstrapOptions
	calls := 0
	app.Bootstrap = func(a *App, opts BootstrapOptions) error {
		calls++
		got = opts
		return nil
	}

	_, err := executeCmd(t, app, "--config", "xp.toml", "--verbose", "levels")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, BootstrapOptions{ConfigPath: "xp.toml", Verbose: true}, got)
}

func TestRootCmd_BootstrapErrorAborts(t *testing.T) {
	app := testApp(t)
	app.Bootstrap = func(*App, BootstrapOptions) error { return errors.New("bad config") }

	_, err := executeCmd(t, app, "levels")
	assert.EqualError(t, err, "bad config")
}
