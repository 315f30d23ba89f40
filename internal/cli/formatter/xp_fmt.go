package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/xpcalc/internal/contract"
	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/alexanderramin/xpcalc/internal/engine"
)

const levelProgressBarWidth = 20

func kv(label, value string) string {
	return fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-16s", label)), value)
}

// FormatCalculation formats a CalculateResponse into a styled result panel.
func FormatCalculation(resp *contract.CalculateResponse) string {
	var b strings.Builder

	headers := []string{"CATEGORY", "XP"}
	rows := make([][]string, 0, len(resp.Categories))
	for _, line := range resp.Categories {
		label := CategoryColor(line.Category).Render(line.Label)
		if !line.Daily {
			label += Dim(" (one-time)")
		}
		rows = append(rows, []string{label, FormatXP(line.XP)})
	}
	b.WriteString(RenderTable(headers, rows, AlignLeft, AlignRight))
	b.WriteString("\n")

	b.WriteString(kv("Booster", LuckyEggBadge(resp.LuckyEgg)))
	b.WriteString(kv("Daily XP", Bold(FormatXP(resp.XP.DailyXP))))
	b.WriteString(kv("Session XP", Bold(FormatXP(resp.XP.Total))))
	b.WriteString("\n")

	p := resp.Progress
	b.WriteString(kv("Level", fmt.Sprintf("%d → %s (target %d)",
		resp.CurrentLevel, Bold(strconv.Itoa(p.ReachedLevel)), resp.TargetLevel)))
	b.WriteString(kv("Total XP", fmt.Sprintf("%s / %s",
		FormatCount(p.NewTotalXP), FormatCount(p.TargetTotalXP))))
	b.WriteString(kv("Progress", RenderProgress(
		XPProgressPct(p.CurrentTotalXP, p.NewTotalXP, p.TargetTotalXP), levelProgressBarWidth)))
	b.WriteString(kv("Remaining", FormatXP(p.XPRemaining)))
	b.WriteString(kv("Status", TargetIndicator(p.TargetReached)))

	if !p.TargetReached {
		b.WriteString("\n")
		b.WriteString(kv("At this pace", FormatDays(resp.Timeline.DaysToTarget)))
		if resp.Timeline.Enabled && resp.Timeline.DaysNeeded > 0 {
			deadline := FormatDays(engine.Days{Value: resp.Timeline.DaysNeeded})
			if resp.Timeline.Mode == domain.TargetByDate {
				deadline += Dim(" until " + resp.Timeline.TargetDate)
			}
			b.WriteString(kv("Deadline", deadline))
			b.WriteString(kv("Needed per day", Bold(FormatXP(resp.Timeline.DailyXPNeeded))))
		}
	}

	writeWarnings(&b, resp.Warnings)

	return RenderBox("XP Calculation", b.String())
}

// FormatCategory formats a single-category result as an itemised table.
func FormatCategory(resp *contract.CategoryResponse) string {
	var b strings.Builder

	if len(resp.Lines) == 0 {
		b.WriteString(Dim("No activities entered.") + "\n")
	} else {
		headers := []string{"ACTIVITY", "COUNT", "XP EACH", "XP"}
		rows := make([][]string, 0, len(resp.Lines))
		for _, line := range resp.Lines {
			rows = append(rows, []string{
				line.Label,
				FormatCount(line.Count),
				FormatCount(line.Rate),
				FormatCount(line.XP),
			})
		}
		b.WriteString(RenderTable(headers, rows, AlignLeft, AlignRight, AlignRight, AlignRight))
	}
	b.WriteString("\n")

	b.WriteString(kv("Subtotal", FormatXP(resp.BaseXP)))
	if resp.LuckyEgg {
		b.WriteString(kv("Booster", LuckyEggBadge(true)))
	}
	b.WriteString(kv("Total", Bold(FormatXP(resp.XP))))

	writeWarnings(&b, resp.Warnings)

	return RenderBox(resp.Label+" XP", b.String())
}

// FormatLevelTable renders the threshold table. highlight marks one level;
// pass 0 for none.
func FormatLevelTable(rows []contract.LevelRow, highlight int) string {
	headers := []string{"LEVEL", "TOTAL XP", "FROM PREVIOUS"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		level := strconv.Itoa(r.Level)
		if r.Level == highlight {
			level = StyleGreen.Render("▸ " + level)
		}
		from := Dim("--")
		if r.Level > domain.MinLevel {
			from = FormatCount(r.FromPrevXP)
		}
		out = append(out, []string{level, FormatCount(r.TotalXP), from})
	}
	return RenderTable(headers, out, AlignRight, AlignRight, AlignRight)
}

// FormatRateTable renders XP per activity grouped by category.
func FormatRateTable(rows []contract.RateRow) string {
	headers := []string{"CATEGORY", "ACTIVITY", "KEY", "XP", "MAX"}
	out := make([][]string, 0, len(rows))
	var last domain.Category
	for _, r := range rows {
		cat := ""
		if r.Category != last {
			cat = CategoryColor(r.Category).Render(r.Category.Label())
			last = r.Category
		}
		out = append(out, []string{cat, r.Label, Dim(string(r.Activity)), FormatCount(r.XP), FormatCount(r.Cap)})
	}
	return RenderTable(headers, out, AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight)
}

func writeWarnings(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
	}
}
