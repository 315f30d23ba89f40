package formatter

import (
	"strings"

	"github.com/alexanderramin/xpcalc/internal/engine"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatXP renders an XP amount with thousands separators, e.g. "12,840 XP".
func FormatXP(xp int64) string {
	return humanize.Comma(xp) + " XP"
}

// FormatCount renders a plain count with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// FormatDays renders a day count; the unbounded sentinel renders as "∞".
func FormatDays(d engine.Days) string {
	if d.Infinite {
		return "∞"
	}
	if d.Value == 1 {
		return "1 day"
	}
	return humanize.Comma(d.Value) + " days"
}

// LuckyEggBadge returns a styled booster indicator.
func LuckyEggBadge(on bool) string {
	if on {
		return StylePurple.Render("Lucky Egg ×2")
	}
	return Dim("no booster")
}
