package service

import (
	"fmt"
	"slices"

	"github.com/alexanderramin/xpcalc/internal/contract"
	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/alexanderramin/xpcalc/internal/engine"
)

// normalizationWarnings explains each difference between the raw counts and
// their normalized form. Output order is stable: unknown keys first (sorted),
// then catalog order.
func normalizationWarnings(raw, normalized domain.ActivityCounts) []string {
	var warnings []string

	var unknown []string
	for k := range raw {
		if !k.Valid() {
			unknown = append(unknown, string(k))
		}
	}
	slices.Sort(unknown)
	for _, k := range unknown {
		warnings = append(warnings, fmt.Sprintf("ignored unknown activity %q", k))
	}

	for _, def := range domain.Catalog {
		r, ok := raw[def.Key]
		if !ok {
			continue
		}
		switch {
		case r < 0:
			warnings = append(warnings, fmt.Sprintf("%s was negative and counted as 0", def.Key))
		case r > def.Cap:
			warnings = append(warnings, fmt.Sprintf("%s capped at %d", def.Key, def.Cap))
		case def.Parent != "" && normalized.Get(def.Key) < r:
			if parent := normalized.Get(def.Parent); parent == 0 {
				warnings = append(warnings, fmt.Sprintf("%s cleared because %s is 0", def.Key, def.Parent))
			} else {
				warnings = append(warnings, fmt.Sprintf("%s clamped to %s (%d)", def.Key, def.Parent, parent))
			}
		}
	}
	return warnings
}

func categoryLines(xp engine.CategoryXPResult) []contract.CategoryLine {
	lines := make([]contract.CategoryLine, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		lines = append(lines, contract.CategoryLine{
			Category: cat,
			Label:    cat.Label(),
			XP:       xp.Of(cat),
			Daily:    cat.IsDaily(),
		})
	}
	return lines
}
