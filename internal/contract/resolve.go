package contract

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/sahilm/fuzzy"
)

// activityNames adapts the catalog for fuzzy matching.
type activityNames []domain.ActivityDef

func (a activityNames) String(i int) string { return string(a[i].Key) }
func (a activityNames) Len() int            { return len(a) }

type categoryNames []domain.Category

func (c categoryNames) String(i int) string { return string(c[i]) }
func (c categoryNames) Len() int            { return len(c) }

// normalizeName folds user spellings ("Curve-Balls", "curve balls") onto
// catalog keys.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}

// ResolveActivity maps a user-supplied name to a catalog activity. Unknown
// names yield an UNKNOWN_ACTIVITY error carrying the closest suggestion.
func ResolveActivity(name string) (domain.Activity, error) {
	key := domain.Activity(normalizeName(name))
	if key.Valid() {
		return key, nil
	}
	msg := fmt.Sprintf("%q is not a known activity", name)
	if s := SuggestActivity(name); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	return "", NewCalcError(ErrCodeUnknownActivity, msg)
}

// SuggestActivity returns the best fuzzy match for name, or "".
func SuggestActivity(name string) string {
	q := normalizeName(name)
	if q == "" {
		return ""
	}
	matches := fuzzy.FindFrom(q, activityNames(domain.Catalog))
	if len(matches) == 0 {
		return ""
	}
	return string(domain.Catalog[matches[0].Index].Key)
}

func ResolveCategory(name string) (domain.Category, error) {
	cat := domain.Category(normalizeName(name))
	if cat.Valid() {
		return cat, nil
	}
	msg := fmt.Sprintf("%q is not a known category", name)
	if matches := fuzzy.FindFrom(normalizeName(name), categoryNames(domain.Categories)); len(matches) > 0 && name != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", domain.Categories[matches[0].Index])
	}
	return "", NewCalcError(ErrCodeUnknownCategory, msg)
}

// ResolveCounts resolves every key of raw. The first unknown name aborts with
// its error; names are checked in sorted order so the failure is stable.
func ResolveCounts(raw map[string]int64) (domain.ActivityCounts, error) {
	out := make(domain.ActivityCounts, len(raw))
	for _, name := range slices.Sorted(maps.Keys(raw)) {
		a, err := ResolveActivity(name)
		if err != nil {
			return nil, err
		}
		out[a] = saturatingAdd(out[a], raw[name])
	}
	return out, nil
}

func saturatingAdd(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}
