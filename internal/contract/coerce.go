package contract

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/xpcalc/internal/domain"
)

// DateLayout is the accepted target date format.
const DateLayout = "2006-01-02"

// CoerceCount reads an integer the way a lenient numeric text field does:
// leading whitespace and an optional sign, then as many digits as follow.
// Anything unparsable is 0, so "12abc" is 12 and "abc" is 0. Values that
// overflow saturate.
func CoerceCount(s string) int64 {
	s = strings.TrimLeft(s, " \t\r\n")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		n = math.MaxInt64
	}
	if neg {
		return -n
	}
	return n
}

// CoerceLevel is CoerceCount narrowed to a level. Out-of-range results are
// left for domain.ClampLevel.
func CoerceLevel(s string) int {
	n := CoerceCount(s)
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	}
	return int(n)
}

// CountsFromStrings coerces a map of raw field text keyed by activity name.
// Keys are kept as given; normalization drops unknown ones.
func CountsFromStrings(raw map[string]string) domain.ActivityCounts {
	out := make(domain.ActivityCounts, len(raw))
	for k, v := range raw {
		out[domain.Activity(strings.TrimSpace(k))] = CoerceCount(v)
	}
	return out
}

// ParseTargetDate parses a YYYY-MM-DD date at midnight in loc.
func ParseTargetDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, NewCalcError(ErrCodeInvalidTargetDate,
			"target date must be YYYY-MM-DD, got "+strconv.Quote(s))
	}
	return t, nil
}

// DefaultTargetDate is 31 December of now's year.
func DefaultTargetDate(now time.Time) time.Time {
	return time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
}
