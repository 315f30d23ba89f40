package engine

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/xpcalc/internal/domain"
)

// Days is a day count that may be unbounded.
type Days struct {
	Value    int64
	Infinite bool
}

// InfiniteDays is the pace result when nothing is earned per day.
var InfiniteDays = Days{Infinite: true}

func (d Days) String() string {
	if d.Infinite {
		return "infinite"
	}
	return strconv.FormatInt(d.Value, 10)
}

// MarshalJSON encodes infinite as the string "infinite" and finite counts as numbers.
func (d Days) MarshalJSON() ([]byte, error) {
	if d.Infinite {
		return []byte(`"infinite"`), nil
	}
	return []byte(strconv.FormatInt(d.Value, 10)), nil
}

func (d *Days) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "infinite" {
			return fmt.Errorf("invalid day count %q", s)
		}
		*d = InfiniteDays
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decoding day count: %w", err)
	}
	*d = Days{Value: n}
	return nil
}

// ProjectPace returns how many days the current daily XP takes to cover the
// remaining XP, rounded up.
func ProjectPace(progress ProgressResult, dailyXP int64) Days {
	if progress.TargetReached {
		return Days{}
	}
	if dailyXP <= 0 {
		return InfiniteDays
	}
	return Days{Value: ceilDiv(progress.XPRemaining, dailyXP)}
}

type DeadlineInput struct {
	Enabled    bool
	Mode       domain.TargetMode
	TargetDate *time.Time
	Days       int64
	Today      time.Time
}

type Requirement struct {
	DaysNeeded    int64 `json:"days_needed"`
	DailyXPNeeded int64 `json:"daily_xp_needed"`
}

// RequiredDaily back-solves the daily XP needed to meet a deadline. A
// disabled timeline, a reached target, a missing date or a deadline that is
// today or already past all yield the zero Requirement.
func RequiredDaily(in DeadlineInput, progress ProgressResult) Requirement {
	if !in.Enabled || progress.TargetReached {
		return Requirement{}
	}

	var days int64
	switch in.Mode {
	case domain.TargetByDays:
		days = in.Days
	default:
		if in.TargetDate == nil {
			return Requirement{}
		}
		days = CalendarDaysUntil(in.Today, *in.TargetDate)
	}

	if days <= 0 {
		return Requirement{}
	}
	return Requirement{
		DaysNeeded:    days,
		DailyXPNeeded: ceilDiv(progress.XPRemaining, days),
	}
}

// CalendarDaysUntil counts calendar days from today to target. Both times
// are reduced to their date in today's location before subtracting.
func CalendarDaysUntil(today, target time.Time) int64 {
	loc := today.Location()
	y1, m1, d1 := today.Date()
	y2, m2, d2 := target.In(loc).Date()
	from := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	to := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int64(to.Sub(from).Hours() / 24)
}

// ceilDiv rounds a/b up for non-negative a and positive b.
func ceilDiv(a, b int64) int64 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
