package cli

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/alexanderramin/xpcalc/internal/contract"
	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/spf13/pflag"
)

// parseAssignment resolves a "name=value" pair. The name is matched against
// the activity catalog; the value is read leniently like a numeric field.
func parseAssignment(s string) (domain.Activity, int64, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, contract.NewCalcError(contract.ErrCodeInvalidArgument,
			fmt.Sprintf("expected name=value, got %q", s))
	}
	a, err := contract.ResolveActivity(name)
	if err != nil {
		return "", 0, err
	}
	return a, contract.CoerceCount(value), nil
}

// countsFlag collects repeatable --count name=value flags. A single flag
// value may hold several comma-separated pairs.
type countsFlag struct {
	counts domain.ActivityCounts
}

var _ pflag.Value = (*countsFlag)(nil)

func newCountsFlag() *countsFlag {
	return &countsFlag{counts: domain.ActivityCounts{}}
}

func (f *countsFlag) Set(s string) error {
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		a, v, err := parseAssignment(pair)
		if err != nil {
			return err
		}
		f.counts[a] = v
	}
	return nil
}

func (f *countsFlag) String() string {
	if f == nil || len(f.counts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(f.counts))
	for _, a := range slices.Sorted(maps.Keys(f.counts)) {
		parts = append(parts, fmt.Sprintf("%s=%d", a, f.counts[a]))
	}
	return strings.Join(parts, ",")
}

func (f *countsFlag) Type() string { return "name=value" }

// parseAssignments resolves positional "name=value" arguments.
func parseAssignments(args []string) (domain.ActivityCounts, error) {
	f := newCountsFlag()
	for _, arg := range args {
		if err := f.Set(arg); err != nil {
			return nil, err
		}
	}
	return f.counts, nil
}
