package domain

const (
	MinLevel = 1
	MaxLevel = 50

	// MaxCurrentXP bounds the XP earned past the current level's threshold.
	MaxCurrentXP int64 = 30_000_000
)

// ClampLevel bounds a level to [MinLevel, MaxLevel]. Zero means "not given"
// and yields fallback.
func ClampLevel(level, fallback int) int {
	if level == 0 {
		level = fallback
	}
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// ClampCurrentXP bounds relative XP to [0, MaxCurrentXP].
func ClampCurrentXP(xp int64) int64 {
	if xp < 0 {
		return 0
	}
	if xp > MaxCurrentXP {
		return MaxCurrentXP
	}
	return xp
}

func clampCount(def ActivityDef, v int64) int64 {
	if v < 0 {
		return 0
	}
	if v > def.Cap {
		return def.Cap
	}
	return v
}

// Normalize returns a copy of counts with unknown keys dropped, every count
// bounded to [0, cap], sub-counts clamped to their parent, and sub-counts of
// a zero parent removed. Zero counts are omitted from the result.
func Normalize(counts ActivityCounts) ActivityCounts {
	out := make(ActivityCounts, len(counts))
	for k, v := range counts {
		def, ok := Lookup(k)
		if !ok {
			continue
		}
		if v = clampCount(def, v); v > 0 {
			out[k] = v
		}
	}
	for _, def := range Catalog {
		if def.Parent == "" {
			continue
		}
		v, ok := out[def.Key]
		if !ok {
			continue
		}
		parent := out[def.Parent]
		switch {
		case parent == 0:
			delete(out, def.Key)
		case v > parent:
			out[def.Key] = parent
		}
	}
	return out
}

// ApplyEdit sets a single field the way an input form does and returns the
// new counts. Lowering a parent pulls every dependent above it down to the
// new value; a parent of zero clears its dependents; a dependent can never
// exceed its parent. Unknown activities leave counts unchanged.
func ApplyEdit(counts ActivityCounts, a Activity, v int64) ActivityCounts {
	out := counts.Clone()
	def, ok := Lookup(a)
	if !ok {
		return out
	}
	v = clampCount(def, v)

	if def.Parent != "" {
		if parent := out.Get(def.Parent); v > parent {
			v = parent
		}
	}

	for _, dep := range Dependents(a) {
		if v == 0 {
			delete(out, dep)
			continue
		}
		if out.Get(dep) > v {
			out[dep] = v
		}
	}

	if v == 0 {
		delete(out, a)
	} else {
		out[a] = v
	}
	return out
}
