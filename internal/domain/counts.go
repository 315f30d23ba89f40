package domain

// ActivityCounts maps activities to occurrence counts. A missing key is a
// count of zero. Values are never mutated in place; transforms return copies.
type ActivityCounts map[Activity]int64

// Get returns the count for a, treating absent and negative values as zero.
func (c ActivityCounts) Get(a Activity) int64 {
	v := c[a]
	if v < 0 {
		return 0
	}
	return v
}

// Clone returns an independent copy. Cloning nil yields an empty map.
func (c ActivityCounts) Clone() ActivityCounts {
	out := make(ActivityCounts, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// With returns a copy of c with a set to v.
func (c ActivityCounts) With(a Activity, v int64) ActivityCounts {
	out := c.Clone()
	out[a] = v
	return out
}

// InCategory returns the subset of c whose activities belong to cat.
func (c ActivityCounts) InCategory(cat Category) ActivityCounts {
	out := make(ActivityCounts)
	for k, v := range c {
		if k.Category() == cat {
			out[k] = v
		}
	}
	return out
}
