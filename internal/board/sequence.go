package board

import (
	"sort"

	"golang.org/x/text/collate"
)

// Sequence returns group keys in column order.
//
// Priority groups follow the fixed display rank (No priority, Urgent, High, Medium, Low);
// labels without a rank go last in discovery order. Status and user groups keep discovery
// order unless the engine was configured with FallbackAlphabetical.
func (e Engine) Sequence(keys []string, grouping Grouping) []string {
	out := make([]string, len(keys))
	copy(out, keys)

	switch {
	case grouping == GroupByPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return rankOrLast(out[i]) < rankOrLast(out[j])
		})
	case e.opts.Fallback == FallbackAlphabetical:
		c := collate.New(e.opts.Locale)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i], out[j]) < 0
		})
	}
	return out
}

func rankOrLast(label string) int {
	if r, ok := DisplayRank(label); ok {
		return r
	}
	return len(displayOrder)
}
