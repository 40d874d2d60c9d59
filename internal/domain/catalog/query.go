package catalog

import (
	"sort"

	"savesphere/internal/domain/deal"
)

// Options combine the filter gates with an ordering.
type Options struct {
	Filters
	Sort   SortKey
	Origin *deal.Coordinates // required for meaningful distance sorting
}

// Query applies the filters to every deal, then stable-sorts the
// survivors. The input slice is never mutated; the result is always a
// fresh slice.
func Query(deals []*deal.Deal, opts Options) []*deal.Deal {
	out := make([]*deal.Deal, 0, len(deals))
	for _, d := range deals {
		if Matches(d, opts.Filters) {
			out = append(out, d)
		}
	}

	key := opts.Sort
	if key == "" {
		key = SortNewest
	}
	sort.SliceStable(out, func(i, j int) bool {
		return Compare(out[i], out[j], key, opts.Origin) < 0
	})
	return out
}
