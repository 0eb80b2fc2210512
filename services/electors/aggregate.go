package electors

import (
	"context"
	"log/slog"
)

// the earliest year the publisher has elector counts for
const earliestYear = 2009

// offsets tried when a year's own file has no usable rows, nearest
// neighbors first. Some years were only published bundled into an
// adjacent year's multi-year file.
var fallbackOffsets = [4]int{-1, 1, -2, 2}

// aggregateRange walks the requested range one year at a time,
// accumulating a year-to-count dataset. Any fetch error aborts the
// whole aggregation, partial data is never returned.
func aggregateRange(ctx context.Context, source Source, startYear, endYear int) (map[int]int, error) {
	if startYear < earliestYear {
		return nil, ErrStartYearTooEarly
	}
	if startYear > endYear {
		return nil, ErrStartAfterEnd
	}

	dataset := map[int]int{}
	for year := startYear; year <= endYear; year++ {
		counts, err := source.FetchYear(ctx, year)
		if err != nil {
			return nil, err
		}

		if len(counts) > 0 {
			// years already present from an earlier iteration came
			// from a more specific source and are kept
			for y, c := range counts {
				if _, seen := dataset[y]; !seen {
					dataset[y] = c
				}
			}
			continue
		}

		slog.DebugContext(ctx, "year resource empty, searching neighbors", "year", year)
		for _, offset := range fallbackOffsets {
			candidate := year + offset
			if candidate < earliestYear || candidate > endYear {
				continue
			}
			counts, err := source.FetchYear(ctx, candidate)
			if err != nil {
				return nil, err
			}
			if c, ok := counts[year]; ok {
				dataset[year] = c
				break
			}
		}
	}

	return dataset, nil
}
