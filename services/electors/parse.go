package electors

import (
	"strconv"
	"strings"
)

// parseRow reads the first field as a calendar year and the second as
// an elector count, with thousands separators tolerated in the count.
// Anything that isn't two numeric fields reports ok=false; header rows
// fail the year conversion and fall out here without special-casing.
func parseRow(record []string) (year int, count int, ok bool) {
	if len(record) < 2 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return 0, 0, false
	}
	count, err = strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(record[1]), ",", ""))
	if err != nil {
		return 0, 0, false
	}
	return year, count, true
}

// parseRows maps year to elector count across all parsable rows.
// Unparsable rows are skipped, they are not an error. If a year appears
// twice within one resource the later row wins.
func parseRows(records [][]string) map[int]int {
	counts := map[int]int{}
	for _, record := range records {
		year, count, ok := parseRow(record)
		if !ok {
			continue
		}
		counts[year] = count
	}
	return counts
}
