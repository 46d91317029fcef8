package stats

import (
	"sort"
	"time"
)

// NormalizeYears dedupes and sorts the years a participant appeared in,
// newest first. A participant with no history yields the current year so a
// caller always has a valid default filter value.
func NormalizeYears(years []int, now time.Time) []int {
	seen := make(map[int]struct{}, len(years))
	out := make([]int, 0, len(years))
	for _, year := range years {
		if year <= 0 {
			continue
		}
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		out = append(out, year)
	}
	if len(out) == 0 {
		return []int{now.Year()}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// YearsOf extracts the calendar years from unfiltered participation history.
func YearsOf(rows []ParticipationRow) []int {
	out := make([]int, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.RoundDate.Year())
	}
	return out
}
