package stats

import "time"

// DeltaSince folds every row dated strictly after since into one Totals.
// The boundary is strict: a round dated exactly at the snapshot timestamp is
// assumed already included in the snapshot and must not be counted again.
func DeltaSince(set EventSet, since time.Time) Totals {
	var out Totals
	for _, row := range set.Participation {
		if !row.RoundDate.After(since) {
			continue
		}
		out = out.Add(row.Totals())
	}
	for _, goal := range set.Goals {
		if goal.RoundDate.After(since) {
			out.Goals++
		}
	}
	for _, assist := range set.Assists {
		if assist.RoundDate.After(since) {
			out.Assists++
		}
	}
	for _, penalty := range set.Penalties {
		if penalty.RoundDate.After(since) {
			out.Penalties += absPoints(penalty.Points)
		}
	}
	return out
}

func absPoints(points int) int {
	if points < 0 {
		return -points
	}
	return points
}
