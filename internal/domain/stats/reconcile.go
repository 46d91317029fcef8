package stats

import "time"

// SelectMode decides the totals strategy once per request. Hybrid applies
// only when a snapshot exists, no month filter is active, and the requested
// year is either unset or the current year: the snapshot is an
// all-time/current-year rolling total with no per-month or per-past-year
// breakdown, so any narrower scope falls back to full recomputation.
func SelectMode(hasSnapshot bool, filter Filter, now time.Time) Mode {
	if !hasSnapshot {
		return ModeStandard
	}
	if filter.Month != 0 {
		return ModeStandard
	}
	if filter.Year != 0 && filter.Year != now.Year() {
		return ModeStandard
	}
	return ModeHybrid
}

// Reconcile combines the snapshot and the fetched set into headline totals.
// Hybrid adds the post-snapshot delta over the entire fetched set to the
// snapshot; standard folds the (month-filtered) fetched set and ignores the
// snapshot completely.
func Reconcile(mode Mode, snap Snapshot, set EventSet, filter Filter) Totals {
	if mode == ModeHybrid {
		return snap.Totals.Add(DeltaSince(set, snap.UpdatedAt))
	}
	return FoldTotals(scopeSet(set, filter))
}

// FoldTotals is the standard-mode fold: participation rows summed directly,
// goals and assists counted from their event rows, penalty magnitudes summed
// as absolute values.
func FoldTotals(set EventSet) Totals {
	var out Totals
	for _, row := range set.Participation {
		out = out.Add(row.Totals())
	}
	out.Goals = len(set.Goals)
	out.Assists = len(set.Assists)
	for _, penalty := range set.Penalties {
		out.Penalties += absPoints(penalty.Points)
	}
	return out
}

// scopeSet applies the month filter as a row filter on round date. The year
// is already bounded at fetch time, so only the month narrows anything here.
func scopeSet(set EventSet, filter Filter) EventSet {
	if filter.Month == 0 {
		return set
	}

	out := EventSet{}
	for _, row := range set.Participation {
		if row.RoundDate.Month() == filter.Month {
			out.Participation = append(out.Participation, row)
		}
	}
	for _, goal := range set.Goals {
		if goal.RoundDate.Month() == filter.Month {
			out.Goals = append(out.Goals, goal)
		}
	}
	for _, assist := range set.Assists {
		if assist.RoundDate.Month() == filter.Month {
			out.Assists = append(out.Assists, assist)
		}
	}
	for _, penalty := range set.Penalties {
		if penalty.RoundDate.Month() == filter.Month {
			out.Penalties = append(out.Penalties, penalty)
		}
	}
	return out
}
