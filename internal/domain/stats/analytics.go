package stats

import "sort"

// ComputeRatios derives per-match ratios from the round-level output. A
// participant with zero matches gets a divisor of 1 so every ratio is 0,
// never NaN.
func ComputeRatios(lines []RoundLine) Ratios {
	var sum Totals
	for _, line := range lines {
		sum = sum.Add(line.Totals)
	}

	divisor := float64(sum.Matches)
	if sum.Matches == 0 {
		divisor = 1
	}
	return Ratios{
		GoalsPerMatch:   float64(sum.Goals) / divisor,
		AssistsPerMatch: float64(sum.Assists) / divisor,
		InvolvementPct:  float64(sum.Goals+sum.Assists) / divisor * 100,
		WinRatePct:      float64(sum.Wins) / divisor * 100,
	}
}

// FindExtremes locates the best and worst round and calendar month by points
// total. Selection uses a stable descending sort: the first element wins for
// best, the last for worst, so ties resolve by natural order. Returns nil
// when there is no round-level history at all.
func FindExtremes(lines []RoundLine) *Extremes {
	if len(lines) == 0 {
		return nil
	}

	byPoints := make([]RoundLine, len(lines))
	copy(byPoints, lines)
	sort.SliceStable(byPoints, func(i, j int) bool {
		return byPoints[i].Totals.TotalPoints > byPoints[j].Totals.TotalPoints
	})

	months := groupByMonth(lines)
	sort.SliceStable(months, func(i, j int) bool {
		return months[i].Totals.TotalPoints > months[j].Totals.TotalPoints
	})

	return &Extremes{
		BestRound:  byPoints[0],
		WorstRound: byPoints[len(byPoints)-1],
		BestMonth:  months[0],
		WorstMonth: months[len(months)-1],
	}
}

func groupByMonth(lines []RoundLine) []MonthTotals {
	index := make(map[[2]int]int, len(lines))
	out := make([]MonthTotals, 0, len(lines))
	for _, line := range lines {
		key := [2]int{line.RoundDate.Year(), int(line.RoundDate.Month())}
		at, ok := index[key]
		if !ok {
			at = len(out)
			index[key] = at
			out = append(out, MonthTotals{
				Year:  line.RoundDate.Year(),
				Month: line.RoundDate.Month(),
			})
		}
		out[at].Totals = out[at].Totals.Add(line.Totals)
	}
	return out
}
