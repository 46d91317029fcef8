package stats

import (
	"sort"
	"time"
)

// BuildRoundLines produces one ground-truth record per round in the fetched
// participation set, ascending by round number. Goal, assist and penalty
// events are mapped onto rounds by matching round date. This path never uses
// the snapshot, whatever mode the headline totals took, so charts stay
// reproducible from raw data.
func BuildRoundLines(set EventSet) []RoundLine {
	goalsByDay := make(map[string]int, len(set.Goals))
	for _, goal := range set.Goals {
		goalsByDay[dayKey(goal.RoundDate)]++
	}
	assistsByDay := make(map[string]int, len(set.Assists))
	for _, assist := range set.Assists {
		assistsByDay[dayKey(assist.RoundDate)]++
	}
	penaltiesByDay := make(map[string]int, len(set.Penalties))
	for _, penalty := range set.Penalties {
		penaltiesByDay[dayKey(penalty.RoundDate)] += absPoints(penalty.Points)
	}

	lines := make([]RoundLine, 0, len(set.Participation))
	for _, row := range set.Participation {
		totals := row.Totals()
		day := dayKey(row.RoundDate)
		totals.Goals = goalsByDay[day]
		totals.Assists = assistsByDay[day]
		totals.Penalties = penaltiesByDay[day]
		lines = append(lines, RoundLine{
			RoundID:     row.RoundID,
			RoundNumber: row.RoundNumber,
			RoundDate:   row.RoundDate,
			Totals:      totals,
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].RoundNumber < lines[j].RoundNumber
	})
	return lines
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
