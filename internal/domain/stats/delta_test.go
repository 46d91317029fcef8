package stats

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestDeltaSince_CountsOnlyRowsStrictlyAfter(t *testing.T) {
	t.Parallel()

	since := date(2024, time.June, 1)
	set := EventSet{
		Participation: []ParticipationRow{
			{RoundID: "r1", RoundDate: date(2024, time.May, 20), Presence: 1, Wins: 2, TotalPoints: 9},
			{RoundID: "r2", RoundDate: date(2024, time.June, 15), Presence: 1, Wins: 1, Draws: 1, Losses: 1, TotalPoints: 10},
		},
		Goals: []GoalEvent{
			{RoundID: "r1", RoundDate: date(2024, time.May, 20)},
			{RoundID: "r2", RoundDate: date(2024, time.June, 15)},
			{RoundID: "r2", RoundDate: date(2024, time.June, 15)},
		},
		Assists: []AssistEvent{
			{RoundID: "r2", RoundDate: date(2024, time.June, 15)},
		},
		Penalties: []PenaltyRow{
			{RoundID: "r1", RoundDate: date(2024, time.May, 20), Points: -2},
			{RoundID: "r2", RoundDate: date(2024, time.June, 15), Points: -3},
		},
	}

	got := DeltaSince(set, since)

	if got.Presences != 1 || got.Wins != 1 || got.Draws != 1 || got.Losses != 1 {
		t.Fatalf("unexpected round fold: %+v", got)
	}
	if got.Matches != 3 {
		t.Fatalf("matches = %d, want 3", got.Matches)
	}
	if got.Goals != 2 || got.Assists != 1 {
		t.Fatalf("goals=%d assists=%d, want 2/1", got.Goals, got.Assists)
	}
	if got.Penalties != 3 {
		t.Fatalf("penalties = %d, want abs(-3)=3", got.Penalties)
	}
	if got.TotalPoints != 10 {
		t.Fatalf("total points = %d, want 10", got.TotalPoints)
	}
}

func TestDeltaSince_RoundDatedExactlyAtBoundaryIsExcluded(t *testing.T) {
	t.Parallel()

	boundary := date(2024, time.June, 1)
	set := EventSet{
		Participation: []ParticipationRow{
			{RoundID: "r1", RoundDate: boundary, Presence: 1, TotalPoints: 7},
		},
		Goals:     []GoalEvent{{RoundID: "r1", RoundDate: boundary}},
		Assists:   []AssistEvent{{RoundID: "r1", RoundDate: boundary}},
		Penalties: []PenaltyRow{{RoundID: "r1", RoundDate: boundary, Points: -1}},
	}

	if got := DeltaSince(set, boundary); got != (Totals{}) {
		t.Fatalf("boundary row leaked into delta: %+v", got)
	}
}

func TestDeltaSince_EmptySetIsZero(t *testing.T) {
	t.Parallel()

	if got := DeltaSince(EventSet{}, date(2024, time.January, 1)); got != (Totals{}) {
		t.Fatalf("expected zero totals, got %+v", got)
	}
}

func TestDeltaSince_PenaltyMagnitudeIsAbsolute(t *testing.T) {
	t.Parallel()

	set := EventSet{
		Penalties: []PenaltyRow{
			{RoundDate: date(2025, time.March, 2), Points: -5},
			{RoundDate: date(2025, time.March, 9), Points: 4},
		},
	}

	got := DeltaSince(set, date(2025, time.January, 1))
	if got.Penalties != 9 {
		t.Fatalf("penalties = %d, want 9", got.Penalties)
	}
}
