package stats

import (
	"testing"
	"time"
)

func TestBuildRoundLines_MapsEventsByRoundDate(t *testing.T) {
	t.Parallel()

	set := EventSet{
		Participation: []ParticipationRow{
			{RoundID: "r2", RoundNumber: 2, RoundDate: date(2024, time.March, 9), Presence: 1, Wins: 1, TotalPoints: 6},
			{RoundID: "r1", RoundNumber: 1, RoundDate: date(2024, time.March, 2), Presence: 1, Losses: 2, TotalPoints: 1},
		},
		Goals: []GoalEvent{
			{RoundID: "r1", RoundDate: date(2024, time.March, 2)},
			{RoundID: "r1", RoundDate: date(2024, time.March, 2)},
			{RoundID: "r2", RoundDate: date(2024, time.March, 9)},
		},
		Assists: []AssistEvent{
			{RoundID: "r2", RoundDate: date(2024, time.March, 9)},
		},
		Penalties: []PenaltyRow{
			{RoundID: "r1", RoundDate: date(2024, time.March, 2), Points: -2},
		},
	}

	lines := BuildRoundLines(set)

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].RoundID != "r1" || lines[1].RoundID != "r2" {
		t.Fatalf("lines not ascending by round number: %+v", lines)
	}
	if lines[0].Totals.Goals != 2 || lines[0].Totals.Penalties != 2 {
		t.Fatalf("round 1 events misattributed: %+v", lines[0].Totals)
	}
	if lines[1].Totals.Goals != 1 || lines[1].Totals.Assists != 1 {
		t.Fatalf("round 2 events misattributed: %+v", lines[1].Totals)
	}
	if lines[0].Totals.Matches != 2 || lines[1].Totals.Matches != 1 {
		t.Fatalf("per-round matches wrong: %+v", lines)
	}
}

func TestBuildRoundLines_GoalSumEqualsFetchedGoalCount(t *testing.T) {
	t.Parallel()

	set := EventSet{
		Participation: []ParticipationRow{
			{RoundID: "r1", RoundNumber: 1, RoundDate: date(2025, time.January, 5), Presence: 1},
			{RoundID: "r2", RoundNumber: 2, RoundDate: date(2025, time.January, 12), Presence: 1},
		},
		Goals: []GoalEvent{
			{RoundID: "r1", RoundDate: date(2025, time.January, 5)},
			{RoundID: "r2", RoundDate: date(2025, time.January, 12)},
			{RoundID: "r2", RoundDate: date(2025, time.January, 12)},
		},
	}

	sum := 0
	for _, line := range BuildRoundLines(set) {
		sum += line.Totals.Goals
	}
	if sum != len(set.Goals) {
		t.Fatalf("round-level goal sum = %d, want %d", sum, len(set.Goals))
	}
}

func TestBuildRoundLines_EmptyParticipation(t *testing.T) {
	t.Parallel()

	lines := BuildRoundLines(EventSet{Goals: []GoalEvent{{RoundDate: date(2025, time.May, 1)}}})
	if len(lines) != 0 {
		t.Fatalf("expected no lines without participation rows, got %d", len(lines))
	}
}
