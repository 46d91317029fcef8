package stats

import (
	"testing"
	"time"
)

func TestNormalizeYears_SortedDescendingAndDeduped(t *testing.T) {
	t.Parallel()

	now := date(2025, time.August, 30)
	got := NormalizeYears([]int{2023, 2025, 2023, 2024}, now)

	want := []int{2025, 2024, 2023}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestNormalizeYears_EmptyHistoryDefaultsToCurrentYear(t *testing.T) {
	t.Parallel()

	got := NormalizeYears(nil, date(2025, time.August, 30))
	if len(got) != 1 || got[0] != 2025 {
		t.Fatalf("got %v, want [2025]", got)
	}
}

func TestYearsOf(t *testing.T) {
	t.Parallel()

	rows := []ParticipationRow{
		{RoundDate: date(2022, time.December, 3)},
		{RoundDate: date(2024, time.January, 6)},
	}
	got := YearsOf(rows)
	if len(got) != 2 || got[0] != 2022 || got[1] != 2024 {
		t.Fatalf("got %v", got)
	}
}
