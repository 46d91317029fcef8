package memory

import (
	"time"

	"github.com/peladahub/league-stats/internal/domain/participant"
	"github.com/peladahub/league-stats/internal/domain/stats"
)

func SeedParticipants() []participant.Participant {
	return []participant.Participant{
		{ID: "p-edson", Name: "Edson Arantes", Nickname: "Didico"},
		{ID: "p-manoel", Name: "Manoel Francisco", Nickname: "Mané"},
		{ID: "p-arthur", Name: "Arthur Antunes", Nickname: "Galinho"},
		{ID: "p-romario", Name: "Romário Faria", Nickname: "Baixinho"},
	}
}

// SeedStats loads a small two-season history: Didico carries a snapshot plus
// post-snapshot rounds so hybrid mode is reachable out of the box, Mané has
// history but no snapshot, Baixinho is a brand-new participant.
func SeedStats() *StatsRepository {
	repo := NewStatsRepository()
	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}

	repo.PutSnapshot("p-edson", stats.Snapshot{
		Totals: stats.Totals{
			Presences: 38, Goals: 41, Assists: 17,
			Wins: 52, Draws: 21, Losses: 29,
			YellowCards: 3, BlueCards: 1,
			Penalties: 4, TotalPoints: 214, Matches: 102,
		},
		UpdatedAt: day(2025, time.June, 1),
	})
	repo.PutHistory("p-edson",
		[]stats.ParticipationRow{
			{RoundID: "r-2024-18", RoundNumber: 18, RoundDate: day(2024, time.September, 7), Presence: 1, Wins: 2, Draws: 1, Losses: 0, TotalPoints: 9},
			{RoundID: "r-2025-09", RoundNumber: 9, RoundDate: day(2025, time.May, 24), Presence: 1, Wins: 1, Draws: 0, Losses: 2, YellowCards: 1, TotalPoints: 4},
			{RoundID: "r-2025-10", RoundNumber: 10, RoundDate: day(2025, time.June, 14), Presence: 1, Wins: 2, Draws: 0, Losses: 1, TotalPoints: 8},
			{RoundID: "r-2025-11", RoundNumber: 11, RoundDate: day(2025, time.June, 21), Presence: 1, Wins: 3, Draws: 0, Losses: 0, TotalPoints: 12},
		},
		[]stats.GoalEvent{
			{RoundID: "r-2024-18", RoundDate: day(2024, time.September, 7)},
			{RoundID: "r-2025-10", RoundDate: day(2025, time.June, 14)},
			{RoundID: "r-2025-11", RoundDate: day(2025, time.June, 21)},
			{RoundID: "r-2025-11", RoundDate: day(2025, time.June, 21)},
		},
		[]stats.AssistEvent{
			{RoundID: "r-2025-10", RoundDate: day(2025, time.June, 14)},
		},
		[]stats.PenaltyRow{
			{RoundID: "r-2025-09", RoundDate: day(2025, time.May, 24), Points: -2},
		},
	)

	repo.PutHistory("p-manoel",
		[]stats.ParticipationRow{
			{RoundID: "r-2025-09", RoundNumber: 9, RoundDate: day(2025, time.May, 24), Presence: 1, Wins: 2, Draws: 1, Losses: 0, TotalPoints: 10},
			{RoundID: "r-2025-10", RoundNumber: 10, RoundDate: day(2025, time.June, 14), Presence: 1, Wins: 0, Draws: 1, Losses: 2, TotalPoints: 2},
		},
		[]stats.GoalEvent{
			{RoundID: "r-2025-09", RoundDate: day(2025, time.May, 24)},
		},
		nil,
		nil,
	)

	repo.PutHistory("p-arthur",
		[]stats.ParticipationRow{
			{RoundID: "r-2023-02", RoundNumber: 2, RoundDate: day(2023, time.February, 11), Presence: 1, Wins: 1, Draws: 1, Losses: 1, BlueCards: 1, TotalPoints: 5},
		},
		nil,
		[]stats.AssistEvent{
			{RoundID: "r-2023-02", RoundDate: day(2023, time.February, 11)},
		},
		nil,
	)

	return repo
}
