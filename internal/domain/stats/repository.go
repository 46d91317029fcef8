package stats

import "context"

// SnapshotRepository reads the single cached aggregate per participant.
// A missing snapshot is (Snapshot{}, false, nil), not an error.
type SnapshotRepository interface {
	GetByParticipant(ctx context.Context, participantID string) (Snapshot, bool, error)
}

// EventRepository fetches the full matching history for a scope. Year 0
// means all-time. Implementations never bound queries by the snapshot
// timestamp; month scoping is applied in memory after the fetch.
type EventRepository interface {
	ListParticipation(ctx context.Context, participantID string, year int) ([]ParticipationRow, error)
	ListGoals(ctx context.Context, participantID string, year int) ([]GoalEvent, error)
	ListAssists(ctx context.Context, participantID string, year int) ([]AssistEvent, error)
	ListPenalties(ctx context.Context, participantID string, year int) ([]PenaltyRow, error)
	ListYears(ctx context.Context, participantID string) ([]int, error)
}
