package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/peladahub/league-stats/internal/domain/stats"
)

// StatsRepository keeps full per-participant histories in memory. It serves
// both the dev mode without a database and the usecase tests.
type StatsRepository struct {
	mu            sync.RWMutex
	snapshots     map[string]stats.Snapshot
	participation map[string][]stats.ParticipationRow
	goals         map[string][]stats.GoalEvent
	assists       map[string][]stats.AssistEvent
	penalties     map[string][]stats.PenaltyRow
}

func NewStatsRepository() *StatsRepository {
	return &StatsRepository{
		snapshots:     make(map[string]stats.Snapshot),
		participation: make(map[string][]stats.ParticipationRow),
		goals:         make(map[string][]stats.GoalEvent),
		assists:       make(map[string][]stats.AssistEvent),
		penalties:     make(map[string][]stats.PenaltyRow),
	}
}

func (r *StatsRepository) PutSnapshot(participantID string, snap stats.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[participantID] = snap
}

func (r *StatsRepository) PutHistory(
	participantID string,
	participation []stats.ParticipationRow,
	goals []stats.GoalEvent,
	assists []stats.AssistEvent,
	penalties []stats.PenaltyRow,
) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.participation[participantID] = participation
	r.goals[participantID] = goals
	r.assists[participantID] = assists
	r.penalties[participantID] = penalties
}

func (r *StatsRepository) GetByParticipant(_ context.Context, participantID string) (stats.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.snapshots[participantID]
	return snap, ok, nil
}

func (r *StatsRepository) ListParticipation(_ context.Context, participantID string, year int) ([]stats.ParticipationRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.ParticipationRow, 0)
	for _, row := range r.participation[participantID] {
		if year > 0 && row.RoundDate.Year() != year {
			continue
		}
		out = append(out, row)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RoundNumber < out[j].RoundNumber })
	return out, nil
}

func (r *StatsRepository) ListGoals(_ context.Context, participantID string, year int) ([]stats.GoalEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.GoalEvent, 0)
	for _, event := range r.goals[participantID] {
		if year > 0 && event.RoundDate.Year() != year {
			continue
		}
		out = append(out, event)
	}
	return out, nil
}

func (r *StatsRepository) ListAssists(_ context.Context, participantID string, year int) ([]stats.AssistEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.AssistEvent, 0)
	for _, event := range r.assists[participantID] {
		if year > 0 && event.RoundDate.Year() != year {
			continue
		}
		out = append(out, event)
	}
	return out, nil
}

func (r *StatsRepository) ListPenalties(_ context.Context, participantID string, year int) ([]stats.PenaltyRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]stats.PenaltyRow, 0)
	for _, row := range r.penalties[participantID] {
		if year > 0 && row.RoundDate.Year() != year {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *StatsRepository) ListYears(_ context.Context, participantID string) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return stats.YearsOf(r.participation[participantID]), nil
}
