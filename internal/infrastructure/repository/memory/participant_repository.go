package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/peladahub/league-stats/internal/domain/participant"
)

type ParticipantRepository struct {
	mu    sync.RWMutex
	byID  map[string]participant.Participant
	order []string
}

func NewParticipantRepository(participants []participant.Participant) *ParticipantRepository {
	byID := make(map[string]participant.Participant, len(participants))
	order := make([]string, 0, len(participants))
	for _, p := range participants {
		if _, ok := byID[p.ID]; !ok {
			order = append(order, p.ID)
		}
		byID[p.ID] = p
	}
	sort.Strings(order)

	return &ParticipantRepository{byID: byID, order: order}
}

func (r *ParticipantRepository) List(_ context.Context) ([]participant.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]participant.Participant, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *ParticipantRepository) GetByID(_ context.Context, participantID string) (participant.Participant, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[participantID]
	return item, ok, nil
}
