package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/peladahub/league-stats/internal/domain/participant"
)

type ParticipantService struct {
	participantRepo participant.Repository
}

func NewParticipantService(participantRepo participant.Repository) *ParticipantService {
	return &ParticipantService{participantRepo: participantRepo}
}

func (s *ParticipantService) List(ctx context.Context) ([]participant.Participant, error) {
	items, err := s.participantRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return items, nil
}

func (s *ParticipantService) GetByID(ctx context.Context, participantID string) (participant.Participant, error) {
	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return participant.Participant{}, fmt.Errorf("%w: participant id is required", ErrInvalidInput)
	}

	item, exists, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return participant.Participant{}, fmt.Errorf("get participant: %w", err)
	}
	if !exists {
		return participant.Participant{}, fmt.Errorf("%w: participant=%s", ErrNotFound, participantID)
	}
	return item, nil
}
