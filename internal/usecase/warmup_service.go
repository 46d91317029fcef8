package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/peladahub/league-stats/internal/domain/participant"
	"github.com/peladahub/league-stats/internal/domain/stats"
	"github.com/peladahub/league-stats/internal/platform/logging"
)

const (
	defaultWarmupWorkers = 4
	maxWarmupWorkers     = 32
)

// WarmupService precomputes all-time overviews for every participant so the
// first page load after a round closes hits a warm cache.
type WarmupService struct {
	participantRepo participant.Repository
	statsService    *StatsService
	logger          *logging.Logger
}

type WarmupResult struct {
	ParticipantCount int   `json:"participant_count"`
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	WorkerCount      int   `json:"worker_count"`
	DurationMs       int64 `json:"duration_ms"`
}

func NewWarmupService(
	participantRepo participant.Repository,
	statsService *StatsService,
	logger *logging.Logger,
) *WarmupService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WarmupService{
		participantRepo: participantRepo,
		statsService:    statsService,
		logger:          logger,
	}
}

func (s *WarmupService) WarmOverviews(ctx context.Context, maxWorkers int) (WarmupResult, error) {
	startedAt := time.Now()

	participants, err := s.participantRepo.List(ctx)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("list participants for warmup: %w", err)
	}

	workers := maxWorkers
	if workers <= 0 {
		workers = defaultWarmupWorkers
	}
	if workers > maxWarmupWorkers {
		workers = maxWarmupWorkers
	}
	if workers > len(participants) && len(participants) > 0 {
		workers = len(participants)
	}

	workerPool, err := ants.NewPool(workers)
	if err != nil {
		return WarmupResult{}, fmt.Errorf("create warmup worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		wg      sync.WaitGroup
		success atomic.Int64
		failed  atomic.Int64
	)
	for _, item := range participants {
		item := item
		wg.Add(1)
		submitErr := workerPool.Submit(func() {
			defer wg.Done()
			if _, err := s.statsService.GetOverview(ctx, item.ID, stats.Filter{}); err != nil {
				failed.Add(1)
				s.logger.WarnContext(ctx, "warmup overview failed", "participant_id", item.ID, "error", err)
				return
			}
			success.Add(1)
		})
		if submitErr != nil {
			wg.Done()
			failed.Add(1)
			s.logger.WarnContext(ctx, "warmup submit failed", "participant_id", item.ID, "error", submitErr)
		}
	}
	wg.Wait()

	return WarmupResult{
		ParticipantCount: len(participants),
		SuccessCount:     int(success.Load()),
		FailedCount:      int(failed.Load()),
		WorkerCount:      workers,
		DurationMs:       time.Since(startedAt).Milliseconds(),
	}, nil
}
