package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/peladahub/league-stats/internal/domain/participant"
	"github.com/peladahub/league-stats/internal/domain/stats"
	"github.com/peladahub/league-stats/internal/platform/cache"
	"github.com/peladahub/league-stats/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

type StatsService struct {
	participantRepo participant.Repository
	snapshotRepo    stats.SnapshotRepository
	eventRepo       stats.EventRepository
	cache           *cache.Store
	board           *OverviewBoard
	logger          *logging.Logger
	now             func() time.Time
}

func NewStatsService(
	participantRepo participant.Repository,
	snapshotRepo stats.SnapshotRepository,
	eventRepo stats.EventRepository,
	cacheStore *cache.Store,
	logger *logging.Logger,
) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsService{
		participantRepo: participantRepo,
		snapshotRepo:    snapshotRepo,
		eventRepo:       eventRepo,
		cache:           cacheStore,
		board:           NewOverviewBoard(),
		logger:          logger,
		now:             time.Now,
	}
}

// GetOverview computes the reconciled totals, per-round series, ratios,
// extremal periods and year directory for one participant and filter. On
// failure nothing is published and the board keeps its previous result.
func (s *StatsService) GetOverview(ctx context.Context, participantID string, filter stats.Filter) (stats.Overview, error) {
	participantID = strings.TrimSpace(participantID)
	if participantID == "" {
		return stats.Overview{}, fmt.Errorf("%w: participant id is required", ErrInvalidInput)
	}
	if filter.Month != 0 && (filter.Month < time.January || filter.Month > time.December) {
		return stats.Overview{}, fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if filter.Month != 0 && filter.Year == 0 {
		return stats.Overview{}, fmt.Errorf("%w: month filter requires a year", ErrInvalidInput)
	}

	_, exists, err := s.participantRepo.GetByID(ctx, participantID)
	if err != nil {
		return stats.Overview{}, fmt.Errorf("get participant: %w", err)
	}
	if !exists {
		return stats.Overview{}, fmt.Errorf("%w: participant=%s", ErrNotFound, participantID)
	}

	key := overviewKey(participantID, filter)
	gen := s.board.Begin(key)

	overview, err := s.loadOverview(ctx, key, participantID, filter)
	if err != nil {
		s.board.Fail(key, gen)
		s.logger.ErrorContext(ctx, "stats overview failed",
			"participant_id", participantID,
			"year", filter.Year,
			"month", int(filter.Month),
			"error", err,
		)
		return stats.Overview{}, fmt.Errorf("compute stats overview: %w", err)
	}

	s.board.Publish(key, gen, overview)
	return overview, nil
}

// LatestOverview returns the last published result for the scope, if any.
func (s *StatsService) LatestOverview(participantID string, filter stats.Filter) (stats.Overview, bool) {
	return s.board.Latest(overviewKey(strings.TrimSpace(participantID), filter))
}

func (s *StatsService) loadOverview(ctx context.Context, key, participantID string, filter stats.Filter) (stats.Overview, error) {
	if s.cache == nil {
		return s.computeOverview(ctx, participantID, filter)
	}

	value, err := s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.computeOverview(ctx, participantID, filter)
	})
	if err != nil {
		return stats.Overview{}, err
	}

	overview, ok := value.(stats.Overview)
	if !ok {
		return s.computeOverview(ctx, participantID, filter)
	}
	return overview, nil
}

// computeOverview issues the snapshot, event and year fetches concurrently
// and joins them before any derivation runs. The first failed fetch cancels
// the rest and aborts the whole request; partial totals are never built.
func (s *StatsService) computeOverview(ctx context.Context, participantID string, filter stats.Filter) (stats.Overview, error) {
	var (
		snap    stats.Snapshot
		hasSnap bool
		set     stats.EventSet
		years   []int
	)

	fetches := pool.New().WithContext(ctx).WithCancelOnError()
	fetches.Go(func(ctx context.Context) error {
		var err error
		snap, hasSnap, err = s.snapshotRepo.GetByParticipant(ctx, participantID)
		if err != nil {
			return fmt.Errorf("fetch snapshot: %w", err)
		}
		return nil
	})
	fetches.Go(func(ctx context.Context) error {
		var err error
		set.Participation, err = s.eventRepo.ListParticipation(ctx, participantID, filter.Year)
		if err != nil {
			return fmt.Errorf("fetch participation rows: %w", err)
		}
		return nil
	})
	fetches.Go(func(ctx context.Context) error {
		var err error
		set.Goals, err = s.eventRepo.ListGoals(ctx, participantID, filter.Year)
		if err != nil {
			return fmt.Errorf("fetch goal events: %w", err)
		}
		return nil
	})
	fetches.Go(func(ctx context.Context) error {
		var err error
		set.Assists, err = s.eventRepo.ListAssists(ctx, participantID, filter.Year)
		if err != nil {
			return fmt.Errorf("fetch assist events: %w", err)
		}
		return nil
	})
	fetches.Go(func(ctx context.Context) error {
		var err error
		set.Penalties, err = s.eventRepo.ListPenalties(ctx, participantID, filter.Year)
		if err != nil {
			return fmt.Errorf("fetch penalty rows: %w", err)
		}
		return nil
	})
	fetches.Go(func(ctx context.Context) error {
		var err error
		years, err = s.eventRepo.ListYears(ctx, participantID)
		if err != nil {
			return fmt.Errorf("fetch participation years: %w", err)
		}
		return nil
	})
	if err := fetches.Wait(); err != nil {
		return stats.Overview{}, err
	}

	now := s.now()
	mode := stats.SelectMode(hasSnap, filter, now)
	lines := stats.BuildRoundLines(set)

	return stats.Overview{
		Mode:           mode,
		Totals:         stats.Reconcile(mode, snap, set, filter),
		PerRound:       lines,
		AvailableYears: stats.NormalizeYears(years, now),
		Ratios:         stats.ComputeRatios(lines),
		BestWorst:      stats.FindExtremes(lines),
	}, nil
}

func overviewKey(participantID string, filter stats.Filter) string {
	return fmt.Sprintf("stats:%s:%d:%d", participantID, filter.Year, int(filter.Month))
}
