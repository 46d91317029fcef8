package usecase

import (
	"testing"

	"github.com/peladahub/league-stats/internal/domain/stats"
)

func TestOverviewBoard_StaleGenerationCannotOverwrite(t *testing.T) {
	t.Parallel()

	board := NewOverviewBoard()
	const key = "stats:p-1:0:0"

	genOld := board.Begin(key)
	genNew := board.Begin(key)

	fresh := stats.Overview{Totals: stats.Totals{TotalPoints: 42}}
	if !board.Publish(key, genNew, fresh) {
		t.Fatalf("expected newest generation to publish")
	}

	stale := stats.Overview{Totals: stats.Totals{TotalPoints: 7}}
	if board.Publish(key, genOld, stale) {
		t.Fatalf("expected stale generation to be rejected")
	}

	got, ok := board.Latest(key)
	if !ok {
		t.Fatalf("expected a published overview")
	}
	if got.Totals.TotalPoints != 42 {
		t.Fatalf("expected fresh totals to survive, got %d", got.Totals.TotalPoints)
	}
	if got.IsLoading {
		t.Fatalf("expected loading cleared after the newest publish")
	}
}

func TestOverviewBoard_SupersededGenerationCannotPublishFirst(t *testing.T) {
	t.Parallel()

	board := NewOverviewBoard()
	const key = "stats:p-1:2024:0"

	genOld := board.Begin(key)
	genNew := board.Begin(key)

	// The older request finishes while the newer one is still in flight; its
	// result must be discarded, not published transiently.
	if board.Publish(key, genOld, stats.Overview{Totals: stats.Totals{TotalPoints: 7}}) {
		t.Fatalf("expected superseded generation to be rejected before the newest publishes")
	}
	if _, ok := board.Latest(key); ok {
		t.Fatalf("expected nothing published while only the superseded result arrived")
	}

	if !board.Publish(key, genNew, stats.Overview{Totals: stats.Totals{TotalPoints: 42}}) {
		t.Fatalf("expected newest generation to publish")
	}
	got, ok := board.Latest(key)
	if !ok || got.Totals.TotalPoints != 42 {
		t.Fatalf("expected the newest totals, got %+v ok=%t", got, ok)
	}
	if got.IsLoading {
		t.Fatalf("expected loading cleared after the newest publish")
	}
}

func TestOverviewBoard_FailKeepsPreviousValue(t *testing.T) {
	t.Parallel()

	board := NewOverviewBoard()
	const key = "stats:p-1:2025:0"

	gen := board.Begin(key)
	board.Publish(key, gen, stats.Overview{Totals: stats.Totals{TotalPoints: 10}})

	genRetry := board.Begin(key)
	if got, ok := board.Latest(key); !ok || !got.IsLoading {
		t.Fatalf("expected previous value flagged loading while a request is in flight")
	}

	board.Fail(key, genRetry)

	got, ok := board.Latest(key)
	if !ok {
		t.Fatalf("expected the previous overview to remain published")
	}
	if got.Totals.TotalPoints != 10 {
		t.Fatalf("expected previous totals to survive the failure, got %d", got.Totals.TotalPoints)
	}
	if got.IsLoading {
		t.Fatalf("expected loading cleared after the newest request failed")
	}
}

func TestOverviewBoard_LatestWithoutPublish(t *testing.T) {
	t.Parallel()

	board := NewOverviewBoard()
	if _, ok := board.Latest("stats:p-unknown:0:0"); ok {
		t.Fatalf("expected no overview before the first publish")
	}
}
