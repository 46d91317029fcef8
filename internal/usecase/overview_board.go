package usecase

import (
	"sync"

	"github.com/peladahub/league-stats/internal/domain/stats"
)

// OverviewBoard holds the latest published overview per request key. Every
// request registers with Begin and gets a generation number; only the result
// of the newest generation may flip the published value, so a slow stale
// request can never overwrite a fresher one. A failed request clears the
// loading flag and leaves the previous result in place.
type OverviewBoard struct {
	mu    sync.Mutex
	slots map[string]*boardSlot
}

type boardSlot struct {
	lastBegun uint64
	value     stats.Overview
	hasValue  bool
	loading   bool
}

func NewOverviewBoard() *OverviewBoard {
	return &OverviewBoard{slots: make(map[string]*boardSlot)}
}

func (b *OverviewBoard) slot(key string) *boardSlot {
	s, ok := b.slots[key]
	if !ok {
		s = &boardSlot{}
		b.slots[key] = s
	}
	return s
}

// Begin registers a new in-flight request and marks the key loading.
func (b *OverviewBoard) Begin(key string) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.slot(key)
	s.lastBegun++
	s.loading = true
	return s.lastBegun
}

// Publish stores value only when gen is still the newest begun generation;
// a result from a superseded request is discarded even if nothing newer has
// published yet. Reports whether the value was accepted.
func (b *OverviewBoard) Publish(key string, gen uint64, value stats.Overview) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.slot(key)
	if gen != s.lastBegun {
		return false
	}
	s.value = value
	s.hasValue = true
	s.loading = false
	return true
}

// Fail clears the loading flag when the failed request was the newest one.
// The previously published value is never touched.
func (b *OverviewBoard) Fail(key string, gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := b.slot(key)
	if gen == s.lastBegun {
		s.loading = false
	}
}

// Latest returns the last published overview with its loading state.
func (b *OverviewBoard) Latest(key string) (stats.Overview, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.slots[key]
	if !ok || !s.hasValue {
		return stats.Overview{}, false
	}
	value := s.value
	value.IsLoading = s.loading
	return value, true
}
