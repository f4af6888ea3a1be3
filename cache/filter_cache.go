package filter_cache

import (
	"sync"
	"time"

	"github.com/firhaanali/dashboard-dbusana-sub007/models"
)

const TTL = 5 * time.Minute

// ── Sales filter metadata cache ──────────────────────────────────────────────
// Marketplaces and the sales date range change rarely but feed every dashboard
// filter dropdown, so the metadata is held in-process for a few minutes.

type entry struct {
	data      models.SalesFilterMetadata
	fetchedAt time.Time
}

var (
	mu     sync.RWMutex
	cached *entry
)

func Get() (models.SalesFilterMetadata, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cached != nil && time.Since(cached.fetchedAt) < TTL {
		return cached.data, true
	}
	return models.SalesFilterMetadata{}, false
}

func Set(data models.SalesFilterMetadata) {
	mu.Lock()
	defer mu.Unlock()
	cached = &entry{data: data, fetchedAt: time.Now()}
}

// Invalidate drops the cached metadata (call after bulk sales imports).
func Invalidate() {
	mu.Lock()
	cached = nil
	mu.Unlock()
}
