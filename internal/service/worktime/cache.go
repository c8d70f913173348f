package worktime

import (
	"sync"

	"github.com/kmsteel/hr-backend-go/internal/domain/worktime"
)

type statsKey struct {
	EmployeeID string
	Year       int
	Month      int
}

// statsCache memoizes monthly aggregates per (employee, year, month).
// The mutex is held across the whole read-check/compute/write so two
// requests for the same month never recompute concurrently. Invalidation
// is the caller's responsibility after any attendance mutation.
type statsCache struct {
	mu       sync.Mutex
	entries  map[statsKey]worktime.MonthlyStats
	computes int64
}

func newStatsCache() *statsCache {
	return &statsCache{entries: make(map[statsKey]worktime.MonthlyStats)}
}

// getOrCompute returns the cached stats or runs compute under the lock.
func (c *statsCache) getOrCompute(key statsKey, compute func() (worktime.MonthlyStats, error)) (worktime.MonthlyStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if stats, ok := c.entries[key]; ok {
		return stats, nil
	}

	stats, err := compute()
	if err != nil {
		return worktime.MonthlyStats{}, err
	}
	c.entries[key] = stats
	c.computes++
	return stats, nil
}

func (c *statsCache) invalidate(key statsKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *statsCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[statsKey]worktime.MonthlyStats)
}

// computeCount reports how many aggregations actually ran, for tests that
// assert cache idempotence.
func (c *statsCache) computeCount() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.computes
}
