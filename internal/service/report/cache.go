package report

import (
	"hash/fnv"
	"sync"

	"github.com/worklens/worklens-backend-go/internal/domain/report"
)

// dwmCache memoizes computed rollup rows per (org, range, department,
// employee) tuple. Entries are dropped only by explicit invalidation when a
// constituent changes, never by timers.
type dwmCache struct {
	mu      sync.RWMutex
	entries map[uint64][]report.DWMRow
}

func newDWMCache() *dwmCache {
	return &dwmCache{entries: make(map[uint64][]report.DWMRow)}
}

func dwmCacheKey(orgID string, req report.DWMRequest) uint64 {
	h := fnv.New64a()
	for _, part := range []string{orgID, req.StartDate, req.EndDate, req.Department, req.Employee} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

func (c *dwmCache) get(key uint64) ([]report.DWMRow, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rows, ok := c.entries[key]
	return rows, ok
}

func (c *dwmCache) set(key uint64, rows []report.DWMRow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = rows
}

func (c *dwmCache) invalidate(key uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
