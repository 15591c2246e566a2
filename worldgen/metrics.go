package worldgen

import (
	"sync"

	"golang.org/x/exp/maps"
)

// Metrics tracks generation counters for observability. All methods are
// safe on a nil receiver, which disables counting.
type Metrics struct {
	mu sync.Mutex

	chunks    uint64
	columns   uint64
	cacheHits uint64
	trees     map[string]uint64
	biomes    map[string]uint64
}

// NewMetrics creates an empty metrics registry.
func NewMetrics() *Metrics {
	return &Metrics{
		trees:  make(map[string]uint64),
		biomes: make(map[string]uint64),
	}
}

// IncChunks increments the generated chunk counter.
func (m *Metrics) IncChunks() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.chunks++
	m.mu.Unlock()
}

// AddColumns adds to the resolved column counter.
func (m *Metrics) AddColumns(n uint64) {
	if m == nil || n == 0 {
		return
	}
	m.mu.Lock()
	m.columns += n
	m.mu.Unlock()
}

// AddTrees adds to the per-kind placed tree counter.
func (m *Metrics) AddTrees(kind string, n uint64) {
	if m == nil || n == 0 {
		return
	}
	m.mu.Lock()
	m.trees[kind] += n
	m.mu.Unlock()
}

// IncCacheHits increments the chunk cache hit counter.
func (m *Metrics) IncCacheHits() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.cacheHits++
	m.mu.Unlock()
}

// CacheHits returns the number of chunk cache hits so far.
func (m *Metrics) CacheHits() uint64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cacheHits
}

// IncBiome increments the classification counter of the named biome.
func (m *Metrics) IncBiome(name string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.biomes[name]++
	m.mu.Unlock()
}

// Chunks returns the number of chunks generated so far.
func (m *Metrics) Chunks() uint64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.chunks
}

// Columns returns the number of columns resolved so far.
func (m *Metrics) Columns() uint64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.columns
}

// TreeCounts returns a snapshot of the per-kind tree counters.
func (m *Metrics) TreeCounts() map[string]uint64 {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.trees)
}

// BiomeCounts returns a snapshot of the per-biome classification counters.
func (m *Metrics) BiomeCounts() map[string]uint64 {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.biomes)
}
