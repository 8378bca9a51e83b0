package data

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/ducminhle1904/crypto-signal-engine/pkg/types"
)

// MemoryCache implements SnapshotCache using in-memory storage
type MemoryCache struct {
	cache map[string][]*types.IndicatorSnapshot
	mutex sync.RWMutex
}

// NewMemoryCache creates a new in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: make(map[string][]*types.IndicatorSnapshot),
	}
}

// Get retrieves snapshots from cache if available
func (c *MemoryCache) Get(key string) ([]*types.IndicatorSnapshot, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	snaps, exists := c.cache[key]
	if exists {
		// Copy the slice so callers cannot reorder the cached batch.
		// Snapshots themselves are read-only by contract.
		result := make([]*types.IndicatorSnapshot, len(snaps))
		copy(result, snaps)
		return result, true
	}

	return nil, false
}

// Set stores snapshots in cache
func (c *MemoryCache) Set(key string, snaps []*types.IndicatorSnapshot) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	cached := make([]*types.IndicatorSnapshot, len(snaps))
	copy(cached, snaps)
	c.cache[key] = cached
}

// Clear removes all cached snapshots
func (c *MemoryCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.cache = make(map[string][]*types.IndicatorSnapshot)
}

// Size returns the number of cached entries
func (c *MemoryCache) Size() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.cache)
}

// CachedProvider wraps another SnapshotProvider with batch caching
type CachedProvider struct {
	provider SnapshotProvider
	cache    SnapshotCache
}

// NewCachedProvider creates a new cached snapshot provider
func NewCachedProvider(provider SnapshotProvider) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    NewMemoryCache(),
	}
}

// NewCachedProviderWithCache creates a new cached snapshot provider with custom cache
func NewCachedProviderWithCache(provider SnapshotProvider, cache SnapshotCache) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    cache,
	}
}

// GetName returns the name of the underlying provider with cache indication
func (p *CachedProvider) GetName() string {
	return "Cached " + p.provider.GetName()
}

// LoadSnapshot loads a single snapshot without caching
func (p *CachedProvider) LoadSnapshot(source string) (*types.IndicatorSnapshot, error) {
	return p.provider.LoadSnapshot(source)
}

// LoadSnapshots loads a snapshot batch with caching
func (p *CachedProvider) LoadSnapshots(source string) ([]*types.IndicatorSnapshot, error) {
	if cached, exists := p.cache.Get(source); exists {
		return cached, nil
	}

	log.Printf("🔄 Loading snapshots from %s", filepath.Base(source))
	snaps, err := p.provider.LoadSnapshots(source)
	if err != nil {
		log.Printf("❌ Failed to load snapshots from %s: %v", filepath.Base(source), err)
		return nil, err
	}

	p.cache.Set(source, snaps)

	log.Printf("✅ Loaded and cached %d snapshots from %s", len(snaps), filepath.Base(source))
	return snaps, nil
}

// ValidateSnapshot validates a snapshot using the underlying provider
func (p *CachedProvider) ValidateSnapshot(snap *types.IndicatorSnapshot) error {
	return p.provider.ValidateSnapshot(snap)
}

// GetCache returns the underlying cache for external management
func (p *CachedProvider) GetCache() SnapshotCache {
	return p.cache
}

// ClearCache clears all cached snapshots
func (p *CachedProvider) ClearCache() {
	p.cache.Clear()
}

// GetCacheSize returns the number of cached entries
func (p *CachedProvider) GetCacheSize() int {
	return p.cache.Size()
}
