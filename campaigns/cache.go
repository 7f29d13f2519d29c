package campaigns

import (
	"sync"
	"time"
)

// PreviewCacheConfig configures the link preview cache.
type PreviewCacheConfig struct {
	Enabled         bool          `json:"enabled"`
	TTL             time.Duration `json:"ttl"`
	CleanupInterval time.Duration `json:"cleanup_interval"`
	MaxSize         int           `json:"max_size"`
}

type previewEntry struct {
	preview     *LinkPreview
	expiration  time.Time
	accessCount int64
}

// PreviewCache caches link previews by URL so repeated previews of the
// same page do not hit the remote site again.
type PreviewCache struct {
	config PreviewCacheConfig
	data   map[string]*previewEntry
	mutex  sync.Mutex
	stats  PreviewCacheStats
}

// PreviewCacheStats reports cache effectiveness.
type PreviewCacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// NewPreviewCache creates a preview cache and, when configured, starts
// background cleanup of expired entries.
func NewPreviewCache(config PreviewCacheConfig) *PreviewCache {
	cache := &PreviewCache{
		config: config,
		data:   make(map[string]*previewEntry),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		go cache.startCleanup()
	}

	return cache
}

// Get returns a cached preview, if present and fresh.
func (c *PreviewCache) Get(key string) (*LinkPreview, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.config.Enabled {
		c.stats.Misses++
		return nil, false
	}

	entry, exists := c.data[key]
	if !exists || time.Now().After(entry.expiration) {
		c.stats.Misses++
		return nil, false
	}

	entry.accessCount++
	c.stats.Hits++
	return entry.preview, true
}

// Set stores a preview, evicting the least used entry when full.
func (c *PreviewCache) Set(key string, preview *LinkPreview) {
	if !c.config.Enabled {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.config.MaxSize > 0 && len(c.data) >= c.config.MaxSize {
		c.evictLeastUsed()
	}

	c.data[key] = &previewEntry{
		preview:     preview,
		expiration:  time.Now().Add(c.config.TTL),
		accessCount: 1,
	}
	c.stats.Size = len(c.data)
}

// Clear drops all entries and resets the statistics.
func (c *PreviewCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data = make(map[string]*previewEntry)
	c.stats = PreviewCacheStats{}
}

// Stats returns a snapshot of the cache statistics.
func (c *PreviewCache) Stats() PreviewCacheStats {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	stats := c.stats
	stats.Size = len(c.data)
	return stats
}

// evictLeastUsed removes the entry with the fewest accesses. Caller
// must hold the mutex.
func (c *PreviewCache) evictLeastUsed() {
	var (
		victimKey   string
		victimCount int64 = -1
	)
	for key, entry := range c.data {
		if victimCount == -1 || entry.accessCount < victimCount {
			victimKey = key
			victimCount = entry.accessCount
		}
	}
	if victimKey != "" {
		delete(c.data, victimKey)
	}
}

func (c *PreviewCache) startCleanup() {
	ticker := time.NewTicker(c.config.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *PreviewCache) cleanup() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	for key, entry := range c.data {
		if now.After(entry.expiration) {
			delete(c.data, key)
		}
	}
	c.stats.Size = len(c.data)
}
