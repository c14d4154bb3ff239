// Package routes caches backend-computed collection routes.
package routes

import (
	"context"
	"crypto/md5"
	"fmt"
	"log"
	"sync"
	"time"

	"ecokosova-dashboard/internal/models"
)

const (
	DefaultMaxEntries = 200
	DefaultTTL        = 5 * time.Minute
)

// Cache is a TTL + LRU cache of routes keyed by zone, strategy and start point
type Cache struct {
	entries    map[string]*cacheEntry
	mutex      sync.RWMutex
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
	stats      Stats
}

type cacheEntry struct {
	route        models.Route
	createdAt    time.Time
	lastAccessed time.Time
	hitCount     int
}

// Stats tracks cache performance
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
}

func NewCache(maxEntries int, ttl time.Duration) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries:    make(map[string]*cacheEntry),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Key builds the cache signature for one route request
func Key(zoneID string, q models.RouteQuery) string {
	signature := fmt.Sprintf("%s_%s_%.4f,%.4f", zoneID, q.Strategy, q.StartLat, q.StartLon)
	hash := md5.Sum([]byte(signature))
	return fmt.Sprintf("%x", hash[:8])
}

func (c *Cache) Get(key string) (models.Route, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, found := c.entries[key]
	if !found {
		c.stats.Misses++
		return models.Route{}, false
	}

	now := c.now()
	if now.Sub(entry.createdAt) > c.ttl {
		delete(c.entries, key)
		c.stats.Misses++
		c.stats.Evictions++
		return models.Route{}, false
	}

	entry.lastAccessed = now
	entry.hitCount++
	c.stats.Hits++
	return entry.route, true
}

func (c *Cache) Set(key string, route models.Route) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}

	now := c.now()
	c.entries[key] = &cacheEntry{
		route:        route,
		createdAt:    now,
		lastAccessed: now,
	}
}

// Invalidate drops every cached route, e.g. after fill levels change
func (c *Cache) Invalidate() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.stats.Evictions += int64(len(c.entries))
	c.entries = make(map[string]*cacheEntry)
}

// evictOldest removes the least recently used entry
func (c *Cache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time

	for key, entry := range c.entries {
		if oldestKey == "" || entry.lastAccessed.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.lastAccessed
		}
	}

	if oldestKey != "" {
		delete(c.entries, oldestKey)
		c.stats.Evictions++
		log.Printf("🗑️  Evicted oldest route cache entry: %s", oldestKey)
	}
}

// RunCleanup removes expired entries every interval until ctx is done
func (c *Cache) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.removeExpired()
		}
	}
}

func (c *Cache) removeExpired() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := c.now()
	for key, entry := range c.entries {
		if now.Sub(entry.createdAt) > c.ttl {
			delete(c.entries, key)
			c.stats.Evictions++
		}
	}
}

func (c *Cache) Stats() Stats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	s := c.stats
	s.Size = len(c.entries)
	return s
}
