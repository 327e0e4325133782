package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"saas-forecast/internal/model"
)

// Entry holds one completed forecast batch until it expires.
type Entry struct {
	Batch     *model.Batch
	ExpiresAt time.Time
}

// ResultCache keeps completed batches in memory so follow-up requests
// (per-run records, extra metric bands) can reference a forecast by ID
// without re-running it. Entries expire after the TTL; nothing is persisted.
type ResultCache struct {
	mu    sync.RWMutex
	store map[string]*Entry
	ttl   time.Duration
	seq   uint64
}

func NewResultCache(ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := &ResultCache{
		store: make(map[string]*Entry),
		ttl:   ttl,
	}
	go c.cleanup()
	return c
}

// Put stores a batch and returns its ID.
func (c *ResultCache) Put(batch *model.Batch) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d-%d", time.Now().UnixNano(), c.seq)))
	id := hex.EncodeToString(sum[:8])

	c.store[id] = &Entry{
		Batch:     batch,
		ExpiresAt: time.Now().Add(c.ttl),
	}
	return id
}

// Get retrieves a batch if present and not expired.
func (c *ResultCache) Get(id string) (*model.Batch, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.store[id]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry.Batch, true
}

// Clear removes all entries.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*Entry)
}

// cleanup periodically removes expired entries.
func (c *ResultCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now()
		for id, entry := range c.store {
			if now.After(entry.ExpiresAt) {
				delete(c.store, id)
			}
		}
		c.mu.Unlock()
	}
}
