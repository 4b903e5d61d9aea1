// Package cache memoizes relationship reports keyed by a content
// fingerprint over a directory's Markdown files. The fingerprint covers file
// paths and modification times, so touching any file invalidates the whole
// entry. Storage is injectable; the default is an in-memory map.
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/docweave/docweave/internal/relations"
)

// NoHashKey suffix marks a key whose fingerprint could not be computed.
// Entries under such a key are never stored, which disables caching for that
// call instead of failing it.
const NoHashKey = "no_hash"

// Store is the pluggable storage behind a Cache.
type Store interface {
	Get(key string) (*relations.Report, bool)
	Set(key string, report *relations.Report)
	Clear()
	Len() int
}

// MemoryStore is the default Store: a mutex-guarded map with no eviction and
// no TTL. Callers own the cache lifetime.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*relations.Report
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*relations.Report)}
}

func (m *MemoryStore) Get(key string) (*relations.Report, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.entries[key]
	return r, ok
}

func (m *MemoryStore) Set(key string, report *relations.Report) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = report
}

func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]*relations.Report)
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Cache memoizes complete relationship reports. It is safe for concurrent
// use; computations for the same key are serialized so no partially
// populated entry is ever visible, while computations for different keys
// proceed independently.
type Cache struct {
	mu    sync.Mutex // guards locks
	locks map[string]*sync.Mutex
	store Store
}

// New builds a Cache over the given store. A nil store gets a fresh
// MemoryStore.
func New(store Store) *Cache {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Cache{store: store, locks: make(map[string]*sync.Mutex)}
}

// keyLock returns the mutex serializing computations for one key.
func (c *Cache) keyLock(key string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[key]
	if !ok {
		l = &sync.Mutex{}
		c.locks[key] = l
	}
	return l
}

// Key computes the fingerprint cache key for an analysis over root. paths
// are the discovered Markdown files relative to root, in walk order; their
// modification times are concatenated and hashed. A stat failure degrades
// that file's contribution to "0" rather than aborting.
func Key(analysisType, root string, paths []string) string {
	h := md5.New()
	for _, p := range paths {
		info, err := os.Stat(filepath.Join(root, p))
		if err != nil {
			h.Write([]byte("0"))
			continue
		}
		h.Write([]byte(strconv.FormatInt(info.ModTime().UnixNano(), 10)))
	}
	return analysisType + ":" + root + ":" + hex.EncodeToString(h.Sum(nil))
}

// FallbackKey is used when the fingerprint cannot be computed at all.
func FallbackKey(analysisType, root string) string {
	return analysisType + ":" + root + ":" + NoHashKey
}

// GetOrCompute returns the cached report for key, or runs compute and stores
// the result. Keys ending in NoHashKey are computed fresh every time and
// never stored. Only computations for the same key block each other; a slow
// analysis of one root never stalls lookups for another.
func (c *Cache) GetOrCompute(key string, compute func() (*relations.Report, error)) (*relations.Report, bool, error) {
	l := c.keyLock(key)
	l.Lock()
	defer l.Unlock()

	if report, ok := c.store.Get(key); ok {
		return report, true, nil
	}

	report, err := compute()
	if err != nil {
		return nil, false, err
	}
	if !isNoHash(key) {
		c.store.Set(key, report)
	}
	return report, false, nil
}

// Clear drops every cached entry. Key locks are kept so in-flight
// computations stay serialized.
func (c *Cache) Clear() {
	c.store.Clear()
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	return c.store.Len()
}

func isNoHash(key string) bool {
	return len(key) >= len(NoHashKey) && key[len(key)-len(NoHashKey):] == NoHashKey
}
