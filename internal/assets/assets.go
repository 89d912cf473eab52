// Package assets handles model file lookup and caching.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Manager resolves asset paths against a list of search roots and
// caches file contents. Invalidate drops a cached entry so the next
// Load rereads it from disk, which is how hot reload is served.
type Manager struct {
	roots []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a manager with the working directory and its
// assets subdirectory as default search roots.
func NewManager() *Manager {
	return &Manager{
		roots: []string{".", "assets"},
		cache: NewCache(),
	}
}

// AddRoot prepends a search root. Later additions take priority.
func (m *Manager) AddRoot(dir string) {
	m.mu.Lock()
	m.roots = append([]string{dir}, m.roots...)
	m.mu.Unlock()
}

// Resolve returns the absolute path of the first existing file for
// name. Absolute paths and paths that exist as given bypass the roots.
func (m *Manager) Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("asset %s: %w", name, err)
		}
		return name, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, root := range m.roots {
		candidate := filepath.Join(root, name)
		if _, err := os.Stat(candidate); err == nil {
			abs, err := filepath.Abs(candidate)
			if err != nil {
				return candidate, nil
			}
			return abs, nil
		}
	}

	return "", fmt.Errorf("asset not found: %s", name)
}

// Load resolves name and returns its contents, from cache when warm.
func (m *Manager) Load(name string) ([]byte, error) {
	path, err := m.Resolve(name)
	if err != nil {
		return nil, err
	}

	if data, ok := m.cache.Get(path); ok {
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading asset %s: %w", path, err)
	}

	m.cache.Set(path, data)
	return data, nil
}

// Invalidate evicts the cached contents of name, if any.
func (m *Manager) Invalidate(name string) {
	path, err := m.Resolve(name)
	if err != nil {
		return
	}
	m.cache.Delete(path)
}

// CacheStats returns the cache hit and miss counters.
func (m *Manager) CacheStats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops all cached data.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory byte cache keyed by absolute path.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	hits   int
	misses int
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item and updates the hit/miss counters.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Delete evicts a single entry.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Clear drops all entries and resets the counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
