package data

import (
	"sync"

	"spamsvm/pkg/logging"
)

// Cache loads a corpus once and hands out the same value until it is
// invalidated. It is owned by the caller; nothing in this module keeps a
// package-level cache.
type Cache struct {
	load func() (*Corpus, error)

	mu     sync.Mutex
	corpus *Corpus
	loads  int
}

// NewCache wraps a loader function.
func NewCache(load func() (*Corpus, error)) *Cache {
	return &Cache{load: load}
}

// NewFileCache caches LoadCorpus(path).
func NewFileCache(path string) *Cache {
	return NewCache(func() (*Corpus, error) { return LoadCorpus(path) })
}

// Get returns the cached corpus, loading it on first use. A failed load is not
// cached.
func (c *Cache) Get() (*Corpus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.corpus != nil {
		return c.corpus, nil
	}
	corpus, err := c.load()
	if err != nil {
		logging.Errorf("data: corpus load failed: %v", err)
		return nil, err
	}
	c.corpus = corpus
	c.loads++
	return corpus, nil
}

// Invalidate drops the cached value; the next Get reloads.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.corpus = nil
	c.mu.Unlock()
}

// Reload invalidates and loads again.
func (c *Cache) Reload() (*Corpus, error) {
	c.Invalidate()
	return c.Get()
}

// Loads reports how many successful loads have happened.
func (c *Cache) Loads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loads
}
