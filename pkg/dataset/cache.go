package dataset

import (
	"os"
	"sync"
	"time"

	"mustplay-go/pkg/game"
)

// Cache is a read-through cache over Load keyed by file path and
// modification time, so repeated readers of the same dataset file skip
// re-parsing until the file changes on disk.
type Cache struct {
	mu      sync.RWMutex
	path    string
	modTime time.Time
	records []game.Record
}

// NewCache creates an empty dataset cache.
func NewCache() *Cache {
	return &Cache{}
}

// Load returns the records for path, re-reading the file only when its
// modification time has changed since the last load.
func (c *Cache) Load(path string) ([]game.Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	if c.path == path && c.modTime.Equal(info.ModTime()) {
		records := c.records
		c.mu.RUnlock()
		return records, nil
	}
	c.mu.RUnlock()

	records, err := Load(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.path = path
	c.modTime = info.ModTime()
	c.records = records
	c.mu.Unlock()

	return records, nil
}
