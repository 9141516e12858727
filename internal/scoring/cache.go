package scoring

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// resultCache memoizes scoring results for the process lifetime. Entries
// are never evicted; growth is bounded only by the number of distinct
// input triples. Writes are idempotent with respect to key -> value, so
// no coordination beyond the mutex is needed.
type resultCache struct {
	mu      sync.RWMutex
	entries map[string]*Result
}

func newResultCache() *resultCache {
	return &resultCache{entries: make(map[string]*Result)}
}

func (c *resultCache) get(key string) (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, ok := c.entries[key]
	return result, ok
}

func (c *resultCache) set(key string, result *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = result
}

func (c *resultCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// cacheKey builds a deterministic hash of the scoring inputs.
func cacheKey(resumeText, jobText, companyName string) string {
	h := sha256.New()
	h.Write([]byte(resumeText))
	h.Write([]byte{'|'})
	h.Write([]byte(jobText))
	h.Write([]byte{'|'})
	h.Write([]byte(companyName))
	return hex.EncodeToString(h.Sum(nil))
}
