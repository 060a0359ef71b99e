package analyzer

import (
	"crypto/sha256"
	"sync"

	"plagcheck/internal/port"
)

// CachedTokenizer memoizes token sequences by content hash. Entries live in
// memory only and are evicted least-recently-used first.
type CachedTokenizer struct {
	tokenizer port.Tokenizer

	mu      sync.RWMutex
	entries map[[sha256.Size]byte][]string
	order   [][sha256.Size]byte
	maxSize int

	hits   int
	misses int
}

// NewCachedTokenizer wraps tokenizer with a cache of at most maxSize entries.
func NewCachedTokenizer(tokenizer port.Tokenizer, maxSize int) *CachedTokenizer {
	if maxSize <= 0 {
		maxSize = 128
	}
	return &CachedTokenizer{
		tokenizer: tokenizer,
		entries:   make(map[[sha256.Size]byte][]string),
		order:     make([][sha256.Size]byte, 0, maxSize),
		maxSize:   maxSize,
	}
}

// Tokenize returns the cached sequence for text, tokenizing on a miss.
// Callers receive their own copy.
func (c *CachedTokenizer) Tokenize(text string) []string {
	key := sha256.Sum256([]byte(text))

	c.mu.RLock()
	tokens, exists := c.entries[key]
	c.mu.RUnlock()

	if exists {
		c.mu.Lock()
		c.hits++
		if _, still := c.entries[key]; still {
			c.moveToEnd(key)
		}
		c.mu.Unlock()
		return cloneTokens(tokens)
	}

	tokens = c.tokenizer.Tokenize(text)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.misses++
	if _, exists := c.entries[key]; !exists {
		if len(c.entries) >= c.maxSize {
			c.evictOldest()
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = tokens
	return cloneTokens(tokens)
}

// Stats returns hit and miss counts.
func (c *CachedTokenizer) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Size returns the number of cached sequences.
func (c *CachedTokenizer) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *CachedTokenizer) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *CachedTokenizer) moveToEnd(key [sha256.Size]byte) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.order = append(c.order, key)
}

func cloneTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	copy(out, tokens)
	return out
}
