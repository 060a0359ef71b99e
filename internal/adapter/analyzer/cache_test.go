package analyzer

import (
	"reflect"
	"sync"
	"testing"
)

type countingTokenizer struct {
	mu    sync.Mutex
	calls int
	inner *Tokenizer
}

func (c *countingTokenizer) Tokenize(text string) []string {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.inner.Tokenize(text)
}

func newCounting() *countingTokenizer {
	return &countingTokenizer{inner: NewTokenizer(NewWhitespaceSegmenter(false))}
}

func TestCachedTokenizer_HitAndMiss(t *testing.T) {
	inner := newCounting()
	cache := NewCachedTokenizer(inner, 4)

	first := cache.Tokenize("original thesis text")
	second := cache.Tokenize("original thesis text")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs: %v vs %v", first, second)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 underlying call, got %d", inner.calls)
	}
	hits, misses := cache.Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d/%d", hits, misses)
	}
}

func TestCachedTokenizer_ReturnsCopies(t *testing.T) {
	cache := NewCachedTokenizer(newCounting(), 4)

	first := cache.Tokenize("alpha beta")
	first[0] = "mutated"

	second := cache.Tokenize("alpha beta")
	if second[0] != "alpha" {
		t.Errorf("cache entry was mutated through a returned slice: %v", second)
	}
}

func TestCachedTokenizer_EmptyStaysNonNil(t *testing.T) {
	cache := NewCachedTokenizer(newCounting(), 4)

	cache.Tokenize("")
	tokens := cache.Tokenize("")
	if tokens == nil || len(tokens) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", tokens)
	}
}

func TestCachedTokenizer_Eviction(t *testing.T) {
	inner := newCounting()
	cache := NewCachedTokenizer(inner, 2)

	cache.Tokenize("one")
	cache.Tokenize("two")
	cache.Tokenize("one") // "two" is now least recently used
	cache.Tokenize("three")

	if cache.Size() != 2 {
		t.Fatalf("expected size 2, got %d", cache.Size())
	}

	calls := inner.calls
	cache.Tokenize("one")
	if inner.calls != calls {
		t.Error("expected 'one' to survive eviction")
	}
	cache.Tokenize("two")
	if inner.calls != calls+1 {
		t.Error("expected 'two' to have been evicted")
	}
}

func TestCachedTokenizer_Concurrent(t *testing.T) {
	cache := NewCachedTokenizer(newCounting(), 8)
	texts := []string{"a b c", "d e f", "g h i"}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cache.Tokenize(texts[i%len(texts)])
		}(i)
	}
	wg.Wait()

	if cache.Size() != len(texts) {
		t.Errorf("expected %d entries, got %d", len(texts), cache.Size())
	}
}
