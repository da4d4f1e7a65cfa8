package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/denisok6893-rgb/red-flag-checker/internal/calculator"
)

const (
	defaultLRUSize = 1024
	defaultLRUTTL  = 10 * time.Minute
)

type lruEntry struct {
	result   calculator.Result
	storedAt time.Time
}

// LRU is an in-process cache with a per-entry TTL.
type LRU struct {
	cache *lru.Cache[string, lruEntry]
	ttl   time.Duration
	now   func() time.Time
}

// NewLRU falls back to defaults for non-positive size or ttl.
func NewLRU(size int, ttl time.Duration) (*LRU, error) {
	if size <= 0 {
		size = defaultLRUSize
	}
	if ttl <= 0 {
		ttl = defaultLRUTTL
	}
	c, err := lru.New[string, lruEntry](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &LRU{cache: c, ttl: ttl, now: time.Now}, nil
}

func (l *LRU) Get(_ context.Context, key string) (calculator.Result, bool, error) {
	e, ok := l.cache.Get(key)
	if !ok {
		return calculator.Result{}, false, nil
	}
	if l.now().Sub(e.storedAt) >= l.ttl {
		l.cache.Remove(key)
		return calculator.Result{}, false, nil
	}
	return e.result, true, nil
}

func (l *LRU) Set(_ context.Context, key string, r calculator.Result) error {
	l.cache.Add(key, lruEntry{result: r, storedAt: l.now()})
	return nil
}

func (l *LRU) Len() int { return l.cache.Len() }

func (l *LRU) Name() string { return "lru" }
