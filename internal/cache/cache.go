// Package cache memoizes dating-pool computations.
package cache

import (
	"context"

	"github.com/denisok6893-rgb/red-flag-checker/internal/calculator"
	"github.com/denisok6893-rgb/red-flag-checker/internal/logger"
	"github.com/denisok6893-rgb/red-flag-checker/internal/metrics"
)

// Cache stores calculator results by calculator.Key.
type Cache interface {
	Get(ctx context.Context, key string) (calculator.Result, bool, error)
	Set(ctx context.Context, key string, r calculator.Result) error
	Name() string
}

type noop struct{}

// NewNoop returns a cache that never hits.
func NewNoop() Cache { return noop{} }

func (noop) Get(context.Context, string) (calculator.Result, bool, error) {
	return calculator.Result{}, false, nil
}

func (noop) Set(context.Context, string, calculator.Result) error { return nil }

func (noop) Name() string { return "none" }

// Calculator wraps calculator.Compute with a cache. Cache errors are
// logged and the result is computed directly.
type Calculator struct {
	cache Cache
	log   logger.Logger
}

func NewCalculator(c Cache, log logger.Logger) *Calculator {
	if c == nil {
		c = NewNoop()
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Calculator{cache: c, log: log}
}

// Compute returns the result and whether it came from the cache.
func (c *Calculator) Compute(ctx context.Context, criteria calculator.Criteria, lookingForMale bool, region string) (calculator.Result, bool) {
	key := calculator.Key(criteria, lookingForMale, region)

	r, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		c.log.Warn("cache get failed", map[string]interface{}{"backend": c.cache.Name(), "key": key, "error": err.Error()})
		metrics.CacheLookups.WithLabelValues(c.cache.Name(), "error").Inc()
	case ok:
		metrics.CacheLookups.WithLabelValues(c.cache.Name(), "hit").Inc()
		return r, true
	default:
		metrics.CacheLookups.WithLabelValues(c.cache.Name(), "miss").Inc()
	}

	r = calculator.Compute(criteria, lookingForMale, region)
	metrics.Computations.WithLabelValues(metrics.KindProbability).Inc()

	if err := c.cache.Set(ctx, key, r); err != nil {
		c.log.Warn("cache set failed", map[string]interface{}{"backend": c.cache.Name(), "key": key, "error": err.Error()})
	}
	return r, false
}
