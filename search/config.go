package search

import (
	"errors"
	"fmt"

	"github.com/somework/p2p-path-finder-sub001/money"
)

// Sentinel validation errors for Config construction.
var (
	ErrHopsOutOfRange    = errors.New("search: require 1 <= minHops <= maxHops")
	ErrTopKOutOfRange    = errors.New("search: topK must be >= 1")
	ErrGuardOutOfRange   = errors.New("search: guard limits must be >= 1")
	ErrTimeBudgetInvalid = errors.New("search: timeBudgetMs must be >= 1 when set")
)

// Default guard-rail limits, used when the caller does not override them.
const (
	DefaultMaxExpansions    = 100_000
	DefaultMaxVisitedStates = 50_000
	DefaultTopK             = 1
	DefaultMinHops          = 1
)

// Config bounds one PathSearchEngine invocation: hop limits, result
// width, and guard rails.
type Config struct {
	tolerance         money.ToleranceWindow
	minHops           int
	maxHops           int
	topK              int
	maxExpansions     int
	maxVisitedStates  int
	timeBudgetMs      int64 // 0 means unset
	throwOnGuardLimit bool
	order             PathOrderStrategy
}

// Option customizes a Config built by NewConfig.
type Option func(*Config)

// WithMinHops overrides the minimum hop count a candidate must reach
// before it is eligible for the result set. Default DefaultMinHops.
func WithMinHops(n int) Option {
	return func(c *Config) { c.minHops = n }
}

// WithTopK overrides the number of candidates to retain. Default
// DefaultTopK.
func WithTopK(n int) Option {
	return func(c *Config) { c.topK = n }
}

// WithMaxExpansions overrides the expansion guard rail. Default
// DefaultMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(c *Config) { c.maxExpansions = n }
}

// WithMaxVisitedStates overrides the visited-state guard rail. Default
// DefaultMaxVisitedStates.
func WithMaxVisitedStates(n int) Option {
	return func(c *Config) { c.maxVisitedStates = n }
}

// WithTimeBudget sets a wall-clock guard rail in milliseconds. Zero
// (the default) means unset: no time-based termination.
func WithTimeBudget(ms int64) Option {
	return func(c *Config) { c.timeBudgetMs = ms }
}

// WithThrowOnGuardLimit makes the engine surface a GuardLimitExceeded
// failure (still carrying the SearchGuardReport) whenever any guard
// fires, instead of silently returning whatever the result heap holds.
func WithThrowOnGuardLimit() Option {
	return func(c *Config) { c.throwOnGuardLimit = true }
}

// WithOrderStrategy overrides the candidate total order. Default
// DefaultOrder.
func WithOrderStrategy(strategy PathOrderStrategy) Option {
	return func(c *Config) {
		if strategy != nil {
			c.order = strategy
		}
	}
}

// NewConfig builds a validated Config for maxHops hops using tolerance,
// applying opts in order.
func NewConfig(tolerance money.ToleranceWindow, maxHops int, opts ...Option) (Config, error) {
	c := Config{
		tolerance:        tolerance,
		minHops:          DefaultMinHops,
		maxHops:          maxHops,
		topK:             DefaultTopK,
		maxExpansions:    DefaultMaxExpansions,
		maxVisitedStates: DefaultMaxVisitedStates,
		order:            DefaultOrder,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.minHops < 1 || c.maxHops < c.minHops {
		return Config{}, fmt.Errorf("%w: minHops=%d maxHops=%d", ErrHopsOutOfRange, c.minHops, c.maxHops)
	}
	if c.topK < 1 {
		return Config{}, fmt.Errorf("%w: got %d", ErrTopKOutOfRange, c.topK)
	}
	if c.maxExpansions < 1 || c.maxVisitedStates < 1 {
		return Config{}, fmt.Errorf("%w: maxExpansions=%d maxVisitedStates=%d", ErrGuardOutOfRange, c.maxExpansions, c.maxVisitedStates)
	}
	if c.timeBudgetMs < 0 {
		return Config{}, fmt.Errorf("%w: got %d", ErrTimeBudgetInvalid, c.timeBudgetMs)
	}

	return c, nil
}

// Tolerance returns the configured tolerance window.
func (c Config) Tolerance() money.ToleranceWindow { return c.tolerance }

// MinHops returns the minimum hop count for eligible candidates.
func (c Config) MinHops() int { return c.minHops }

// MaxHops returns the maximum hop count before a branch is abandoned.
func (c Config) MaxHops() int { return c.maxHops }

// TopK returns the result width.
func (c Config) TopK() int { return c.topK }
