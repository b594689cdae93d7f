// Package pathfinder orchestrates the engine end to end: filtering an
// orderbook.Book, building a graph.Graph, running search.Engine, and
// materializing + evaluating each candidate into a concrete Path, behind
// a singleflight-deduplicated PathSearchService and an errgroup-backed
// ExecutionPlanService for independent batches.
package pathfinder

import (
	"fmt"

	"github.com/somework/p2p-path-finder-sub001/money"
	"github.com/somework/p2p-path-finder-sub001/orderbook"
	"github.com/somework/p2p-path-finder-sub001/search"
)

// Config is the validated, immutable request configuration for one
// PathSearchService.Search invocation.
type Config struct {
	spendAmount       money.Money
	tolerance         money.ToleranceWindow
	minHops           int
	maxHops           int
	topK              int
	maxExpansions     int
	maxVisitedStates  int
	timeBudgetMs      int64
	throwOnGuardLimit bool
	filters           []orderbook.OrderFilter
	order             search.PathOrderStrategy
}

// Option customizes a Config built by NewConfig.
type Option func(*Config)

// WithMinHops overrides the minimum hop count. Default search.DefaultMinHops.
func WithMinHops(n int) Option { return func(c *Config) { c.minHops = n } }

// WithTopK overrides the result width. Default search.DefaultTopK.
func WithTopK(n int) Option { return func(c *Config) { c.topK = n } }

// WithMaxExpansions overrides the expansion guard rail.
func WithMaxExpansions(n int) Option { return func(c *Config) { c.maxExpansions = n } }

// WithMaxVisitedStates overrides the visited-state guard rail.
func WithMaxVisitedStates(n int) Option { return func(c *Config) { c.maxVisitedStates = n } }

// WithTimeBudget sets a millisecond wall-clock guard. Zero (default)
// means unset.
func WithTimeBudget(ms int64) Option { return func(c *Config) { c.timeBudgetMs = ms } }

// WithThrowOnGuardLimit makes Search return a GuardLimitExceeded *Error
// whenever any guard rail fires.
func WithThrowOnGuardLimit() Option { return func(c *Config) { c.throwOnGuardLimit = true } }

// WithFilters appends OrderFilters applied before the graph is built.
func WithFilters(filters ...orderbook.OrderFilter) Option {
	return func(c *Config) { c.filters = append(c.filters, filters...) }
}

// WithOrderStrategy overrides the candidate total order.
func WithOrderStrategy(strategy search.PathOrderStrategy) Option {
	return func(c *Config) {
		if strategy != nil {
			c.order = strategy
		}
	}
}

// NewConfig validates and builds a Config for a search of up to maxHops
// hops spending spendAmount, within tolerance.
func NewConfig(spendAmount money.Money, tolerance money.ToleranceWindow, maxHops int, opts ...Option) (Config, error) {
	if !spendAmount.Amount().IsPositive() {
		return Config{}, fmt.Errorf("%w: spend amount must be > 0", ErrInvalidInput)
	}
	c := Config{
		spendAmount:      spendAmount,
		tolerance:        tolerance,
		minHops:          search.DefaultMinHops,
		maxHops:          maxHops,
		topK:             search.DefaultTopK,
		maxExpansions:    search.DefaultMaxExpansions,
		maxVisitedStates: search.DefaultMaxVisitedStates,
		order:            search.DefaultOrder,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.minHops < 1 || c.maxHops < c.minHops {
		return Config{}, fmt.Errorf("%w: require 1 <= minHops <= maxHops, got %d/%d", ErrInvalidInput, c.minHops, c.maxHops)
	}
	if c.topK < 1 {
		return Config{}, fmt.Errorf("%w: topK must be >= 1, got %d", ErrInvalidInput, c.topK)
	}
	if c.maxExpansions < 1 || c.maxVisitedStates < 1 {
		return Config{}, fmt.Errorf("%w: guard limits must be >= 1", ErrInvalidInput)
	}
	if c.timeBudgetMs < 0 {
		return Config{}, fmt.Errorf("%w: timeBudgetMs must be >= 0", ErrInvalidInput)
	}

	return c, nil
}

// Digest returns a canonical string encoding of the config's observable
// fields, used by PathSearchService as part of its singleflight key so
// that two requests with identical search parameters against the same
// book revision and target share one in-flight search.
func (c Config) Digest() string {
	return fmt.Sprintf("%s|%s-%s|%d-%d|%d|%d-%d-%d|%t|%d",
		c.spendAmount, c.tolerance.Minimum(), c.tolerance.Maximum(),
		c.minHops, c.maxHops, c.topK,
		c.maxExpansions, c.maxVisitedStates, c.timeBudgetMs,
		c.throwOnGuardLimit, len(c.filters))
}

// searchConfig builds the internal search.Config this pathfinder.Config
// describes.
func (c Config) searchConfig() (search.Config, error) {
	opts := []search.Option{
		search.WithMinHops(c.minHops),
		search.WithTopK(c.topK),
		search.WithMaxExpansions(c.maxExpansions),
		search.WithMaxVisitedStates(c.maxVisitedStates),
		search.WithOrderStrategy(c.order),
	}
	if c.timeBudgetMs > 0 {
		opts = append(opts, search.WithTimeBudget(c.timeBudgetMs))
	}
	if c.throwOnGuardLimit {
		opts = append(opts, search.WithThrowOnGuardLimit())
	}

	return search.NewConfig(c.tolerance, c.maxHops, opts...)
}
