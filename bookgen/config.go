package bookgen

import (
	"github.com/somework/p2p-path-finder-sub001/orderbook"
)

// RateFn derives the base->quote effective rate for the i-th order a
// Constructor emits between base and quote. i is the order's position in
// the constructor's stable emission order, not a currency index.
type RateFn func(base, quote string, i int) float64

// BoundsFn derives the [min, max] base-currency fill bounds for the i-th
// order a Constructor emits between base and quote.
type BoundsFn func(base, quote string, i int) (min, max float64)

// DefaultRateFn returns a constant 1:1 rate for every order, keeping a
// fixture's topology legible independent of its economics.
func DefaultRateFn(_, _ string, _ int) float64 { return 1.0 }

// DefaultBoundsFn returns the fixed base-currency bounds [1, 1000].
func DefaultBoundsFn(_, _ string, _ int) (float64, float64) { return 1, 1000 }

// DefaultScale is the Money/ExchangeRate scale BuildBook uses when the
// caller does not override it via WithScale.
const DefaultScale = 8

// genConfig holds the configurable parameters shared by every topology
// Constructor: rate/bounds generators, a fee policy applied to every
// emitted order, and the fixed-point scale orders are built at.
//
// genConfig is not safe for concurrent mutation; each BuildBook call
// creates its own.
type genConfig struct {
	rateFn    RateFn
	boundsFn  BoundsFn
	feePolicy orderbook.FeePolicy
	scale     int
}

// Option customizes the genConfig a Constructor runs against.
type Option func(cfg *genConfig)

func newGenConfig(opts ...Option) *genConfig {
	cfg := &genConfig{
		rateFn:    DefaultRateFn,
		boundsFn:  DefaultBoundsFn,
		feePolicy: orderbook.NoFeePolicy{},
		scale:     DefaultScale,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRateFn injects a custom RateFn. A nil fn is a no-op.
func WithRateFn(fn RateFn) Option {
	return func(cfg *genConfig) {
		if fn != nil {
			cfg.rateFn = fn
		}
	}
}

// WithBoundsFn injects a custom BoundsFn. A nil fn is a no-op.
func WithBoundsFn(fn BoundsFn) Option {
	return func(cfg *genConfig) {
		if fn != nil {
			cfg.boundsFn = fn
		}
	}
}

// WithFeePolicy attaches fp to every order a Constructor emits. A nil
// policy is a no-op (leaves the default orderbook.NoFeePolicy in place).
func WithFeePolicy(fp orderbook.FeePolicy) Option {
	return func(cfg *genConfig) {
		if fp != nil {
			cfg.feePolicy = fp
		}
	}
}

// WithScale overrides the fixed-point scale orders are built at. Values
// <= 0 are a no-op.
func WithScale(scale int) Option {
	return func(cfg *genConfig) {
		if scale > 0 {
			cfg.scale = scale
		}
	}
}
