// Package orderbook defines the Order domain entity, its asset pair and
// fee policy collaborators, and the OrderBook container the engine's
// graph builder consumes.
package orderbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/somework/p2p-path-finder-sub001/money"
)

// Side identifies which direction of an AssetPair an Order trades.
type Side int

const (
	// Buy means the order's owner buys base with quote: a taker moves
	// base in and receives quote.
	Buy Side = iota
	// Sell means the order's owner sells base for quote: a taker moves
	// quote in and receives base.
	Sell
)

// String renders the Side for diagnostics and signatures.
func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// ErrInvalidSide indicates a Side value outside {Buy, Sell}.
var ErrInvalidSide = errors.New("orderbook: invalid side")

// ErrAssetPairMismatch indicates bounds or rate currencies do not agree
// with the order's declared AssetPair, per the consistency rules in
// Order's construction contract.
var ErrAssetPairMismatch = errors.New("orderbook: asset pair mismatch")

// ErrEmptyAsset indicates an AssetPair leg was blank.
var ErrEmptyAsset = errors.New("orderbook: asset code must not be empty")

// ErrSameAsset indicates an AssetPair's base equals its quote.
var ErrSameAsset = errors.New("orderbook: base and quote must differ")

// AssetPair names the two currencies an Order trades between.
type AssetPair struct {
	Base  string
	Quote string
}

// NewAssetPair validates and normalizes an AssetPair.
func NewAssetPair(base, quote string) (AssetPair, error) {
	b := strings.ToUpper(strings.TrimSpace(base))
	q := strings.ToUpper(strings.TrimSpace(quote))
	if b == "" || q == "" {
		return AssetPair{}, ErrEmptyAsset
	}
	if b == q {
		return AssetPair{}, fmt.Errorf("%w: %s", ErrSameAsset, b)
	}

	return AssetPair{Base: b, Quote: q}, nil
}

// Order is an immutable offer to trade one side of an AssetPair at an
// effective rate, within declared bounds, subject to an optional fee
// policy.
type Order struct {
	id            uuid.UUID
	side          Side
	pair          AssetPair
	bounds        money.OrderBounds
	effectiveRate money.ExchangeRate
	feePolicy     FeePolicy
}

// Option customizes an Order at construction time.
type Option func(*Order)

// WithOrderID overrides the auto-generated correlation identifier.
// Panics on the nil UUID since a caller that reaches for this option is
// asserting a specific, meaningful ID.
func WithOrderID(id uuid.UUID) Option {
	if id == uuid.Nil {
		panic("orderbook: WithOrderID(uuid.Nil)")
	}

	return func(o *Order) { o.id = id }
}

// WithFeePolicy attaches a FeePolicy. A nil policy is a no-op (the order
// carries no fee hook, matching a bare construction).
func WithFeePolicy(fp FeePolicy) Option {
	return func(o *Order) {
		if fp != nil {
			o.feePolicy = fp
		}
	}
}

// NewOrder constructs an Order, validating that bounds.currency equals
// pair.Base and that effectiveRate.Base/Quote match pair.Base/Quote.
func NewOrder(side Side, pair AssetPair, bounds money.OrderBounds, rate money.ExchangeRate, opts ...Option) (Order, error) {
	if side != Buy && side != Sell {
		return Order{}, fmt.Errorf("%w: %d", ErrInvalidSide, side)
	}
	if bounds.Min().Currency() != pair.Base {
		return Order{}, fmt.Errorf("%w: bounds currency %s != base %s", ErrAssetPairMismatch, bounds.Min().Currency(), pair.Base)
	}
	if rate.Base() != pair.Base || rate.Quote() != pair.Quote {
		return Order{}, fmt.Errorf("%w: rate %s/%s != pair %s/%s", ErrAssetPairMismatch, rate.Base(), rate.Quote(), pair.Base, pair.Quote)
	}
	o := Order{
		id:            uuid.New(),
		side:          side,
		pair:          pair,
		bounds:        bounds,
		effectiveRate: rate,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o, nil
}

// ID returns the order's correlation identifier.
func (o Order) ID() uuid.UUID { return o.id }

// Side returns BUY or SELL.
func (o Order) Side() Side { return o.side }

// Pair returns the order's asset pair.
func (o Order) Pair() AssetPair { return o.pair }

// Bounds returns the order's base-currency min/max fill bounds.
func (o Order) Bounds() money.OrderBounds { return o.bounds }

// EffectiveRate returns the order's base->quote conversion rate.
func (o Order) EffectiveRate() money.ExchangeRate { return o.effectiveRate }

// FeePolicy returns the order's fee hook, or nil if none was attached.
func (o Order) FeePolicy() FeePolicy { return o.feePolicy }

// From returns the currency a taker moves into this order (the edge's
// source currency), per §3.6: BUY edges run base->quote, SELL edges run
// quote->base.
func (o Order) From() string {
	if o.side == Buy {
		return o.pair.Base
	}

	return o.pair.Quote
}

// To returns the currency a taker receives from this order.
func (o Order) To() string {
	if o.side == Buy {
		return o.pair.Quote
	}

	return o.pair.Base
}

// CalculateQuoteAmount converts a base-denominated amount into quote
// using the order's effective rate.
func (o Order) CalculateQuoteAmount(base money.Money) (money.Money, error) {
	return o.effectiveRate.Convert(base)
}
