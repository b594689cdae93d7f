package search

import (
	"context"
	"errors"
	"time"

	"github.com/somework/p2p-path-finder-sub001/graph"
	"github.com/somework/p2p-path-finder-sub001/money"
)

// ErrGuardLimitExceeded is returned by Engine.Search when
// Config.throwOnGuardLimit is set and any guard rail fired during the
// invocation. The caller can still recover the partial result set and
// SearchGuardReport from the returned values.
var ErrGuardLimitExceeded = errors.New("search: guard limit exceeded")

// Engine runs PathSearchEngine invocations against one immutable
// graph.Graph. A single Engine value may be shared by any number of
// concurrent Search calls; all state is invocation-local.
type Engine struct {
	graph  *graph.Graph
	pruner graph.Pruner
}

// NewEngine returns an Engine bound to g.
func NewEngine(g *graph.Graph) *Engine {
	return &Engine{graph: g, pruner: graph.NewPruner()}
}

// Search runs one best-first search from source to target for spend,
// returning up to cfg.TopK() candidates in ascending order plus a guard
// report. Cancellation via ctx is checked at the same cadence as the
// numeric guards (non-preemptive mid-expansion).
func (e *Engine) Search(ctx context.Context, source, target string, spend money.Money, cfg Config) ([]CandidatePath, SearchGuardReport, error) {
	start := time.Now()
	reg := newRegistry()
	openQ := newOpenQueue(cfg.order)
	resultQ := newResultQueue(cfg.order, cfg.topK)

	expansions := 0
	visitedStates := 0
	var nextInsertion uint64 = 1

	root := &searchState{
		node:          source,
		cost:          decimalOne(),
		product:       decimalOne(),
		hops:          0,
		desiredAmount: moneyPtr(spend),
		visited:       map[string]struct{}{source: {}},
		insertionOrd:  0,
	}
	rootKey, err := root.orderKey()
	if err != nil {
		return nil, SearchGuardReport{}, err
	}
	openQ.pushState(root, rootKey)

loop:
	for openQ.Len() > 0 {
		elapsed := time.Since(start).Milliseconds()
		if expansions >= cfg.maxExpansions || visitedStates >= cfg.maxVisitedStates ||
			(cfg.timeBudgetMs > 0 && elapsed >= cfg.timeBudgetMs) {
			break
		}
		select {
		case <-ctxDone(ctx):
			break loop
		default:
		}

		state, key, ok := openQ.popState()
		if !ok {
			break
		}

		isRoot := state.hops == 0 && len(state.edges) == 0
		if !isRoot {
			rec := searchStateRecord{cost: state.cost, hops: state.hops, signature: state.signature()}
			if reg.dominated(state.node, rec) {
				continue
			}
		}

		if worst, full := resultQ.max(); full && cfg.order.Compare(key, worst) > 0 {
			continue
		}

		expansions++

		node := e.graph.Node(state.node)
		if node == nil {
			continue
		}

		for _, edge := range node.Edges {
			if state.hasVisited(edge.To) {
				continue
			}
			if state.hops+1 > cfg.maxHops {
				continue
			}

			feasible, ok := e.feasibleRangeFor(state, edge, spend, cfg)
			if !ok {
				continue
			}

			nextRange, err := calculateNextRange(edge, feasible)
			if err != nil {
				continue
			}

			heuristic, _ := cfg.tolerance.Heuristic()
			amplifier, err := toleranceAmplifier(heuristic)
			if err != nil {
				continue
			}
			invRate, err := edge.Rate.Invert()
			if err != nil {
				continue
			}
			newCost, err := mulThree(state.cost, amplifier, invRate.Value())
			if err != nil {
				continue
			}
			newProduct, err := mulDecimal(state.product, edge.Rate.Value())
			if err != nil {
				continue
			}

			childEdges := append(append([]PathEdge(nil), state.edges...), PathEdge{
				From:           edge.From,
				To:             edge.To,
				Order:          edge.Order,
				Rate:           edge.Rate,
				OrderSide:      edge.Side,
				ConversionRate: edge.Rate.Value(),
			})
			child := &searchState{
				node:          edge.To,
				cost:          newCost,
				product:       newProduct,
				hops:          state.hops + 1,
				edges:         childEdges,
				amountRange:   nextRange,
				desiredAmount: state.desiredAmount,
				visited:       state.withVisited(edge.To),
				insertionOrd:  nextInsertion,
			}
			nextInsertion++

			rec := searchStateRecord{cost: child.cost, hops: child.hops, signature: child.signature()}
			accepted, delta := reg.tryInsert(child.node, rec)
			visitedStates += delta
			if !accepted {
				continue
			}

			childKey, err := child.orderKey()
			if err != nil {
				continue
			}
			openQ.pushState(child, childKey)

			if child.node == target && child.hops >= cfg.minHops {
				resultQ.offer(child.toCandidate(), childKey)
			}
		}
	}

	elapsed := time.Since(start).Milliseconds()
	report := buildGuardReport(cfg, expansions, visitedStates, elapsed)
	results := resultQ.sorted()

	if cfg.throwOnGuardLimit && report.Breached.Any {
		return results, report, ErrGuardLimitExceeded
	}

	return results, report, nil
}

// feasibleRangeFor computes the amount range available to traverse edge
// from state: for the bootstrap state (no amountRange yet) it consults
// OrderSpendAnalyzer against the original spend; otherwise it intersects
// the carried amountRange with the edge's pruned capacity.
func (e *Engine) feasibleRangeFor(state *searchState, edge *graph.Edge, spend money.Money, cfg Config) (*AmountRange, bool) {
	if state.amountRange == nil {
		seed, ok, err := AnalyzeEdgeSpend(spend, cfg.tolerance, edge)
		if err != nil || !ok {
			return nil, false
		}

		return &AmountRange{Min: seed.Net, Max: seed.Net}, true
	}

	return edgeSupportsAmount(edge, state.amountRange, e.pruner)
}

func ctxDone(ctx context.Context) <-chan struct{} {
	if ctx == nil {
		return nil
	}

	return ctx.Done()
}
