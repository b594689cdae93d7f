package pathfinder

import (
	"context"
	"errors"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/somework/p2p-path-finder-sub001/graph"
	"github.com/somework/p2p-path-finder-sub001/materialize"
	"github.com/somework/p2p-path-finder-sub001/orderbook"
	"github.com/somework/p2p-path-finder-sub001/search"
)

// PlanRequest is one independent search request within a SearchMany
// batch: a target asset and the configuration to search it with.
type PlanRequest struct {
	TargetAsset string
	Config      Config
}

// ExecutionPlanService builds a conversion graph once and fans a batch
// of independent PlanRequests out across goroutines, each running its
// own search.Engine invocation against the shared immutable graph.Graph.
//
// Per-request OrderFilters are not applied in this path: SearchMany
// builds one shared graph from the book's full, unfiltered order set so
// that every request's engine invocation runs against the identical
// Graph value (the immutability §5 requires for safe concurrent
// invocations). A request needing its own filtered view should call
// PathSearchService.Search instead.
type ExecutionPlanService struct{}

// NewExecutionPlanService returns a ready-to-use ExecutionPlanService.
func NewExecutionPlanService() *ExecutionPlanService {
	return &ExecutionPlanService{}
}

// SearchMany builds the graph once from book, then runs requests
// concurrently (bounded by runtime.GOMAXPROCS(0)) via an
// errgroup.Group, returning one SearchOutcome per request in the same
// order as requests.
func (s *ExecutionPlanService) SearchMany(ctx context.Context, book *orderbook.Book, requests []PlanRequest) ([]SearchOutcome, error) {
	orders := book.Filtered()
	g, err := graph.NewBuilder().Build(orders)
	if err != nil {
		return nil, newError(KindInvalidInput, ErrInvalidInput, err, nil)
	}

	engine := search.NewEngine(g)
	outcomes := make([]SearchOutcome, len(requests))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, req := range requests {
		i, req := i, req
		eg.Go(func() error {
			outcome, err := runOneEngineSearch(egCtx, engine, req)
			if err != nil {
				return err
			}
			outcomes[i] = outcome

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

func runOneEngineSearch(ctx context.Context, engine *search.Engine, req PlanRequest) (SearchOutcome, error) {
	target := strings.ToUpper(strings.TrimSpace(req.TargetAsset))
	if target == "" {
		return SearchOutcome{}, newError(KindInvalidInput, ErrInvalidInput, errors.New("target asset must not be empty"), nil)
	}
	searchCfg, err := req.Config.searchConfig()
	if err != nil {
		return SearchOutcome{}, newError(KindInvalidInput, ErrInvalidInput, err, nil)
	}

	source := req.Config.spendAmount.Currency()
	candidates, guards, err := engine.Search(ctx, source, target, req.Config.spendAmount, searchCfg)
	if err != nil {
		if errors.Is(err, search.ErrGuardLimitExceeded) {
			return SearchOutcome{}, newError(KindGuardLimitExceeded, ErrGuardLimitExceeded, nil, &guards)
		}

		return SearchOutcome{}, newError(KindInvalidInput, ErrInvalidInput, err, nil)
	}

	materializer := materialize.NewLegMaterializer()
	evaluator := materialize.NewToleranceEvaluator()
	paths := make([]materialize.Path, 0, len(candidates))
	for _, candidate := range candidates {
		path, ok, err := materializer.Materialize(candidate, req.Config.spendAmount)
		if err != nil {
			return SearchOutcome{}, newError(KindInvalidInput, ErrInvalidInput, err, nil)
		}
		if !ok {
			continue
		}
		residual, ok, err := evaluator.Evaluate(path, req.Config.spendAmount, req.Config.tolerance)
		if err != nil {
			return SearchOutcome{}, newError(KindPrecisionViolation, ErrPrecisionViolation, err, nil)
		}
		if !ok {
			continue
		}
		path.ResidualTolerance = residual
		paths = append(paths, path)
	}

	return SearchOutcome{RequestID: uuid.New(), Paths: paths, Guards: guards}, nil
}
