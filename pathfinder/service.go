package pathfinder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/somework/p2p-path-finder-sub001/graph"
	"github.com/somework/p2p-path-finder-sub001/materialize"
	"github.com/somework/p2p-path-finder-sub001/orderbook"
	"github.com/somework/p2p-path-finder-sub001/search"
)

// PathSearchService runs the full pipeline — filter, build graph,
// search, materialize, evaluate — for one request at a time, coalescing
// concurrent identical requests against the same book revision via a
// singleflight.Group.
type PathSearchService struct {
	group singleflight.Group
}

// NewPathSearchService returns a ready-to-use PathSearchService.
func NewPathSearchService() *PathSearchService {
	return &PathSearchService{}
}

// Search filters book's orders, builds the conversion graph, runs the
// search engine toward targetAsset, and materializes + evaluates each
// surviving candidate into a SearchOutcome.
func (s *PathSearchService) Search(ctx context.Context, book *orderbook.Book, config Config, targetAsset string) (SearchOutcome, error) {
	target := strings.ToUpper(strings.TrimSpace(targetAsset))
	if target == "" {
		return SearchOutcome{}, newError(KindInvalidInput, ErrInvalidInput, errors.New("target asset must not be empty"), nil)
	}

	key := fmt.Sprintf("%d|%s|%s", book.Revision(), config.Digest(), target)
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		return runSearch(ctx, book, config, target)
	})
	if err != nil {
		return SearchOutcome{}, err
	}

	return v.(SearchOutcome), nil
}

func runSearch(ctx context.Context, book *orderbook.Book, config Config, target string) (SearchOutcome, error) {
	orders := book.Filtered(config.filters...)
	g, err := graph.NewBuilder().Build(orders)
	if err != nil {
		return SearchOutcome{}, newError(KindInvalidInput, ErrInvalidInput, err, nil)
	}

	searchCfg, err := config.searchConfig()
	if err != nil {
		return SearchOutcome{}, newError(KindInvalidInput, ErrInvalidInput, err, nil)
	}

	source := config.spendAmount.Currency()
	engine := search.NewEngine(g)
	candidates, guards, err := engine.Search(ctx, source, target, config.spendAmount, searchCfg)
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
		path, ok, err := materializer.Materialize(candidate, config.spendAmount)
		if err != nil {
			return SearchOutcome{}, newError(KindInvalidInput, ErrInvalidInput, err, nil)
		}
		if !ok {
			continue
		}
		residual, ok, err := evaluator.Evaluate(path, config.spendAmount, config.tolerance)
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
