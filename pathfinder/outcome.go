package pathfinder

import (
	"github.com/google/uuid"
	"github.com/somework/p2p-path-finder-sub001/materialize"
	"github.com/somework/p2p-path-finder-sub001/search"
)

// SearchOutcome is the immutable result of one PathSearchService.Search
// invocation: an ordered list of materialized paths plus the guard-rail
// accounting for the search that produced them.
type SearchOutcome struct {
	RequestID uuid.UUID
	Paths     []materialize.Path
	Guards    search.SearchGuardReport
}

// BestPath returns the first (lowest-cost) path, or false if Paths is
// empty.
func (o SearchOutcome) BestPath() (materialize.Path, bool) {
	if len(o.Paths) == 0 {
		return materialize.Path{}, false
	}

	return o.Paths[0], true
}
