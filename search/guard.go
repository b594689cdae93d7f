package search

// GuardLimits mirrors the limits a Config placed on one engine
// invocation.
type GuardLimits struct {
	Expansions      int   `json:"expansions"`
	VisitedStates   int   `json:"visited_states"`
	TimeBudgetMs    int64 `json:"time_budget_ms,omitempty"`
	TimeBudgetIsSet bool  `json:"-"`
}

// GuardMetrics are the counters an engine invocation actually reached.
type GuardMetrics struct {
	Expansions    int   `json:"expansions"`
	VisitedStates int   `json:"visited_states"`
	ElapsedMs     int64 `json:"elapsed_ms"`
}

// GuardBreached records which guard rails fired.
type GuardBreached struct {
	Expansions    bool `json:"expansions"`
	VisitedStates bool `json:"visited_states"`
	TimeBudget    bool `json:"time_budget"`
	Any           bool `json:"any"`
}

// SearchGuardReport is the immutable guard-rail accounting attached to
// every SearchOutcome, whether or not any guard fired.
type SearchGuardReport struct {
	Limits   GuardLimits   `json:"limits"`
	Metrics  GuardMetrics  `json:"metrics"`
	Breached GuardBreached `json:"breached"`
}

func buildGuardReport(cfg Config, expansions, visitedStates int, elapsedMs int64) SearchGuardReport {
	breached := GuardBreached{
		Expansions:    expansions >= cfg.maxExpansions,
		VisitedStates: visitedStates >= cfg.maxVisitedStates,
	}
	if cfg.timeBudgetMs > 0 {
		breached.TimeBudget = elapsedMs >= cfg.timeBudgetMs
	}
	breached.Any = breached.Expansions || breached.VisitedStates || breached.TimeBudget

	return SearchGuardReport{
		Limits: GuardLimits{
			Expansions:      cfg.maxExpansions,
			VisitedStates:   cfg.maxVisitedStates,
			TimeBudgetMs:    cfg.timeBudgetMs,
			TimeBudgetIsSet: cfg.timeBudgetMs > 0,
		},
		Metrics: GuardMetrics{
			Expansions:    expansions,
			VisitedStates: visitedStates,
			ElapsedMs:     elapsedMs,
		},
		Breached: breached,
	}
}
