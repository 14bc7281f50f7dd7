package solver

import "sudoku-engine/internal/strategies"

// SolveConfiguration determines which strategies are tried, in which order.
// A StepCap of zero means unlimited; otherwise the solve returns Stuck with
// its partial history once the cap is reached.
type SolveConfiguration struct {
	Strategies []strategies.Strategy
	StepCap    int
}

// WithAllStrategies returns a configuration with every strategy enabled in
// default order.
func WithAllStrategies() SolveConfiguration {
	return SolveConfiguration{Strategies: strategies.AllStrategies()}
}

// WithStrategies returns a configuration with the given strategies in the
// given order.
func WithStrategies(list []strategies.Strategy) SolveConfiguration {
	return SolveConfiguration{Strategies: list}
}
