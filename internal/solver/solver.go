// Package solver drives the strategy catalogue against a grid until it is
// solved, stuck, or contradictory.
package solver

import (
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/strategies"
)

// Result is the terminal state of a solve.
type Result int

const (
	// Solved means every cell has a placed value.
	Solved Result = iota
	// Stuck means no configured strategy produced a deduction.
	Stuck
	// Contradiction means the grid was proven inconsistent.
	Contradiction
)

func (r Result) String() string {
	switch r {
	case Solved:
		return "solved"
	case Stuck:
		return "stuck"
	default:
		return "contradiction"
	}
}

// AppliedStep is one record of the solution path: the strategy that fired,
// the step it produced, and its description against the grid state at the
// time it was found.
type AppliedStep struct {
	Strategy    strategies.Strategy
	Step        strategies.Step
	Description string
}

// SolveDetails is the outcome of a solve: the terminal result and the
// ordered step history.
type SolveDetails struct {
	Result Result
	Steps  []AppliedStep
}

// Solve repeatedly applies the configured strategies to the grid, in order,
// until it is solved, no strategy fires, or a contradiction surfaces. Each
// iteration takes every step of the first strategy that produces any
// deduction and applies all of them before restarting from the front of
// the list.
func Solve(g *grid.Grid, config SolveConfiguration) SolveDetails {
	var history []AppliedStep

	for !g.IsSolved() {
		if config.StepCap > 0 && len(history) >= config.StepCap {
			return SolveDetails{Result: Stuck, Steps: history}
		}

		strategy, steps, contradiction := findSteps(g, config)
		if contradiction != nil {
			history = append(history, *contradiction)
			return SolveDetails{Result: Contradiction, Steps: history}
		}
		if len(steps) == 0 {
			return SolveDetails{Result: Stuck, Steps: history}
		}

		// Record descriptions against the pre-application grid, then apply
		// every deduction of every collected step.
		for _, step := range steps {
			history = append(history, AppliedStep{
				Strategy:    strategy,
				Step:        step,
				Description: step.Description(g),
			})
		}
		for _, step := range steps {
			for _, deduction := range step.Deductions(g) {
				if err := applyDeduction(g, deduction); err != nil {
					return SolveDetails{Result: Contradiction, Steps: history}
				}
			}
		}
	}

	return SolveDetails{Result: Solved, Steps: history}
}

// findSteps walks the strategy list and collects every step of the first
// strategy that produces one with deductions. A NoCandidatesForCell step
// aborts the search and is returned as the contradiction record.
func findSteps(g *grid.Grid, config SolveConfiguration) (strategies.Strategy, []strategies.Step, *AppliedStep) {
	for _, strategy := range config.Strategies {
		var steps []strategies.Step
		var contradiction *AppliedStep

		for step := range strategy.Find(g) {
			if _, ok := step.(strategies.NoCandidatesForCell); ok {
				contradiction = &AppliedStep{
					Strategy:    strategy,
					Step:        step,
					Description: step.Description(g),
				}
				break
			}
			if len(step.Deductions(g)) > 0 {
				steps = append(steps, step)
			}
		}

		if contradiction != nil {
			return strategy, nil, contradiction
		}
		if len(steps) > 0 {
			return strategy, steps, nil
		}
	}
	return strategies.Strategy{}, nil, nil
}

// applyDeduction mutates the grid with a single deduction. Eliminations are
// idempotent; placements fail only on genuine contradiction.
func applyDeduction(g *grid.Grid, deduction strategies.Deduction) error {
	if deduction.Kind == strategies.Placement {
		return g.PlaceValue(deduction.Cell, deduction.Value)
	}
	g.EliminateCandidate(deduction.Cell, deduction.Value)
	return nil
}
