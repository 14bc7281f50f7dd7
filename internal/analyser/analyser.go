// Package analyser classifies puzzles by the strategies their solve
// requires: per-group step counts and criteria checks over solve outcomes.
package analyser

import (
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/solver"
	"sudoku-engine/internal/strategies"
)

// StepsToSolve determines how many grouped "steps" are needed to solve the
// puzzle. A single step finds the first group containing a technique that
// applies, collects every deduction from every technique in that group, and
// applies them all simultaneously. Returns ok=false if the puzzle cannot be
// finished with the given groups.
func StepsToSolve(g *grid.Grid, groups [][]strategies.Strategy) ([]int, bool) {
	working := g.Clone()
	stepsTaken := make([]int, len(groups))

outer:
	for !working.IsSolved() {
		for idx, group := range groups {
			var deductions []strategies.Deduction
			for _, strategy := range group {
				for step := range strategy.Find(working) {
					deductions = append(deductions, step.Deductions(working)...)
				}
			}
			if len(deductions) == 0 {
				continue
			}

			for _, deduction := range deductions {
				if deduction.Kind == strategies.Placement {
					if err := working.PlaceValue(deduction.Cell, deduction.Value); err != nil {
						return nil, false
					}
				} else {
					working.EliminateCandidate(deduction.Cell, deduction.Value)
				}
			}
			stepsTaken[idx]++
			continue outer
		}
		break
	}

	if !working.IsSolved() {
		return nil, false
	}
	return stepsTaken, true
}

// Predicate is a constraint over the outcome of a solve.
type Predicate func(solver.SolveDetails) bool

// Criteria pairs a solve configuration with constraints that its outcome
// must meet.
type Criteria struct {
	Configuration solver.SolveConfiguration
	Constraints   []Predicate
}

// SolvableWith requires the puzzle to be solved by the configuration.
func SolvableWith(configuration solver.SolveConfiguration) Criteria {
	return Criteria{
		Configuration: configuration,
		Constraints:   []Predicate{solvable},
	}
}

// NotSolvableWith requires the puzzle to resist the configuration.
func NotSolvableWith(configuration solver.SolveConfiguration) Criteria {
	return Criteria{
		Configuration: configuration,
		Constraints:   []Predicate{unsolvable},
	}
}

// MeetsCriteria solves a copy of the grid and checks every constraint.
func MeetsCriteria(g *grid.Grid, criteria Criteria) bool {
	details := solver.Solve(g.Clone(), criteria.Configuration)
	for _, constraint := range criteria.Constraints {
		if !constraint(details) {
			return false
		}
	}
	return true
}

func solvable(details solver.SolveDetails) bool {
	return details.Result == solver.Solved
}

func unsolvable(details solver.SolveDetails) bool {
	return details.Result != solver.Solved
}
