package strategies

import (
	"fmt"

	"sudoku-engine/internal/grid"
)

// DeductionKind discriminates the two conclusions a strategy can reach.
type DeductionKind int

const (
	// Placement says a value can be written into a cell.
	Placement DeductionKind = iota
	// Elimination says a value can be removed from a cell's candidates.
	Elimination
)

// Deduction is a single conclusion produced by a strategy step.
type Deduction struct {
	Kind  DeductionKind
	Cell  int
	Value int
}

// Place builds a placement deduction.
func Place(cell, value int) Deduction {
	return Deduction{Kind: Placement, Cell: cell, Value: value}
}

// Eliminate builds an elimination deduction.
func Eliminate(cell, value int) Deduction {
	return Deduction{Kind: Elimination, Cell: cell, Value: value}
}

func (d Deduction) String() string {
	if d.Kind == Placement {
		return fmt.Sprintf("place %d in cell %d", d.Value, d.Cell)
	}
	return fmt.Sprintf("eliminate %d from cell %d", d.Value, d.Cell)
}

// Step is a single application of a strategy, carrying enough structure to
// rederive its deductions from the grid and to describe itself to a human.
type Step interface {
	// Deductions rederives the conclusions of this step against the given
	// grid. Eliminations whose target candidates are already gone are
	// omitted; placements are always returned, and re-placing a value the
	// grid already holds is a no-op, so re-deriving after partial
	// application is safe.
	Deductions(g *grid.Grid) []Deduction
	// Description renders a one-line human-readable account of the step.
	Description(g *grid.Grid) string
}

// NoCandidatesForCell is the contradiction signal: an empty cell has no
// candidates left. It is the only step with no deductions.
type NoCandidatesForCell struct {
	Cell int
}

func (s NoCandidatesForCell) Deductions(*grid.Grid) []Deduction { return nil }

func (s NoCandidatesForCell) Description(g *grid.Grid) string {
	return fmt.Sprintf("No candidates remain for %s", g.CellName(s.Cell))
}

// eliminationsFor returns eliminations of value from the cells which still
// carry it.
func eliminationsFor(g *grid.Grid, cells grid.CellSet, value int) []Deduction {
	var deductions []Deduction
	for _, cell := range cells.Cells() {
		if g.HasCandidate(cell, value) {
			deductions = append(deductions, Eliminate(cell, value))
		}
	}
	return deductions
}
