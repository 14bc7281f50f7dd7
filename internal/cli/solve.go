package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/solver"
	"sudoku-engine/internal/strategies"
)

var solveVariant string

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle...]",
	Short: "Solve puzzles with human-style techniques",
	Long: `Solve one or more puzzles given as one character per cell (81 for the
9x9 variants, 36 for classic6; digits for
clues, any other character for empty cells). With no arguments, puzzles are
read from standard input, one per line.

For each puzzle the solver prints the reasoning path, the terminal result,
and the final grid. If the basic techniques stall, the solver reports which
single advanced step would unlock a singles-only finish.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs := args
		if len(inputs) == 0 {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				if line := scanner.Text(); line != "" {
					inputs = append(inputs, line)
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading puzzles: %w", err)
			}
		}

		for _, input := range inputs {
			if err := solveOne(input); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVar(&solveVariant, "variant", "classic",
		"puzzle variant (classic, classic6, nonconsecutive, diagonal-nonconsecutive)")
}

func emptyGridForVariant(variant string) (*grid.Grid, error) {
	switch variant {
	case "classic":
		return grid.EmptyClassic(), nil
	case "classic6":
		return grid.EmptyClassic6(), nil
	case "nonconsecutive":
		return grid.EmptyNonconsecutive(), nil
	case "diagonal-nonconsecutive":
		return grid.EmptyDiagonalNonconsecutive(), nil
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
}

func solveOne(input string) error {
	empty, err := emptyGridForVariant(solveVariant)
	if err != nil {
		return err
	}

	g, err := grid.FromString(empty, input)
	if err != nil {
		color.Red("invalid puzzle: %v", err)
		return nil
	}

	fmt.Printf("Initial grid:\n%s\n\n", g)

	basics := g.Clone()
	details := solver.Solve(g, solver.WithAllStrategies())
	for _, step := range details.Steps {
		fmt.Printf("  - %s\n", step.Description)
	}

	switch details.Result {
	case solver.Solved:
		color.Green("Result: solved in %d steps", len(details.Steps))
	case solver.Stuck:
		color.Yellow("Result: stuck after %d steps", len(details.Steps))
	default:
		color.Red("Result: contradiction after %d steps", len(details.Steps))
	}
	reportUnlockingSteps(basics)

	fmt.Printf("\nFinal grid:\n%s\n\n", g)
	return nil
}

// reportUnlockingSteps runs singles on g and, if they stall, lists advanced
// steps which, applied to the stalled grid, let singles finish the puzzle.
// It modifies g.
func reportUnlockingSteps(g *grid.Grid) {
	singles := solver.WithStrategies([]strategies.Strategy{
		{Kind: strategies.KindFullHouse},
		{Kind: strategies.KindHiddenSingle},
		{Kind: strategies.KindNakedSingle},
	})
	if solver.Solve(g, singles).Result != solver.Stuck {
		return
	}

	for _, strategy := range strategies.AllStrategies() {
		for step := range strategy.Find(g) {
			if len(step.Deductions(g)) == 0 {
				continue
			}

			trial := g.Clone()
			applicable := true
			for _, deduction := range step.Deductions(g) {
				if deduction.Kind == strategies.Placement {
					if err := trial.PlaceValue(deduction.Cell, deduction.Value); err != nil {
						applicable = false
						break
					}
				} else {
					trial.EliminateCandidate(deduction.Cell, deduction.Value)
				}
			}
			if !applicable {
				continue
			}

			if solver.Solve(trial, singles).Result == solver.Solved {
				fmt.Printf("  unlocks singles: %s\n", step.Description(g))
			}
		}
	}
}
