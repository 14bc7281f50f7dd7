package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/grid"
	"sudoku-engine/internal/puzzles"
	"sudoku-engine/pkg/config"
)

var (
	generateCount int
	generateSeed  int64
	generateStore bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate classic puzzles with unique solutions",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := generateSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		log.Debug().Int64("seed", seed).Int("count", generateCount).Msg("starting generation")

		var store *puzzles.Store
		if generateStore {
			cfg := config.Load()
			var err error
			store, err = puzzles.Open(cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("opening puzzle store: %w", err)
			}
			defer store.Close()
		}

		spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Suffix = " generating puzzles..."
		spin.Start()

		template := grid.EmptyClassic()
		generated := make([]string, 0, generateCount)
		for i := 0; i < generateCount; i++ {
			clues := generator.GeneratePuzzle(template, rng)
			key := make([]byte, len(clues))
			for idx, clue := range clues {
				key[idx] = byte('0' + clue)
			}
			generated = append(generated, string(key))

			if store != nil {
				if _, err := store.Save(context.Background(), "classic", string(key)); err != nil {
					spin.Stop()
					return fmt.Errorf("storing puzzle: %w", err)
				}
			}
		}

		spin.Stop()
		for _, puzzle := range generated {
			fmt.Println(puzzle)
		}
		color.Green("generated %d puzzles", len(generated))
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateCount, "count", "c", 1, "number of puzzles to generate")
	generateCmd.Flags().Int64VarP(&generateSeed, "seed", "s", 0, "random seed (0 = time-based)")
	generateCmd.Flags().BoolVar(&generateStore, "store", false, "save generated puzzles to the database")
}
