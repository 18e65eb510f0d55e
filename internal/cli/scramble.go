package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubelab/cubesim"
)

var (
	scrambleMoves int
	scrambleSeed  int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate and apply a random scramble",
	Long: `Generate a random scramble of quarter turns, apply it to a solved cube,
and display the result.

Pass --seed to reproduce a scramble. The default move count comes from
the config file (scramble_moves).`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 0, "Number of scramble moves (default from config)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time-based)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	n := scrambleMoves
	if n <= 0 {
		n = cfg.ScrambleMoves
	}

	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log.WithField("seed", seed).WithField("moves", n).Debug("scrambling")

	cube := cubesim.New()
	scrambler := cubesim.NewScrambler(seed)
	moves := scrambler.ScrambleCube(cube, n)

	fmt.Printf("Scramble (%d moves, seed %d):\n", n, seed)
	fmt.Printf("  %s\n\n", cubesim.FormatMoves(moves))
	fmt.Println(RenderCube(cube))
	fmt.Printf("State: %s\n", cube.Serialize())

	return nil
}
