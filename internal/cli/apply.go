package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cubelab/cubesim"
)

var applyState string

var applyCmd = &cobra.Command{
	Use:   "apply [moves...]",
	Short: "Apply a move sequence to a cube",
	Long: `Apply a sequence of moves in standard notation and display the result.

Moves use face letters U, D, L, R, F, B with an optional ' for
counterclockwise or 2 for a half turn, e.g.:

  cubesim apply "R U R' U'"
  cubesim apply R U2 F'

By default the sequence is applied to a solved cube. Use --state to start
from a serialized 54-character state instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyState, "state", "", "Starting cube state (54-character serialized string)")
}

func runApply(cmd *cobra.Command, args []string) error {
	cube, err := startingCube(applyState)
	if err != nil {
		return err
	}

	notation := strings.Join(args, " ")
	moves, err := cubesim.ParseMoves(notation)
	if err != nil {
		return err
	}

	log.WithField("moves", len(moves)).Debug("applying sequence")
	cube.Apply(moves...)

	fmt.Printf("Applied: %s\n\n", cubesim.FormatMoves(moves))
	fmt.Println(RenderCube(cube))
	fmt.Printf("State: %s\n", cube.Serialize())
	fmt.Printf("Phase: %s\n", cube.DetectPhase().DisplayName())

	return nil
}

// startingCube builds a cube from a serialized state, or a solved cube when
// the state is empty.
func startingCube(state string) (*cubesim.Cube, error) {
	if state == "" {
		return cubesim.New(), nil
	}
	cube, err := cubesim.Deserialize(state)
	if err != nil {
		return nil, fmt.Errorf("invalid --state: %w", err)
	}
	return cube, nil
}
