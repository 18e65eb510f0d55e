package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cubelab/cubesim"
	"github.com/cubelab/cubesim/internal/storage"
)

var (
	solveState    string
	solveScramble string
	solveSeed     int64
	solveRecord   bool
	solveBudget   int
	solveShowNet  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the narrated white-cross solver",
	Long: `Solve the white cross on a scrambled cube, narrating each step.

The starting position comes from --state, or from --scramble applied to a
solved cube, or from a fresh random scramble when neither is given. Each
solver step prints the target edge, what the solver did, and the moves it
applied.

Use --record to store the session and its steps in the history database.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveState, "state", "", "Starting cube state (54-character serialized string)")
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble sequence to apply to a solved cube")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Random seed for generated scrambles (0 = time-based)")
	solveCmd.Flags().BoolVar(&solveRecord, "record", false, "Record the session in the history database")
	solveCmd.Flags().IntVar(&solveBudget, "budget", 0, "Attempt budget per edge (default from config)")
	solveCmd.Flags().BoolVar(&solveShowNet, "show", false, "Render the cube after each step")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cube, scramble, err := solveStartingCube()
	if err != nil {
		return err
	}

	startState := cube.Serialize()

	fmt.Println("Starting position:")
	if scramble != "" {
		fmt.Printf("  Scramble: %s\n", scramble)
	}
	fmt.Println()
	fmt.Println(RenderCube(cube))

	budget := solveBudget
	if budget <= 0 {
		budget = cfg.AttemptBudget
	}

	solver := cubesim.NewCrossSolver(
		cubesim.WithAttemptBudget(budget),
		cubesim.WithSnapshots(true),
	)

	result := solver.Solve(cube)

	fmt.Printf("Solving: %s\n\n", result.Phase.DisplayName())
	for i, step := range result.Steps {
		printStep(i, step)
	}

	fmt.Println()
	if result.Complete {
		fmt.Printf("White cross complete in %d moves.\n", len(result.Moves()))
	} else {
		fmt.Println("White cross incomplete.")
	}
	fmt.Println()
	fmt.Println(RenderCube(cube))
	fmt.Printf("State: %s\n", cube.Serialize())
	fmt.Printf("Phase: %s\n", cube.DetectPhase().DisplayName())

	if solveRecord {
		id, err := recordSession(scramble, startState, cube.Serialize(), result)
		if err != nil {
			return err
		}
		fmt.Printf("\nRecorded session: %s\n", id)
		fmt.Printf("Show it later with: cubesim history show %s\n", id)
	}

	return nil
}

func printStep(i int, step cubesim.Step) {
	label := fmt.Sprintf("white-%s", step.Target.Name())
	switch step.Kind {
	case cubesim.StepPlaced:
		if len(step.Moves) == 0 {
			fmt.Printf("  [%d] %s: %s\n", i+1, label, step.Description)
		} else {
			fmt.Printf("  [%d] %s: %s  (%s)\n", i+1, label, step.Description, cubesim.FormatMoves(step.Moves))
		}
	case cubesim.StepFailed:
		fmt.Printf("  [%d] %s: FAILED - %s\n", i+1, label, step.Description)
	default:
		fmt.Printf("  [%d] %s: %s  (%s)\n", i+1, label, step.Description, cubesim.FormatMoves(step.Moves))
	}

	if solveShowNet && step.State != nil {
		fmt.Println()
		fmt.Println(RenderCube(step.State))
	}
}

// solveStartingCube builds the cube to solve and a human-readable scramble
// description.
func solveStartingCube() (*cubesim.Cube, string, error) {
	if solveState != "" {
		cube, err := cubesim.Deserialize(solveState)
		if err != nil {
			return nil, "", fmt.Errorf("invalid --state: %w", err)
		}
		return cube, "", nil
	}

	cube := cubesim.New()

	if solveScramble != "" {
		moves, err := cubesim.ParseMoves(solveScramble)
		if err != nil {
			return nil, "", fmt.Errorf("invalid --scramble: %w", err)
		}
		cube.Apply(moves...)
		return cube, cubesim.FormatMoves(moves), nil
	}

	seed := solveSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	scrambler := cubesim.NewScrambler(seed)
	moves := scrambler.ScrambleCube(cube, cfg.ScrambleMoves)
	log.WithField("seed", seed).Debug("generated scramble")

	return cube, cubesim.FormatMoves(moves), nil
}

func recordSession(scramble, startState, endState string, result cubesim.PhaseResult) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)
	steps := storage.NewStepRepository(db)

	id, err := sessions.Create(scramble, startState, "")
	if err != nil {
		return "", err
	}

	records := make([]storage.StepRecord, len(result.Steps))
	for i, step := range result.Steps {
		var statePtr *string
		if step.State != nil {
			s := step.State.Serialize()
			statePtr = &s
		}
		records[i] = storage.StepRecord{
			Seq:         i,
			Target:      step.Target.Name(),
			Kind:        step.Kind.String(),
			Description: step.Description,
			MovesText:   cubesim.FormatMoves(step.Moves),
			StateText:   statePtr,
		}
	}

	if err := steps.CreateBatch(id, records); err != nil {
		return "", err
	}

	if err := sessions.End(id, endState, result.Complete); err != nil {
		return "", err
	}

	return id, nil
}
