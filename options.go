package cubesim

// DefaultAttemptBudget caps the number of attempts spent on a single
// cross edge before it is narrated as a failure.
const DefaultAttemptBudget = 20

// SolverOption configures a phase solver.
type SolverOption func(*solverConfig)

type solverConfig struct {
	budget    int
	snapshots bool
	onStep    func(Step)
}

func defaultSolverConfig() *solverConfig {
	return &solverConfig{
		budget:    DefaultAttemptBudget,
		snapshots: true,
	}
}

// WithAttemptBudget sets the per-edge attempt cap. Values below 1 are
// ignored.
func WithAttemptBudget(n int) SolverOption {
	return func(c *solverConfig) {
		if n >= 1 {
			c.budget = n
		}
	}
}

// WithSnapshots enables or disables per-step state snapshots.
// When enabled (default), every step carries a defensive copy of the cube
// for the presentation layer. Disable to reduce allocation in bulk runs.
func WithSnapshots(enabled bool) SolverOption {
	return func(c *solverConfig) {
		c.snapshots = enabled
	}
}

// WithStepCallback registers a callback invoked for each step as it is
// produced, before the solver proceeds. The presentation layer owns all
// pacing; the solver never sleeps.
func WithStepCallback(fn func(Step)) SolverOption {
	return func(c *solverConfig) {
		c.onStep = fn
	}
}
