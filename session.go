package cubesim

import (
	"fmt"
	"time"
)

// StatusFunc receives human-readable progress messages. busy is true
// while a long-running operation (a solve) is still in progress.
type StatusFunc func(message string, busy bool)

// Session owns one cube, its move history, and the sinks a presentation
// layer observes it through. There is no process-wide cube: callers
// construct sessions explicitly and a session is confined to a single
// goroutine.
type Session struct {
	cube    *Cube
	history []Move

	scrambler *Scrambler

	onStatus StatusFunc
	onStep   func(Step)

	solverOpts []SolverOption
}

// NewSession creates a session holding a solved cube. The scramble source
// is seeded from the clock; use SetScrambler for reproducible scrambles.
func NewSession(opts ...SolverOption) *Session {
	return &Session{
		cube:       New(),
		scrambler:  NewScrambler(time.Now().UnixNano()),
		solverOpts: opts,
	}
}

// SetStatusCallback sets the status sink.
func (s *Session) SetStatusCallback(fn StatusFunc) {
	s.onStatus = fn
}

// SetStepCallback sets the per-step sink used during solves.
func (s *Session) SetStepCallback(fn func(Step)) {
	s.onStep = fn
}

// SetScrambler replaces the scramble source, e.g. with a fixed seed.
func (s *Session) SetScrambler(sc *Scrambler) {
	s.scrambler = sc
}

// State returns an independent copy of the current cube.
func (s *Session) State() *Cube {
	return s.cube.Clone()
}

// SetState replaces the session's cube.
func (s *Session) SetState(c *Cube) {
	s.cube = c.Clone()
	s.history = nil
}

// History returns the moves applied since the last scramble, solve, or
// reset. It is narration data only; solving never consults it.
func (s *Session) History() []Move {
	out := make([]Move, len(s.history))
	copy(out, s.history)
	return out
}

// IsSolved reports whether the session's cube is solved.
func (s *Session) IsSolved() bool {
	return s.cube.IsSolved()
}

// Phase returns the detected solving phase of the current state.
func (s *Session) Phase() Phase {
	return s.cube.DetectPhase()
}

// Apply applies moves to the cube and records them in the history.
func (s *Session) Apply(moves ...Move) {
	s.cube.Apply(moves...)
	s.history = append(s.history, moves...)
}

// ApplyNotation parses and applies a move sequence, recording it in the
// history. Invalid notation leaves the state unchanged and is reported
// through the status sink as well as the returned error.
func (s *Session) ApplyNotation(text string) error {
	moves, err := ParseMoves(text)
	if err != nil {
		s.status(fmt.Sprintf("ignoring invalid move %q", text), false)
		return err
	}
	s.Apply(moves...)
	return nil
}

// Scramble applies n random quarter turns and clears the history.
// It returns the scramble sequence for display.
func (s *Session) Scramble(n int) []Move {
	moves := s.scrambler.ScrambleCube(s.cube, n)
	s.history = nil
	s.status(fmt.Sprintf("scrambled with %d moves", n), false)
	return moves
}

// Reset restores the solved state and clears the history.
func (s *Session) Reset() {
	s.cube = New()
	s.history = nil
	s.status("reset to solved", false)
}

// solverOptions returns the session's solver options plus a step callback
// that records solver moves in the history and forwards to the step sink.
func (s *Session) solverOptions() []SolverOption {
	opts := append([]SolverOption{}, s.solverOpts...)
	return append(opts, WithStepCallback(func(step Step) {
		s.history = append(s.history, step.Moves...)
		if s.onStep != nil {
			s.onStep(step)
		}
	}))
}

// SolveCross runs the cross phase against the session's cube. Steps are
// delivered through the step sink as they are produced and recorded in
// the history; the caller controls all pacing.
func (s *Session) SolveCross() PhaseResult {
	s.status("solving the white cross", true)

	result := NewCrossSolver(s.solverOptions()...).Solve(s.cube)

	if result.Complete {
		s.status("white cross complete", false)
	} else {
		s.status("white cross incomplete", false)
	}
	return result
}

// Solve runs the default pipeline (currently the cross phase only) and
// reports the overall outcome, which is incomplete until solvers for the
// remaining phases are registered.
func (s *Session) Solve() *SolveResult {
	s.status("solving", true)

	result := DefaultPipeline(s.solverOptions()...).Solve(s.cube)

	if result.Complete {
		s.status("cube solved", false)
	} else {
		s.status("solve incomplete: only the cross phase is implemented", false)
	}
	return result
}

func (s *Session) status(msg string, busy bool) {
	if s.onStatus != nil {
		s.onStatus(msg, busy)
	}
}
