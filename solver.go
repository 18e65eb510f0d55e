package cubesim

import "fmt"

// StepKind classifies a solution step.
type StepKind int

const (
	// StepPlaced records that a target edge is correctly seated.
	StepPlaced StepKind = iota

	// StepProgress records an intermediate move sequence that advanced a
	// target edge toward its slot.
	StepProgress

	// StepFailed records that a target edge could not be placed.
	StepFailed
)

func (k StepKind) String() string {
	switch k {
	case StepPlaced:
		return "placed"
	case StepProgress:
		return "progress"
	case StepFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Step is the externally observable unit of solving work: one narrated
// attempt with the moves just applied and an optional state snapshot.
// The snapshot is a defensive copy; rendering a past step can never
// observe a later mutation.
type Step struct {
	Target      Color // side color of the cross edge being worked
	Kind        StepKind
	Description string
	Moves       []Move
	State       *Cube // snapshot after Moves, nil if snapshots are disabled
}

// PhaseResult is the outcome of one solving phase.
type PhaseResult struct {
	Phase    Phase
	Steps    []Step
	Complete bool
}

// Moves returns every move the phase applied, in order.
func (r PhaseResult) Moves() []Move {
	var moves []Move
	for _, s := range r.Steps {
		moves = append(moves, s.Moves...)
	}
	return moves
}

// PhaseSolver solves one phase of the layer-by-layer method. Only the
// white cross ships with a real implementation; corners, middle-layer
// edges, and the last layer are extension points: implement this
// interface and register the solver with a Pipeline.
type PhaseSolver interface {
	// Phase names the phase this solver completes.
	Phase() Phase

	// Solve advances the cube through the phase, narrating each attempt.
	// It must not panic on unsolvable input: an incomplete phase is
	// reported through the result, never through an error.
	Solve(c *Cube) PhaseResult
}

// CrossSolver places the four white edges on the D face, narrating every
// attempt. It uses a lift-and-insert reduction: any misplaced edge is
// first brought to the top layer with white facing up, aligned over its
// home face with U turns, and inserted with a double turn of that face.
// Sequences are chosen so that already-seated cross edges are never
// disturbed.
type CrossSolver struct {
	budget    int
	snapshots bool
	onStep    func(Step)
}

// NewCrossSolver creates a cross solver with the given options.
func NewCrossSolver(opts ...SolverOption) *CrossSolver {
	cfg := defaultSolverConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &CrossSolver{
		budget:    cfg.budget,
		snapshots: cfg.snapshots,
		onStep:    cfg.onStep,
	}
}

// Phase implements PhaseSolver.
func (s *CrossSolver) Phase() Phase {
	return PhaseWhiteCross
}

// Solve works the four cross edges in F, R, B, L order. Each attempt
// applies one short sequence and emits one step; an edge that cannot be
// placed within the attempt budget is narrated as a failure and the
// solver moves on to the next edge.
func (s *CrossSolver) Solve(c *Cube) PhaseResult {
	result := PhaseResult{Phase: PhaseWhiteCross}

	for _, side := range sideFaces {
		result.Steps = append(result.Steps, s.solveEdge(c, side)...)
	}

	result.Complete = c.IsCrossComplete()
	return result
}

// solveEdge places the white edge belonging to one side face.
func (s *CrossSolver) solveEdge(c *Cube, side CubeFace) []Step {
	target := faceToSolvedColor(side)
	var steps []Step

	emit := func(kind StepKind, moves []Move, format string, args ...interface{}) {
		step := Step{
			Target:      target,
			Kind:        kind,
			Description: fmt.Sprintf(format, args...),
			Moves:       moves,
		}
		if s.snapshots {
			step.State = c.Clone()
		}
		steps = append(steps, step)
		if s.onStep != nil {
			s.onStep(step)
		}
	}

	for attempt := 0; attempt < s.budget; attempt++ {
		if c.IsCrossEdgeSeated(side) {
			if attempt == 0 {
				emit(StepPlaced, nil, "white-%s edge already in place", target.Name())
			} else {
				emit(StepPlaced, nil, "white-%s edge placed", target.Name())
			}
			return steps
		}

		loc, err := FindEdge(c, White, target)
		if err != nil {
			emit(StepFailed, nil, "could not locate white-%s edge: %v", target.Name(), err)
			return steps
		}

		moves, desc := s.classify(c, loc, side, target)
		if moves == nil {
			emit(StepFailed, nil, "white-%s edge: no applicable move from its current position", target.Name())
			return steps
		}

		c.Apply(moves...)
		emit(StepProgress, moves, "white-%s edge: %s", target.Name(), desc)
	}

	if c.IsCrossEdgeSeated(side) {
		emit(StepPlaced, nil, "white-%s edge placed", target.Name())
	} else {
		emit(StepFailed, nil, "gave up on white-%s edge after %d attempts", target.Name(), s.budget)
	}
	return steps
}

// classify inspects where the target edge sits and returns the one short
// sequence for its zone, along with a narration fragment.
func (s *CrossSolver) classify(c *Cube, loc EdgeLocation, side CubeFace, target Color) ([]Move, string) {
	whiteAt, other, ok := loc.half(c, White)
	if !ok {
		return nil, ""
	}
	home := cubeFaceToMoveFace(side)

	switch {
	case loc.touches(CubeFaceU):
		if whiteAt.face == CubeFaceU {
			// Top layer, white facing up: align over the home face with U
			// turns, then insert with a double turn. The double turn only
			// disturbs the edge's own slot.
			moves := uAlignMoves(other.face, side)
			moves = append(moves, Move{Face: home, Turn: CW}, Move{Face: home, Turn: CW})
			return moves, fmt.Sprintf("align on top and insert with %s %s", home, home)
		}
		// Top layer, flipped (white facing sideways): park it above the
		// home face, then drop it into the middle layer. The next attempt
		// lifts it back out with white facing up.
		moves := uAlignMoves(whiteAt.face, side)
		moves = append(moves, Move{Face: home, Turn: CW})
		return moves, "flipped on top; rotate into the middle layer to reorient"

	case loc.touches(CubeFaceD):
		// Bottom layer but wrong slot or orientation: a double turn of the
		// slot's side face lifts the edge to the top layer. The slot being
		// vacated cannot hold a seated cross edge.
		slot := whiteAt.face
		if whiteAt.face == CubeFaceD {
			slot = other.face
		}
		f := cubeFaceToMoveFace(slot)
		return []Move{{Face: f, Turn: CW}, {Face: f, Turn: CW}},
			fmt.Sprintf("lift out of the bottom layer with %s %s", f, f)

	default:
		// Middle layer: turn the face not carrying the white sticker so
		// the white sticker rises to U, move the edge clear with U, then
		// restore the turned face (and with it any seated cross edge).
		lift := other.face
		dir, ok := s.liftDirection(c, lift, target)
		if !ok {
			return nil, ""
		}
		m := Move{Face: cubeFaceToMoveFace(lift), Turn: dir}
		return []Move{m, U, m.Inverse()},
			fmt.Sprintf("lift to the top layer with %s U %s", m, m.Inverse())
	}
}

// liftDirection probes a clone to find which turn of face lifts the
// target edge into the top layer with white facing up. Exactly one
// direction does for a well-formed middle-layer edge.
func (s *CrossSolver) liftDirection(c *Cube, face CubeFace, target Color) (Turn, bool) {
	for _, dir := range []Turn{CW, CCW} {
		probe := c.Clone()
		probe.MoveFace(face, int(dir))
		loc, err := FindEdge(probe, White, target)
		if err != nil {
			continue
		}
		if whiteAt, _, ok := loc.half(probe, White); ok && whiteAt.face == CubeFaceU {
			return dir, true
		}
	}
	return 0, false
}

// uRing lists the side faces in the order a clockwise U turn carries the
// top-layer edges: the UF edge moves to UL, and so on.
var uRing = [4]CubeFace{CubeFaceF, CubeFaceL, CubeFaceB, CubeFaceR}

// uAlignMoves returns the U turns that carry a top-layer edge from above
// one side face to above another. Three clockwise turns collapse to a
// single counter-clockwise one.
func uAlignMoves(from, to CubeFace) []Move {
	var fi, ti int
	for i, f := range uRing {
		if f == from {
			fi = i
		}
		if f == to {
			ti = i
		}
	}
	switch k := (ti - fi + 4) % 4; k {
	case 0:
		return nil
	case 3:
		return []Move{UPrime}
	default:
		moves := make([]Move, k)
		for i := range moves {
			moves[i] = U
		}
		return moves
	}
}

// Pipeline runs phase solvers in order, stopping at the first phase that
// does not complete. The overall solve reports incomplete unless every
// registered phase completes and the cube ends solved.
type Pipeline struct {
	solvers []PhaseSolver
}

// NewPipeline creates a pipeline over the given phase solvers.
func NewPipeline(solvers ...PhaseSolver) *Pipeline {
	return &Pipeline{solvers: solvers}
}

// DefaultPipeline returns a pipeline with every phase solver the library
// ships: currently only the white cross. Corner, middle-layer, and
// last-layer solvers can be appended without touching the core contracts.
func DefaultPipeline(opts ...SolverOption) *Pipeline {
	return NewPipeline(NewCrossSolver(opts...))
}

// SolveResult is the outcome of a pipeline run.
type SolveResult struct {
	Phases   []PhaseResult
	Complete bool // true only if the cube ended fully solved
}

// Steps returns every narrated step across all phases, in order.
func (r *SolveResult) Steps() []Step {
	var steps []Step
	for _, p := range r.Phases {
		steps = append(steps, p.Steps...)
	}
	return steps
}

// Solve runs each registered phase in order.
func (p *Pipeline) Solve(c *Cube) *SolveResult {
	result := &SolveResult{}
	for _, solver := range p.solvers {
		pr := solver.Solve(c)
		result.Phases = append(result.Phases, pr)
		if !pr.Complete {
			break
		}
	}
	result.Complete = c.IsSolved()
	return result
}
