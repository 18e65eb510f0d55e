package cubesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionApplyRecordsHistory(t *testing.T) {
	s := NewSession()
	s.Apply(R, U)
	require.NoError(t, s.ApplyNotation("R' U'"))

	assert.Equal(t, "R U R' U'", FormatMoves(s.History()))
	assert.False(t, s.IsSolved())
}

func TestSessionInvalidNotationIsNonFatal(t *testing.T) {
	s := NewSession()

	var messages []string
	s.SetStatusCallback(func(msg string, busy bool) {
		messages = append(messages, msg)
	})

	err := s.ApplyNotation("Q")
	assert.Error(t, err)
	assert.True(t, s.IsSolved(), "state must be unchanged")
	assert.Empty(t, s.History())
	assert.NotEmpty(t, messages, "rejection should be reported to the status sink")
}

func TestSessionScrambleClearsHistory(t *testing.T) {
	s := NewSession()
	s.Apply(R)

	moves := s.Scramble(15)
	assert.Len(t, moves, 15)
	assert.Empty(t, s.History(), "scramble leaves history cleared")
	assert.False(t, s.IsSolved())
}

func TestSessionSeededScrambleReproducible(t *testing.T) {
	a := NewSession()
	a.SetScrambler(NewScrambler(1234))
	a.Scramble(25)

	b := NewSession()
	b.SetScrambler(NewScrambler(1234))
	b.Scramble(25)

	assert.Equal(t, a.State().Serialize(), b.State().Serialize())
}

func TestSessionStateIsACopy(t *testing.T) {
	s := NewSession()
	snapshot := s.State()
	snapshot.ApplyMove(R)
	assert.True(t, s.IsSolved(), "mutating State() result must not affect the session")
}

func TestSessionSolveCross(t *testing.T) {
	s := NewSession()
	s.SetScrambler(NewScrambler(21))
	s.Scramble(25)

	var steps []Step
	s.SetStepCallback(func(st Step) { steps = append(steps, st) })

	var statuses []string
	var busySeen bool
	s.SetStatusCallback(func(msg string, busy bool) {
		statuses = append(statuses, msg)
		busySeen = busySeen || busy
	})

	result := s.SolveCross()

	assert.True(t, result.Complete)
	assert.True(t, s.State().IsCrossComplete())
	assert.Equal(t, len(result.Steps), len(steps))
	assert.True(t, busySeen, "solve start should report in-progress")
	assert.Equal(t, FormatMoves(result.Moves()), FormatMoves(s.History()),
		"solver moves are recorded in the history")
}

func TestSessionSolveReportsIncomplete(t *testing.T) {
	s := NewSession()
	s.SetScrambler(NewScrambler(77))
	s.Scramble(25)

	result := s.Solve()

	require.Len(t, result.Phases, 1)
	assert.True(t, result.Phases[0].Complete, "cross phase itself should complete")
	assert.False(t, result.Complete, "overall solve is incomplete by design")

	var moves []Move
	for _, step := range result.Steps() {
		moves = append(moves, step.Moves...)
	}
	assert.Equal(t, FormatMoves(moves), FormatMoves(s.History()),
		"pipeline moves are recorded in the history")
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	s.Scramble(10)
	s.Reset()
	assert.True(t, s.IsSolved())
	assert.Empty(t, s.History())
	assert.Equal(t, PhaseSolved, s.Phase())
}
