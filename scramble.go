package cubesim

import "math/rand"

// Scrambler generates random quarter-turn sequences.
// A fixed seed yields a reproducible sequence.
type Scrambler struct {
	rng *rand.Rand
}

// NewScrambler creates a scrambler with the given seed.
func NewScrambler(seed int64) *Scrambler {
	return &Scrambler{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns n moves drawn uniformly (with replacement) from the
// 12 quarter-turn moves.
func (s *Scrambler) Generate(n int) []Move {
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = QuarterTurns[s.rng.Intn(len(QuarterTurns))]
	}
	return moves
}

// ScrambleCube applies n random quarter turns to the cube and returns the
// sequence that was applied.
func (s *Scrambler) ScrambleCube(c *Cube, n int) []Move {
	moves := s.Generate(n)
	c.Apply(moves...)
	return moves
}
