package cubesim

import "testing"

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"R2", R2},
		{"u", U},
		{"f'", FPrime},
		{"B2'", B2},
		{" L ", L},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "X", "R3", "RR", "2", "R''"} {
		if _, err := ParseMove(in); err == nil {
			t.Errorf("ParseMove(%q) should fail", in)
		}
	}
}

func TestParseMovesRejectsWholeSequence(t *testing.T) {
	if _, err := ParseMoves("R U X L"); err == nil {
		t.Error("a sequence with an invalid token should fail as a whole")
	}
}

func TestApplyNotationInvalidLeavesStateUnchanged(t *testing.T) {
	c := New()
	if err := c.ApplyNotation("R U Q"); err == nil {
		t.Fatal("invalid notation should return an error")
	}
	if !c.IsSolved() {
		t.Error("failed ApplyNotation must leave the cube unchanged")
	}
}

func TestNotationRoundTrip(t *testing.T) {
	for _, m := range []Move{R, RPrime, R2, U, DPrime, F2} {
		parsed, err := ParseMove(m.Notation())
		if err != nil {
			t.Errorf("ParseMove(%q): %v", m.Notation(), err)
			continue
		}
		if parsed != m {
			t.Errorf("round trip of %v gave %v", m, parsed)
		}
	}
}

func TestInverse(t *testing.T) {
	if R.Inverse() != RPrime {
		t.Error("R inverse should be R'")
	}
	if RPrime.Inverse() != R {
		t.Error("R' inverse should be R")
	}
	if R2.Inverse() != R2 {
		t.Error("R2 is its own inverse")
	}
}

func TestFormatMoves(t *testing.T) {
	got := FormatMoves(SexyMove)
	if got != "R U R' U'" {
		t.Errorf("FormatMoves(SexyMove) = %q", got)
	}
	if FormatMoves(nil) != "" {
		t.Error("FormatMoves(nil) should be empty")
	}
}

func TestInverseMovesUndoes(t *testing.T) {
	moves, _ := ParseMoves("F R2 U' L D B'")
	c := New()
	c.Apply(moves...)
	c.Apply(InverseMoves(moves)...)
	if !c.IsSolved() {
		t.Error("applying a sequence then its inverse should solve")
	}
}
