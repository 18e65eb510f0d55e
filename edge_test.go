package cubesim

import "testing"

func TestFindEdgeSolvedCube(t *testing.T) {
	c := New()

	cases := []struct {
		a, b Color
		want EdgeLocation
	}{
		// U layer
		{Yellow, Green, EdgeLocation{CubeFaceU, 7, CubeFaceF, 1}},
		{Yellow, Red, EdgeLocation{CubeFaceU, 5, CubeFaceR, 1}},
		{Yellow, Blue, EdgeLocation{CubeFaceU, 1, CubeFaceB, 1}},
		{Yellow, Orange, EdgeLocation{CubeFaceU, 3, CubeFaceL, 1}},
		// D layer
		{White, Green, EdgeLocation{CubeFaceD, 1, CubeFaceF, 7}},
		{White, Red, EdgeLocation{CubeFaceD, 5, CubeFaceR, 7}},
		{White, Blue, EdgeLocation{CubeFaceD, 7, CubeFaceB, 7}},
		{White, Orange, EdgeLocation{CubeFaceD, 3, CubeFaceL, 7}},
		// Middle layer
		{Green, Red, EdgeLocation{CubeFaceF, 5, CubeFaceR, 3}},
		{Red, Blue, EdgeLocation{CubeFaceR, 5, CubeFaceB, 3}},
		{Blue, Orange, EdgeLocation{CubeFaceB, 5, CubeFaceL, 3}},
		{Orange, Green, EdgeLocation{CubeFaceL, 5, CubeFaceF, 3}},
	}

	for _, tc := range cases {
		got, err := FindEdge(c, tc.a, tc.b)
		if err != nil {
			t.Errorf("FindEdge(%s, %s): %v", tc.a.Name(), tc.b.Name(), err)
			continue
		}
		if got != tc.want {
			t.Errorf("FindEdge(%s, %s) = %+v, want %+v", tc.a.Name(), tc.b.Name(), got, tc.want)
		}

		// Order-independent in which color is first.
		swapped, err := FindEdge(c, tc.b, tc.a)
		if err != nil || swapped != got {
			t.Errorf("FindEdge(%s, %s) should match the swapped query", tc.b.Name(), tc.a.Name())
		}
	}
}

func TestFindEdgeOppositeColorsNotFound(t *testing.T) {
	c := New()
	opposites := [][2]Color{
		{White, Yellow},
		{Green, Blue},
		{Red, Orange},
	}
	for _, pair := range opposites {
		if _, err := FindEdge(c, pair[0], pair[1]); err != ErrEdgeNotFound {
			t.Errorf("FindEdge(%s, %s) should return ErrEdgeNotFound, got %v",
				pair[0].Name(), pair[1].Name(), err)
		}
	}
}

func TestFindEdgeSamePairAfterMoves(t *testing.T) {
	// A well-formed state always has exactly one location per edge pair.
	c := New()
	NewScrambler(5).ScrambleCube(c, 40)

	for _, side := range sideFaces {
		target := faceToSolvedColor(side)
		if _, err := FindEdge(c, White, target); err != nil {
			t.Errorf("FindEdge(white, %s) after scramble: %v", target.Name(), err)
		}
	}
}

func TestFindEdgeCorruptState(t *testing.T) {
	// Hand-built duplicate: two white-green edges.
	c := New()
	c.Facelets[CubeFaceU][7] = White
	c.Facelets[CubeFaceF][1] = Green

	if _, err := FindEdge(c, White, Green); err != ErrStateCorrupt {
		t.Errorf("duplicate edge should return ErrStateCorrupt, got %v", err)
	}
}
