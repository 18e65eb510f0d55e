package cubesim

// Phase detection for the layer-by-layer solving method.
// Standard orientation: white on the bottom (D), green in front (F), so
// the cross is built on D and the last layer is yellow on U.

// Phase represents the current solving phase. Phases progress from
// Scrambled (0) to Solved, allowing comparison with < and > operators.
type Phase int

const (
	// PhaseScrambled indicates the cube is in a scrambled state.
	PhaseScrambled Phase = iota

	// PhaseWhiteCross indicates the white cross is complete.
	// The 4 white edge pieces are correctly seated on the D face
	// with their side colors matching the center colors.
	PhaseWhiteCross

	// PhaseBottomLayer indicates the first layer (white face) is complete.
	PhaseBottomLayer

	// PhaseMiddleLayer indicates the middle layer edges are all placed.
	PhaseMiddleLayer

	// PhaseTopCross indicates the yellow cross is formed on the U face.
	PhaseTopCross

	// PhaseCornersPositioned indicates the top corners are in their
	// correct slots (possibly mis-oriented).
	PhaseCornersPositioned

	// PhaseCornersOriented indicates the top corners all show yellow up.
	PhaseCornersOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short key for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseWhiteCross:
		return "white_cross"
	case PhaseBottomLayer:
		return "bottom_layer"
	case PhaseMiddleLayer:
		return "middle_layer"
	case PhaseTopCross:
		return "top_cross"
	case PhaseCornersPositioned:
		return "position_corners"
	case PhaseCornersOriented:
		return "orient_corners"
	case PhaseSolved:
		return "complete"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseWhiteCross:
		return "White Cross"
	case PhaseBottomLayer:
		return "Bottom Layer"
	case PhaseMiddleLayer:
		return "Middle Layer"
	case PhaseTopCross:
		return "Yellow Cross"
	case PhaseCornersPositioned:
		return "Corners Positioned"
	case PhaseCornersOriented:
		return "Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// crossDownIndex maps a side face to the D-face index its cross edge
// occupies.
var crossDownIndex = map[CubeFace]int{
	CubeFaceF: 1,
	CubeFaceR: 5,
	CubeFaceB: 7,
	CubeFaceL: 3,
}

// sideFaces lists the four side faces in the order the cross solver
// processes them.
var sideFaces = []CubeFace{CubeFaceF, CubeFaceR, CubeFaceB, CubeFaceL}

// IsCrossEdgeSeated reports whether the white edge belonging to the given
// side face is correctly seated: white on D at the slot under the face,
// and the side sticker matching the face's center.
func (c *Cube) IsCrossEdgeSeated(side CubeFace) bool {
	return c.Facelets[CubeFaceD][crossDownIndex[side]] == White &&
		c.Facelets[side][7] == c.Facelets[side][4]
}

// IsCrossComplete checks if the white cross is complete on the D face.
func (c *Cube) IsCrossComplete() bool {
	for _, side := range sideFaces {
		if !c.IsCrossEdgeSeated(side) {
			return false
		}
	}
	return true
}

// IsBottomLayerComplete checks if the entire bottom layer is complete:
// white cross plus white corners all in place.
func (c *Cube) IsBottomLayerComplete() bool {
	if !c.IsCrossComplete() {
		return false
	}

	for i := 0; i < 9; i++ {
		if c.Facelets[CubeFaceD][i] != White {
			return false
		}
	}

	// Bottom-row corner stickers on each side face must match the center.
	for _, face := range sideFaces {
		center := c.Facelets[face][4]
		if c.Facelets[face][6] != center || c.Facelets[face][8] != center {
			return false
		}
	}

	return true
}

// IsMiddleLayerComplete checks if the middle layer edges are all placed.
// Middle layer edges are at positions 3 and 5 on the F, R, B, L faces.
func (c *Cube) IsMiddleLayerComplete() bool {
	if !c.IsBottomLayerComplete() {
		return false
	}

	for _, face := range sideFaces {
		center := c.Facelets[face][4]
		if c.Facelets[face][3] != center || c.Facelets[face][5] != center {
			return false
		}
	}

	return true
}

// IsTopCrossComplete checks if the yellow cross is formed on the U face.
// This only checks that the 4 edge stickers on U are yellow, not that the
// edges are in their correct positions.
func (c *Cube) IsTopCrossComplete() bool {
	if !c.IsMiddleLayerComplete() {
		return false
	}
	for _, pos := range []int{1, 3, 5, 7} {
		if c.Facelets[CubeFaceU][pos] != Yellow {
			return false
		}
	}
	return true
}

// topCornerSlots lists each U-layer corner as three sticker locations with
// the colors the slot expects (in any arrangement).
var topCornerSlots = []struct {
	stickers [3]stickerRef
	expected [3]Color
}{
	{[3]stickerRef{{CubeFaceU, 8}, {CubeFaceF, 2}, {CubeFaceR, 0}}, [3]Color{Yellow, Green, Red}},
	{[3]stickerRef{{CubeFaceU, 6}, {CubeFaceF, 0}, {CubeFaceL, 2}}, [3]Color{Yellow, Green, Orange}},
	{[3]stickerRef{{CubeFaceU, 0}, {CubeFaceB, 2}, {CubeFaceL, 0}}, [3]Color{Yellow, Blue, Orange}},
	{[3]stickerRef{{CubeFaceU, 2}, {CubeFaceB, 0}, {CubeFaceR, 2}}, [3]Color{Yellow, Blue, Red}},
}

// AreTopCornersPositioned checks that each U-layer corner piece carries
// the colors its slot expects, ignoring orientation.
func (c *Cube) AreTopCornersPositioned() bool {
	if !c.IsTopCrossComplete() {
		return false
	}
	for _, slot := range topCornerSlots {
		var have [6]int
		var want [6]int
		for i := 0; i < 3; i++ {
			have[c.Facelets[slot.stickers[i].face][slot.stickers[i].idx]]++
			want[slot.expected[i]]++
		}
		if have != want {
			return false
		}
	}
	return true
}

// AreTopCornersOriented checks that the positioned corners all show
// yellow on the U face.
func (c *Cube) AreTopCornersOriented() bool {
	if !c.AreTopCornersPositioned() {
		return false
	}
	for _, pos := range []int{0, 2, 6, 8} {
		if c.Facelets[CubeFaceU][pos] != Yellow {
			return false
		}
	}
	return true
}

// DetectPhase returns the current solve phase based on cube state.
func (c *Cube) DetectPhase() Phase {
	if c.IsSolved() {
		return PhaseSolved
	}
	if c.AreTopCornersOriented() {
		return PhaseCornersOriented // Edges might still need a final U turn
	}
	if c.AreTopCornersPositioned() {
		return PhaseCornersPositioned
	}
	if c.IsTopCrossComplete() {
		return PhaseTopCross
	}
	if c.IsMiddleLayerComplete() {
		return PhaseMiddleLayer
	}
	if c.IsBottomLayerComplete() {
		return PhaseBottomLayer
	}
	if c.IsCrossComplete() {
		return PhaseWhiteCross
	}
	return PhaseScrambled
}

// Progress reports which phases are complete.
type Progress struct {
	WhiteCross        bool
	BottomLayer       bool
	MiddleLayer       bool
	TopCross          bool
	CornersPositioned bool
	CornersOriented   bool
	Solved            bool
}

// GetProgress returns the current progress through all phases.
func (c *Cube) GetProgress() Progress {
	return Progress{
		WhiteCross:        c.IsCrossComplete(),
		BottomLayer:       c.IsBottomLayerComplete(),
		MiddleLayer:       c.IsMiddleLayerComplete(),
		TopCross:          c.IsTopCrossComplete(),
		CornersPositioned: c.AreTopCornersPositioned(),
		CornersOriented:   c.AreTopCornersOriented(),
		Solved:            c.IsSolved(),
	}
}
