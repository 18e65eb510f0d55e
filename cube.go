package cubesim

import "strings"

// Color represents a face color.
type Color byte

const (
	Red    Color = 0 // Right face when solved
	Green  Color = 1 // Front face when solved
	Blue   Color = 2 // Back face when solved
	Yellow Color = 3 // Up face when solved
	Orange Color = 4 // Left face when solved
	White  Color = 5 // Down face when solved
)

func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case White:
		return "W"
	default:
		return "?"
	}
}

// Name returns the lowercase English name of the color.
func (c Color) Name() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	case White:
		return "white"
	default:
		return "unknown"
	}
}

// Rune returns the lowercase serialization character for the color.
func (c Color) Rune() byte {
	switch c {
	case Red:
		return 'r'
	case Green:
		return 'g'
	case Blue:
		return 'b'
	case Yellow:
		return 'y'
	case Orange:
		return 'o'
	case White:
		return 'w'
	default:
		return '?'
	}
}

// colorFromRune maps a serialization character back to a color.
func colorFromRune(b byte) (Color, bool) {
	switch b {
	case 'r':
		return Red, true
	case 'g':
		return Green, true
	case 'b':
		return Blue, true
	case 'y':
		return Yellow, true
	case 'o':
		return Orange, true
	case 'w':
		return White, true
	default:
		return 0, false
	}
}

// CubeFace indexes a face of the cube model. The order matches the
// serialization contract: F, R, U, B, L, D.
// This is distinct from Face which is used for move notation.
type CubeFace int

const (
	CubeFaceF CubeFace = 0 // Front (Green)
	CubeFaceR CubeFace = 1 // Right (Red)
	CubeFaceU CubeFace = 2 // Up (Yellow)
	CubeFaceB CubeFace = 3 // Back (Blue)
	CubeFaceL CubeFace = 4 // Left (Orange)
	CubeFaceD CubeFace = 5 // Down (White)
)

func (f CubeFace) String() string {
	switch f {
	case CubeFaceF:
		return "F"
	case CubeFaceR:
		return "R"
	case CubeFaceU:
		return "U"
	case CubeFaceB:
		return "B"
	case CubeFaceL:
		return "L"
	case CubeFaceD:
		return "D"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed row-major as viewed from outside:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// New creates a solved cube with standard orientation:
// white on the bottom, green in front.
func New() *Cube {
	c := &Cube{}
	for face := CubeFace(0); face < 6; face++ {
		color := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
	return c
}

// faceToSolvedColor returns the identity color of a face.
func faceToSolvedColor(f CubeFace) Color {
	switch f {
	case CubeFaceF:
		return Green
	case CubeFaceR:
		return Red
	case CubeFaceU:
		return Yellow
	case CubeFaceB:
		return Blue
	case CubeFaceL:
		return Orange
	case CubeFaceD:
		return White
	default:
		return White
	}
}

// Clone creates a deep copy of the cube. The copy shares no storage with
// the original.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.Facelets = c.Facelets
	return clone
}

// IsSolved returns true if every sticker matches its face's identity color.
func (c *Cube) IsSolved() bool {
	for face := CubeFace(0); face < 6; face++ {
		expected := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] != expected {
				return false
			}
		}
	}
	return true
}

// Equal reports whether two cubes hold identical stickers.
func (c *Cube) Equal(other *Cube) bool {
	return c.Facelets == other.Facelets
}

// Serialize produces the 54-character state string: faces in order
// F, R, U, B, L, D, each row-major, one character per sticker from the
// alphabet rgbyow. This is the sole contract with rendering collaborators.
func (c *Cube) Serialize() string {
	var b strings.Builder
	b.Grow(54)
	for face := CubeFace(0); face < 6; face++ {
		for i := 0; i < 9; i++ {
			b.WriteByte(c.Facelets[face][i].Rune())
		}
	}
	return b.String()
}

// Deserialize parses a 54-character state string produced by Serialize.
// The string must be exactly 54 characters from the alphabet rgbyow and
// must contain exactly 9 stickers of each color.
func Deserialize(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, ErrBadStateString
	}
	c := &Cube{}
	var counts [6]int
	for i := 0; i < 54; i++ {
		color, ok := colorFromRune(s[i])
		if !ok {
			return nil, ErrBadStateString
		}
		c.Facelets[i/9][i%9] = color
		counts[color]++
	}
	for _, n := range counts {
		if n != 9 {
			return nil, ErrBadStateString
		}
	}
	return c, nil
}

// rotateFaceCW rotates a face's own 9 stickers 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face CubeFace) {
	f := &c.Facelets[face]
	// Corner rotation: 0->2->8->6->0
	// Edge rotation: 1->5->7->3->1
	temp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = temp

	temp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = temp
}

// rotateFaceCCW rotates a face's own 9 stickers 90 degrees counter-clockwise.
func (c *Cube) rotateFaceCCW(face CubeFace) {
	f := &c.Facelets[face]
	temp := f[0]
	f[0] = f[2]
	f[2] = f[8]
	f[8] = f[6]
	f[6] = temp

	temp = f[1]
	f[1] = f[5]
	f[5] = f[7]
	f[7] = f[3]
	f[3] = temp
}

// stickerRef addresses one sticker on the cube.
type stickerRef struct {
	face CubeFace
	idx  int
}

// bands[face] lists the four 3-sticker bands on the faces adjacent to that
// face, in clockwise flow order: a clockwise turn of the face moves each
// band's stickers onto the next band in the list (and the last band's onto
// the first). Within a band the three entries are position-aligned with
// the other bands.
var bands = [6][4][3]stickerRef{
	CubeFaceU: {
		{{CubeFaceF, 0}, {CubeFaceF, 1}, {CubeFaceF, 2}},
		{{CubeFaceL, 0}, {CubeFaceL, 1}, {CubeFaceL, 2}},
		{{CubeFaceB, 0}, {CubeFaceB, 1}, {CubeFaceB, 2}},
		{{CubeFaceR, 0}, {CubeFaceR, 1}, {CubeFaceR, 2}},
	},
	CubeFaceD: {
		{{CubeFaceF, 6}, {CubeFaceF, 7}, {CubeFaceF, 8}},
		{{CubeFaceR, 6}, {CubeFaceR, 7}, {CubeFaceR, 8}},
		{{CubeFaceB, 6}, {CubeFaceB, 7}, {CubeFaceB, 8}},
		{{CubeFaceL, 6}, {CubeFaceL, 7}, {CubeFaceL, 8}},
	},
	CubeFaceF: {
		{{CubeFaceU, 6}, {CubeFaceU, 7}, {CubeFaceU, 8}},
		{{CubeFaceR, 0}, {CubeFaceR, 3}, {CubeFaceR, 6}},
		{{CubeFaceD, 2}, {CubeFaceD, 1}, {CubeFaceD, 0}},
		{{CubeFaceL, 8}, {CubeFaceL, 5}, {CubeFaceL, 2}},
	},
	CubeFaceB: {
		{{CubeFaceU, 2}, {CubeFaceU, 1}, {CubeFaceU, 0}},
		{{CubeFaceL, 0}, {CubeFaceL, 3}, {CubeFaceL, 6}},
		{{CubeFaceD, 6}, {CubeFaceD, 7}, {CubeFaceD, 8}},
		{{CubeFaceR, 8}, {CubeFaceR, 5}, {CubeFaceR, 2}},
	},
	CubeFaceR: {
		{{CubeFaceU, 2}, {CubeFaceU, 5}, {CubeFaceU, 8}},
		{{CubeFaceB, 6}, {CubeFaceB, 3}, {CubeFaceB, 0}},
		{{CubeFaceD, 2}, {CubeFaceD, 5}, {CubeFaceD, 8}},
		{{CubeFaceF, 2}, {CubeFaceF, 5}, {CubeFaceF, 8}},
	},
	CubeFaceL: {
		{{CubeFaceU, 0}, {CubeFaceU, 3}, {CubeFaceU, 6}},
		{{CubeFaceF, 0}, {CubeFaceF, 3}, {CubeFaceF, 6}},
		{{CubeFaceD, 0}, {CubeFaceD, 3}, {CubeFaceD, 6}},
		{{CubeFaceB, 8}, {CubeFaceB, 5}, {CubeFaceB, 2}},
	},
}

// cycleBandsCW shifts the four adjacent bands one step clockwise.
func (c *Cube) cycleBandsCW(face CubeFace) {
	b := &bands[face]
	var saved [3]Color
	for j := 0; j < 3; j++ {
		saved[j] = c.Facelets[b[3][j].face][b[3][j].idx]
	}
	for i := 3; i > 0; i-- {
		for j := 0; j < 3; j++ {
			c.Facelets[b[i][j].face][b[i][j].idx] = c.Facelets[b[i-1][j].face][b[i-1][j].idx]
		}
	}
	for j := 0; j < 3; j++ {
		c.Facelets[b[0][j].face][b[0][j].idx] = saved[j]
	}
}

// cycleBandsCCW shifts the four adjacent bands one step counter-clockwise.
func (c *Cube) cycleBandsCCW(face CubeFace) {
	b := &bands[face]
	var saved [3]Color
	for j := 0; j < 3; j++ {
		saved[j] = c.Facelets[b[0][j].face][b[0][j].idx]
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c.Facelets[b[i][j].face][b[i][j].idx] = c.Facelets[b[i+1][j].face][b[i+1][j].idx]
		}
	}
	for j := 0; j < 3; j++ {
		c.Facelets[b[3][j].face][b[3][j].idx] = saved[j]
	}
}

// MoveFace applies a turn of the given face.
// turn: 1 = CW, -1 = CCW, 2 = 180 degrees.
func (c *Cube) MoveFace(face CubeFace, turn int) {
	switch turn {
	case 1:
		c.rotateFaceCW(face)
		c.cycleBandsCW(face)
	case -1:
		c.rotateFaceCCW(face)
		c.cycleBandsCCW(face)
	case 2:
		c.MoveFace(face, 1)
		c.MoveFace(face, 1)
	}
}

// ApplyMove applies a single move to the cube.
func (c *Cube) ApplyMove(m Move) {
	c.MoveFace(moveFaceToCubeFace(m.Face), int(m.Turn))
}

// Apply applies a sequence of moves to the cube.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// ApplyNotation parses and applies a space-separated move sequence.
// On a parse error the cube is left unchanged.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// moveFaceToCubeFace converts notation Face to the model's CubeFace.
func moveFaceToCubeFace(f Face) CubeFace {
	switch f {
	case FaceF:
		return CubeFaceF
	case FaceR:
		return CubeFaceR
	case FaceU:
		return CubeFaceU
	case FaceB:
		return CubeFaceB
	case FaceL:
		return CubeFaceL
	case FaceD:
		return CubeFaceD
	default:
		return CubeFaceU
	}
}

// cubeFaceToMoveFace converts the model's CubeFace to a notation Face.
func cubeFaceToMoveFace(f CubeFace) Face {
	switch f {
	case CubeFaceF:
		return FaceF
	case CubeFaceR:
		return FaceR
	case CubeFaceU:
		return FaceU
	case CubeFaceB:
		return FaceB
	case CubeFaceL:
		return FaceL
	case CubeFaceD:
		return FaceD
	default:
		return FaceU
	}
}

// String returns a flat text net of the cube for debugging.
func (c *Cube) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[CubeFaceU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{CubeFaceL, CubeFaceF, CubeFaceR, CubeFaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.Facelets[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[CubeFaceD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
