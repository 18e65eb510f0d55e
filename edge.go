package cubesim

// EdgeLocation identifies where an edge piece currently sits: the two
// geometrically adjacent stickers that make up the piece.
type EdgeLocation struct {
	FaceA  CubeFace
	IndexA int
	FaceB  CubeFace
	IndexB int
}

// edgePositions is the fixed table of the 12 canonical edge positions.
// Each entry pairs a sticker with its geometrically adjacent partner on
// the neighboring face. Top layer, bottom layer, then middle layer.
var edgePositions = [12]EdgeLocation{
	// U layer
	{CubeFaceU, 7, CubeFaceF, 1},
	{CubeFaceU, 5, CubeFaceR, 1},
	{CubeFaceU, 1, CubeFaceB, 1},
	{CubeFaceU, 3, CubeFaceL, 1},
	// D layer
	{CubeFaceD, 1, CubeFaceF, 7},
	{CubeFaceD, 5, CubeFaceR, 7},
	{CubeFaceD, 7, CubeFaceB, 7},
	{CubeFaceD, 3, CubeFaceL, 7},
	// Middle layer
	{CubeFaceF, 5, CubeFaceR, 3},
	{CubeFaceR, 5, CubeFaceB, 3},
	{CubeFaceB, 5, CubeFaceL, 3},
	{CubeFaceL, 5, CubeFaceF, 3},
}

// FindEdge locates the edge piece carrying the unordered color pair
// {a, b}. For a well-formed state exactly one of the 12 canonical
// positions matches; more than one match means the state is corrupt and
// is reported as ErrStateCorrupt rather than silently resolved. Zero
// matches yields ErrEdgeNotFound: the pair does not name a real edge
// piece (opposite-face colors, or a color paired with itself) or the
// state is corrupt.
func FindEdge(c *Cube, a, b Color) (EdgeLocation, error) {
	var found EdgeLocation
	matches := 0
	for _, pos := range edgePositions {
		sa := c.Facelets[pos.FaceA][pos.IndexA]
		sb := c.Facelets[pos.FaceB][pos.IndexB]
		if (sa == a && sb == b) || (sa == b && sb == a) {
			if matches == 0 {
				found = pos
			}
			matches++
		}
	}
	switch matches {
	case 0:
		return EdgeLocation{}, ErrEdgeNotFound
	case 1:
		return found, nil
	default:
		return EdgeLocation{}, ErrStateCorrupt
	}
}

// half returns the (face, index) of the sticker on loc showing color want,
// and the other half. ok is false if neither sticker shows want.
func (loc EdgeLocation) half(c *Cube, want Color) (at, other stickerRef, ok bool) {
	if c.Facelets[loc.FaceA][loc.IndexA] == want {
		return stickerRef{loc.FaceA, loc.IndexA}, stickerRef{loc.FaceB, loc.IndexB}, true
	}
	if c.Facelets[loc.FaceB][loc.IndexB] == want {
		return stickerRef{loc.FaceB, loc.IndexB}, stickerRef{loc.FaceA, loc.IndexA}, true
	}
	return stickerRef{}, stickerRef{}, false
}

// touches reports whether either half of the location sits on the given face.
func (loc EdgeLocation) touches(face CubeFace) bool {
	return loc.FaceA == face || loc.FaceB == face
}
