package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cubelab/cubesim"
)

func TestRenderCubeShowsAllStickers(t *testing.T) {
	out := RenderCube(cubesim.New())

	// Nine stickers of each color on a solved cube, rendered as the
	// uppercase color letter in a padded cell.
	for _, letter := range []string{"G", "R", "Y", "B", "O", "W"} {
		assert.Equal(t, 9, strings.Count(out, " "+letter+" "), "sticker %q", letter)
	}
}

func TestRenderStateRoundTrip(t *testing.T) {
	c := cubesim.New()
	c.Apply(cubesim.R, cubesim.U)

	assert.Equal(t, RenderCube(c), RenderState(c.Serialize()))
}

func TestRenderStateMalformed(t *testing.T) {
	out := RenderState("not a cube")
	assert.Contains(t, out, "invalid cube state")
}
