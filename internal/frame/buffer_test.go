package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-shades/internal/layout"
	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

func TestSetGoesThroughMapper(t *testing.T) {
	b := New(layout.Shades)
	b.Set(1, 0, pixel.Red)
	b.Set(15, 1, pixel.Blue)

	assert.Equal(t, pixel.Red, b.Pixels()[0])
	assert.Equal(t, pixel.Blue, b.Pixels()[14])
	assert.Equal(t, pixel.Red, b.At(1, 0))
	assert.Len(t, b.Visible(), 68)
	assert.Len(t, b.Pixels(), 80)
}

func TestScrollRight(t *testing.T) {
	b := New(layout.Serpentine{W: 4, H: 2, FlipEveryRow: true})
	b.Set(0, 0, pixel.Red)
	b.Set(0, 1, pixel.Blue)
	b.ScrollRight()
	assert.Equal(t, pixel.Red, b.At(1, 0))
	assert.Equal(t, pixel.Blue, b.At(1, 1))
	// column 0 is left for the caller
	assert.Equal(t, pixel.Red, b.At(0, 0))

	b.Clear()
	b.Set(3, 0, pixel.White)
	b.ScrollLeft()
	assert.Equal(t, pixel.White, b.At(2, 0))
}

func TestFadeAll(t *testing.T) {
	b := New(layout.Serpentine{W: 2, H: 1})
	b.Fill(pixel.White)
	b.FadeAll(1)
	assert.Equal(t, pixel.RGB{R: 254, G: 254, B: 254}, b.At(0, 0))
}

func TestCopyIsDetached(t *testing.T) {
	b := New(layout.Shades)
	b.Fill(pixel.Red)
	c := b.Copy()
	b.Clear()
	require.Len(t, c, 68)
	assert.Equal(t, pixel.Red, c[0])
}

func TestStripAndBytes(t *testing.T) {
	px := []pixel.RGB{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}}
	im := Strip(px)
	assert.Equal(t, 2, im.Bounds().Dx())
	assert.Equal(t, uint8(4), im.NRGBAAt(1, 0).R)
	assert.Equal(t, []byte{2, 1, 3, 5, 4, 6}, Bytes(px, pixel.OrderGRB))
}

func TestGridImage(t *testing.T) {
	b := New(layout.Shades)
	b.Set(15, 1, pixel.Lime)
	im := b.Grid()
	assert.Equal(t, 16, im.Bounds().Dx())
	assert.Equal(t, 5, im.Bounds().Dy())
	assert.Equal(t, uint8(255), im.NRGBAAt(15, 1).G)
}
