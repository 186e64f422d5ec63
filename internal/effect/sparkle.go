package effect

import (
	"time"

	"github.com/coreman2200/funtimes-shades/internal/palette"
	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

// glitter shimmers every pixel at one of five brightness steps.
type glitter struct{}

func (glitter) Render(c *Context) {
	c.setup(15 * time.Millisecond)
	shimmer(c)
}

func shimmer(c *Context) {
	f := c.Frame
	for x := 0; x < f.Width(); x++ {
		for y := 0; y < f.Height(); y++ {
			v := c.Rand.Uint8n(5) * 63
			f.Set(x, y, pixel.HSV{H: c.Hue, S: 255, V: v}.RGB())
		}
	}
}

const confettiPerFrame = 4

// confetti scatters palette-colored pixels; the engine fades the frame
// between calls so old ones decay.
type confetti struct{}

func (confetti) Render(c *Context) {
	if c.setup(10 * time.Millisecond) {
		c.Palette = palette.Random(c.Rand)
	}
	f := c.Frame
	for i := 0; i < confettiPerFrame; i++ {
		x := int(c.Rand.Uint16n(uint16(f.Width())))
		y := int(c.Rand.Uint16n(uint16(f.Height())))
		idx := uint8(c.Rand.Uint16n(255))
		f.Set(x, y, palette.ColorFrom(&c.Palette, idx, 255))
		c.Rand.AddEntropy(1)
	}
}

func (confetti) Decay() uint8 { return 1 }
