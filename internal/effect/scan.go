package effect

import (
	"time"

	"github.com/coreman2200/funtimes-shades/internal/fx8"
	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

// rider sweeps a soft vertical bar left and right in the shared hue.
type rider struct {
	pos uint8
}

func (e *rider) Render(c *Context) {
	if c.setup(5 * time.Millisecond) {
		e.pos = 0
	}
	f := c.Frame
	w := f.Width()
	for x := 0; x < w; x++ {
		col := pixel.HSV{H: c.Hue, S: 255, V: riderLevel(x, w, e.pos)}.RGB()
		for y := 0; y < f.Height(); y++ {
			f.Set(x, y, col)
		}
	}
	e.pos++
}

// riderLevel is the bar brightness of column x at position pos.
func riderLevel(x, w int, pos uint8) uint8 {
	d := x*(256/w) - int(fx8.Triwave8(pos))*2 + 127
	if d < 0 {
		d = -d
	}
	d *= 3
	if d > 255 {
		d = 255
	}
	return uint8(255 - d)
}

// sideRain scrolls the frame right and drops one new pixel in column 0.
type sideRain struct{}

func (sideRain) Render(c *Context) {
	c.setup(30 * time.Millisecond)
	f := c.Frame
	f.ScrollRight()
	drop := int(c.Rand.Uint8n(uint8(f.Height())))
	for y := 0; y < f.Height(); y++ {
		f.Set(0, y, pixel.Black)
	}
	f.Set(0, drop, pixel.HSV{H: c.Hue, S: 255, V: 255}.RGB())
}

// threeDee is a red/blue anaglyph: blue left lens, red right lens, dark
// bridge.
type threeDee struct{}

func (threeDee) Render(c *Context) {
	c.setup(50 * time.Millisecond)
	f := c.Frame
	w, h := f.Width(), f.Height()
	left, right := w/2-1, w/2
	for x := 0; x < w; x++ {
		col := pixel.Black
		switch {
		case x < left:
			col = pixel.Blue
		case x > right:
			col = pixel.Red
		}
		for y := 0; y < h; y++ {
			f.Set(x, y, col)
		}
	}
	if left-1 >= 0 {
		f.Set(left-1, 0, pixel.Black)
	}
	if right+1 < w {
		f.Set(right+1, 0, pixel.Black)
	}
}
