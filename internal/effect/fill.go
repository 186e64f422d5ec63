package effect

import (
	"time"

	"github.com/coreman2200/funtimes-shades/internal/palette"
)

const (
	fillRowDelay  = 45 * time.Millisecond
	fillColDelay  = 20 * time.Millisecond
	fillDoneDelay = 300 * time.Millisecond
)

// colorFill wipes solid palette colors across the frame, turning a quarter
// each time: down, right, up, left.
type colorFill struct {
	color uint8
	line  int
	dir   uint8
}

func (e *colorFill) Render(c *Context) {
	if c.setup(fillRowDelay) {
		e.color, e.line, e.dir = 0, 0, 0
		c.Palette = palette.Rainbow
	}
	f := c.Frame
	w, h := f.Width(), f.Height()
	col := c.Palette[e.color&0x0F]

	limit := h
	if e.dir&1 == 0 {
		c.Delay = fillRowDelay
		y := e.line
		if e.dir == 2 {
			y = h - 1 - e.line
		}
		for x := 0; x < w; x++ {
			f.Set(x, y, col)
		}
	} else {
		c.Delay = fillColDelay
		limit = w
		x := e.line
		if e.dir == 3 {
			x = w - 1 - e.line
		}
		for y := 0; y < h; y++ {
			f.Set(x, y, col)
		}
	}

	e.line++
	if e.line >= limit {
		e.line = 0
		e.color = (e.color + c.Rand.Uint8Range(3, 6)) % 16
		e.dir = (e.dir + 1) % 4
		c.Delay = fillDoneDelay
	}
}
