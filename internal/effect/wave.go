package effect

import (
	"math"
	"time"

	"github.com/coreman2200/funtimes-shades/internal/fx8"
	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

// threeSine draws three sine bands, one per channel, with slightly
// different speeds.
type threeSine struct {
	offset uint8
}

func (e *threeSine) Render(c *Context) {
	if c.setup(20 * time.Millisecond) {
		e.offset = 0
	}
	f := c.Frame
	w, h := f.Width(), f.Height()
	step := 255 / h
	for x := 0; x < w; x++ {
		col := uint8(x * 16)
		for y := 0; y < h; y++ {
			row := y * step
			f.Set(x, y, pixel.RGB{
				R: 255 - sineDistance(row, e.offset*9+col),
				G: 255 - sineDistance(row, e.offset*10+col),
				B: 255 - sineDistance(row, e.offset*11+col),
			})
		}
	}
	e.offset++
}

func sineDistance(row int, phase uint8) uint8 {
	return fx8.Qmul8(fx8.Abs8(row-int(fx8.Sin8(phase))), 2)
}

// plasma is a radial sine field around a centre that orbits off screen.
type plasma struct {
	offset uint8
	vector int16
}

func (e *plasma) Render(c *Context) {
	c.setup(10 * time.Millisecond)
	f := c.Frame
	w, h := f.Width(), f.Height()

	angle := orbitAngle(e.vector)
	xo := float64(fx8.Cos8(angle)) - 127
	yo := float64(fx8.Sin8(angle)) - 127
	cx, cy := float64(w-1)/2, float64(h-1)/2

	for x := 0; x < w; x++ {
		dx := (float64(x)-cx)*10 + xo
		for y := 0; y < h; y++ {
			dy := (float64(y)-cy)*10 + yo
			d := int(math.Sqrt(dx*dx + dy*dy))
			hue := fx8.Sin8(uint8(d) + e.offset)
			f.Set(x, y, pixel.HSV{H: hue, S: 255, V: 255}.RGB())
		}
	}
	e.offset++
	e.vector += 16
}

// orbitAngle divides toward zero, so the negative half of the orbit lags
// the unsigned shift by one step.
func orbitAngle(v int16) uint8 { return uint8(v / 256) }

// slantBars scrolls diagonal quadwave bars in the shared hue.
type slantBars struct {
	pos uint8
}

func (e *slantBars) Render(c *Context) {
	c.setup(5 * time.Millisecond)
	f := c.Frame
	for x := 0; x < f.Width(); x++ {
		for y := 0; y < f.Height(); y++ {
			v := fx8.Quadwave8(uint8(x*32+y*32) + e.pos)
			f.Set(x, y, pixel.HSV{H: c.Hue, S: 255, V: v}.RGB())
		}
	}
	e.pos -= 4
}
