package effect

import (
	"time"

	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

type Dot struct {
	X, Y int
	C    pixel.RGB
}

// ParseArt turns rows of characters into dots; cells whose character is not
// in legend are left out.
func ParseArt(legend map[byte]pixel.RGB, rows ...string) []Dot {
	var out []Dot
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if c, ok := legend[r[x]]; ok {
				out = append(out, Dot{X: x, Y: y, C: c})
			}
		}
	}
	return out
}

var (
	crust     = pixel.RGB{R: 95, G: 64}
	cheese    = pixel.RGB{R: 100, G: 100}
	pepperoni = pixel.RGB{R: 100}
	hide      = pixel.RGB{R: 100, G: 100, B: 100}
	stitch    = pixel.RGB{R: 100}
)

var pizzaDots = ParseArt(map[byte]pixel.RGB{'C': crust, 'Y': cheese, 'R': pepperoni},
	"..CCC......CCC..",
	".CYRYC....CYRYC.",
	".CYYRC....CYYYC.",
	".CRYYC....CRYRC.",
	"..CCC......CCC..",
)

var baseballDots = ParseArt(map[byte]pixel.RGB{'W': hide, 'R': stitch},
	"..WWR......WRW..",
	".RRWWR....WWRWW.",
	".WWRWR....WWWRR.",
	".WWRWW....RWWWW.",
	"..RWW......RWW..",
)

// sprite draws a fixed picture over a glitter background.
type sprite struct {
	dots []Dot
}

func (e *sprite) Render(c *Context) {
	c.setup(50 * time.Millisecond)
	shimmer(c)
	f := c.Frame
	for _, d := range e.dots {
		if f.In(d.X, d.Y) {
			f.Set(d.X, d.Y, d.C)
		}
	}
}
