// Package effect is the fixed menu of glasses animations. Each effect draws
// one frame per Render call into the shared Context and keeps its own
// counters; the engine owns the Context and rebuilds an effect's state every
// time it is selected.
package effect

import (
	"time"

	"github.com/coreman2200/funtimes-shades/internal/font"
	"github.com/coreman2200/funtimes-shades/internal/frame"
	"github.com/coreman2200/funtimes-shades/internal/palette"
	"github.com/coreman2200/funtimes-shades/internal/rng"
)

// Context is the state shared by all effects. Hue and Palette are the
// ambient styling knobs; Init and Delay belong to the active effect and are
// reset by the engine on every switch.
type Context struct {
	Frame    *frame.Buffer
	Hue      uint8
	Palette  palette.Palette16
	Rand     *rng.Rand
	Messages font.Messages

	Init  bool
	Delay time.Duration
}

func NewContext(f *frame.Buffer, r *rng.Rand, msgs font.Messages) *Context {
	if r == nil {
		r = rng.New(rng.DefaultSeed)
	}
	if msgs == nil {
		msgs = font.DefaultMessages
	}
	return &Context{Frame: f, Palette: palette.Rainbow, Rand: r, Messages: msgs}
}

// Reset clears the per-effect control state ahead of a switch.
func (c *Context) Reset() {
	c.Init = false
	c.Delay = 0
}

// setup marks the effect initialised and sets its delay. It reports true on
// the first call only.
func (c *Context) setup(delay time.Duration) bool {
	if c.Init {
		return false
	}
	c.Init = true
	c.Delay = delay
	return true
}

type Effect interface {
	Render(c *Context)
}

// Decayer is implemented by effects whose frame should fade by Decay()/256
// on every hue tick, leaving trails behind new pixels.
type Decayer interface {
	Decay() uint8
}

type ID int

const (
	ThreeSine ID = iota
	Plasma
	Rider
	Glitter
	ColorFill
	ThreeDee
	SideRain
	Confetti
	SlantBars
	ScrollText0
	ScrollText1
	ScrollText2
	ScrollText3
	ScrollText4
	ScrollText5
	ScrollText6
	PizzaTime
	BaseballEyes

	NumIDs
)

var names = [NumIDs]string{
	ThreeSine:    "threeSine",
	Plasma:       "plasma",
	Rider:        "rider",
	Glitter:      "glitter",
	ColorFill:    "colorFill",
	ThreeDee:     "threeDee",
	SideRain:     "sideRain",
	Confetti:     "confetti",
	SlantBars:    "slantBars",
	ScrollText0:  "scrollText0",
	ScrollText1:  "scrollText1",
	ScrollText2:  "scrollText2",
	ScrollText3:  "scrollText3",
	ScrollText4:  "scrollText4",
	ScrollText5:  "scrollText5",
	ScrollText6:  "scrollText6",
	PizzaTime:    "pizzaTime",
	BaseballEyes: "baseballEyes",
}

func (id ID) String() string {
	if id < 0 || id >= NumIDs {
		return "unknown"
	}
	return names[id]
}

func (id ID) Valid() bool { return id >= 0 && id < NumIDs }
