// Package calib has the wiring checks run from the control socket. A Runner
// is an effect that finishes; the engine returns to the previous effect when
// Done reports true.
package calib

import (
	"fmt"
	"time"

	"github.com/coreman2200/funtimes-shades/internal/effect"
	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

type Kind string

const (
	None       Kind = ""
	IndexSweep Kind = "index_sweep"
	RGBTest    Kind = "rgb_channels"
	RowSweep   Kind = "row_sweep"
	Solid      Kind = "solid_white"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case IndexSweep, RGBTest, RowSweep, Solid:
		return k, nil
	}
	return None, fmt.Errorf("unknown test: %q", s)
}

type Plan struct {
	Kind  Kind
	Delay time.Duration // per step
}

type Runner struct {
	plan   Plan
	step   int
	done   bool
	OnDone func(Kind)
}

func NewRunner(plan Plan) *Runner {
	if plan.Delay <= 0 {
		plan.Delay = 100 * time.Millisecond
	}
	return &Runner{plan: plan}
}

func (r *Runner) Kind() Kind { return r.plan.Kind }
func (r *Runner) Done() bool { return r.done }

// Render draws the next step. IndexSweep walks the raw wiring order, so it
// exposes miswired cells as jumps.
func (r *Runner) Render(c *effect.Context) {
	if !c.Init {
		c.Init = true
		c.Delay = r.plan.Delay
	}
	if r.done {
		return
	}
	f := c.Frame
	f.Clear()

	switch r.plan.Kind {
	case IndexSweep:
		px := f.Visible()
		if r.step >= len(px) {
			r.finish()
			return
		}
		px[r.step] = pixel.White
	case RGBTest:
		if r.step >= 9 {
			r.finish()
			return
		}
		f.Fill([3]pixel.RGB{pixel.Red, pixel.Lime, pixel.Blue}[r.step%3])
	case RowSweep:
		if r.step >= f.Height() {
			r.finish()
			return
		}
		for x := 0; x < f.Width(); x++ {
			f.Set(x, r.step, pixel.RGB{G: 255, B: 255}) // cyan
		}
	case Solid:
		if r.step >= 1 {
			r.finish()
			return
		}
		f.Fill(pixel.White)
	default:
		r.finish()
		return
	}
	r.step++
}

func (r *Runner) finish() {
	r.done = true
	if r.OnDone != nil {
		r.OnDone(r.plan.Kind)
	}
}
