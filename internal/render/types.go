package render

import (
	"time"

	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

// Driver abstracts the LED transport (SPI, console, etc.).
type Driver interface {
	Write([]pixel.RGB) error
}

// Params are the post-stage knobs.
type Params struct {
	// Brightness scales every channel after the effect has drawn.
	Brightness uint8
	// WhiteCap limits R+G+B per LED (0..765, 0 or 765 = no cap).
	WhiteCap int
	// ChanMA is the current of one channel at full scale.
	ChanMA float64
	// BudgetMA is the global current budget; 0 disables the budget stage.
	BudgetMA float64
	// Knee is the fraction of the budget where soft limiting starts.
	Knee float64
}

func DefaultParams() Params {
	return Params{
		Brightness: 255,
		WhiteCap:   765,
		ChanMA:     20,
		BudgetMA:   0,
		Knee:       0.9,
	}
}

// Timing holds the engine's clocks.
type Timing struct {
	// Tick is the scheduler poll interval; effects run at their own delay.
	Tick time.Duration
	// HueCycle is how often the shared hue advances by one.
	HueCycle time.Duration
	// AutoCycle switches to the next effect; 0 disables it.
	AutoCycle time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		Tick:      time.Millisecond,
		HueCycle:  30 * time.Millisecond,
		AutoCycle: 15 * time.Second,
	}
}

// Status is a snapshot of the engine for status endpoints.
type Status struct {
	Effect     string  `json:"effect"`
	Index      int     `json:"index"`
	Hue        uint8   `json:"hue"`
	Brightness uint8   `json:"brightness"`
	AutoCycle  bool    `json:"autoCycle"`
	DelayMS    int64   `json:"delayMs"`
	Frames     uint64  `json:"frames"`
	RenderMS   float64 `json:"renderMs"`
	PostMS     float64 `json:"postMs"`
	EstMA      float64 `json:"estMa"`
}
