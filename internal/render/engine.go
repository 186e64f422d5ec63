package render

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-shades/internal/effect"
	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

// BrightnessLevels is the table the brightness button steps through.
var BrightnessLevels = []uint8{255, 191, 127, 63, 31}

// Command runs on the engine goroutine.
type Command func(e *Engine)

// Finisher is implemented by one-shot effects started with Play.
type Finisher interface {
	Done() bool
}

// Engine runs the active effect at the effect's own delay, advances the
// shared hue, applies post-processing, then writes to the driver. Only the
// goroutine in Run touches the framebuffer; everyone else posts Commands.
type Engine struct {
	Cat *effect.Catalog
	Ctx *effect.Context
	Drv Driver

	// OnFrame, if set, receives a copy of every frame written.
	OnFrame func([]pixel.RGB)

	active effect.Effect
	id     effect.ID
	// overlay names a one-shot effect running in place of id
	overlay string

	params Params
	timing Timing
	auto   bool
	level  int

	post PostPipeline
	out  []pixel.RGB

	nextFrame time.Time
	nextHue   time.Time
	nextAuto  time.Time
	lastStep  time.Time
	dirty     bool

	cmds   chan Command
	frames uint64

	// metrics (last durations in ms)
	Last struct {
		RenderMS float64
		PostMS   float64
		EstMA    float64
	}

	mu     sync.Mutex
	status Status
}

// NewEngine wires an engine with default post and timing and selects start.
func NewEngine(cat *effect.Catalog, c *effect.Context, drv Driver, start effect.ID) (*Engine, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, errors.New("empty effect catalog")
	}
	if c == nil || c.Frame == nil {
		return nil, errors.New("context has no framebuffer")
	}
	e := &Engine{
		Cat:    cat,
		Ctx:    c,
		Drv:    drv,
		params: DefaultParams(),
		timing: DefaultTiming(),
		auto:   true,
		post:   DefaultPost(),
		out:    make([]pixel.RGB, c.Frame.Mapper().Visible()),
		cmds:   make(chan Command, 32),
	}
	if err := e.Select(start); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) SetPost(p PostPipeline) { e.post = p }
func (e *Engine) SetParams(p Params)     { e.params = p; e.dirty = true }
func (e *Engine) Params() Params         { return e.params }

func (e *Engine) SetTiming(t Timing) {
	if t.Tick <= 0 {
		t.Tick = DefaultTiming().Tick
	}
	e.timing = t
	e.nextHue, e.nextAuto = time.Time{}, time.Time{}
}

func (e *Engine) SetAutoCycle(on bool) {
	e.auto = on
	e.nextAuto = time.Time{}
}

// Active returns the selected effect ID.
func (e *Engine) Active() effect.ID { return e.id }

// Select switches effects. The old effect's state is dropped and the new one
// starts from its setup call.
func (e *Engine) Select(id effect.ID) error {
	entry, ok := e.Cat.ByID(id)
	if !ok {
		return fmt.Errorf("effect not found: %d", id)
	}
	e.active = entry.New()
	e.id = id
	e.overlay = ""
	e.Ctx.Reset()
	e.nextFrame = time.Time{}
	e.nextAuto = time.Time{}
	log.Debug().Str("effect", entry.Name).Msg("effect selected")
	return nil
}

// Play runs fx in place of the selected effect until it reports Done, then
// restarts the selected effect. Auto-cycling pauses meanwhile.
func (e *Engine) Play(name string, fx effect.Effect) {
	e.active = fx
	e.overlay = name
	e.Ctx.Reset()
	e.nextFrame = time.Time{}
	log.Info().Str("overlay", name).Msg("overlay started")
}

func (e *Engine) SelectName(name string) error {
	entry, ok := e.Cat.Get(name)
	if !ok {
		return fmt.Errorf("effect not found: %s", name)
	}
	return e.Select(entry.ID)
}

// Next selects the effect after the active one.
func (e *Engine) Next() {
	_ = e.Select(e.Cat.Next(e.id))
}

func (e *Engine) SetBrightness(b uint8) {
	e.params.Brightness = b
	e.dirty = true
}

// BrightnessUp steps to the next level in BrightnessLevels, wrapping.
func (e *Engine) BrightnessUp() uint8 {
	e.level = (e.level + 1) % len(BrightnessLevels)
	e.SetBrightness(BrightnessLevels[e.level])
	return e.params.Brightness
}

// SetParam updates a numeric knob by name; unknown names are ignored.
func (e *Engine) SetParam(name string, v float64) {
	switch name {
	case "brightness":
		e.SetBrightness(ClampU8(v))
	case "hue":
		e.Ctx.Hue = ClampU8(v)
	case "white_cap":
		e.params.WhiteCap = int(v)
	case "budget_ma":
		e.params.BudgetMA = v
	case "chan_ma":
		e.params.ChanMA = v
	default:
		log.Debug().Str("param", name).Msg("unknown param")
	}
}

// ClampU8 rounds v into 0..255.
func ClampU8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Step advances the clocks to now and renders when the active effect is
// due. It reports whether a frame was written.
func (e *Engine) Step(now time.Time) (bool, error) {
	if now.Before(e.lastStep) {
		// clock moved backwards: re-arm
		e.nextFrame, e.nextHue, e.nextAuto = time.Time{}, time.Time{}, time.Time{}
	}
	e.lastStep = now

	if e.timing.HueCycle > 0 {
		if e.nextHue.IsZero() {
			e.nextHue = now.Add(e.timing.HueCycle)
		} else if !now.Before(e.nextHue) {
			e.Ctx.Hue++
			if d, ok := e.active.(effect.Decayer); ok {
				e.Ctx.Frame.FadeAll(d.Decay())
				e.dirty = true
			}
			e.nextHue = now.Add(e.timing.HueCycle)
		}
	}

	if e.auto && e.overlay == "" && e.timing.AutoCycle > 0 {
		if e.nextAuto.IsZero() {
			e.nextAuto = now.Add(e.timing.AutoCycle)
		} else if !now.Before(e.nextAuto) {
			e.Next()
			e.nextAuto = now.Add(e.timing.AutoCycle)
		}
	}

	if !now.Before(e.nextFrame) {
		start := time.Now()
		e.active.Render(e.Ctx)
		e.Last.RenderMS = float64(time.Since(start).Microseconds()) / 1000.0
		e.nextFrame = now.Add(e.Ctx.Delay)
		e.dirty = true
		if f, ok := e.active.(Finisher); ok && f.Done() {
			log.Info().Str("overlay", e.overlay).Msg("overlay finished")
			_ = e.Select(e.id)
		}
	}

	if !e.dirty {
		return false, nil
	}
	e.dirty = false
	return true, e.show()
}

// RenderOnce renders the active effect immediately and writes it out,
// ignoring its delay.
func (e *Engine) RenderOnce() error {
	start := time.Now()
	e.active.Render(e.Ctx)
	e.Last.RenderMS = float64(time.Since(start).Microseconds()) / 1000.0
	return e.show()
}

func (e *Engine) show() error {
	postStart := time.Now()
	copy(e.out, e.Ctx.Frame.Visible())
	if e.post.Brightness != nil {
		e.post.Brightness(e.out, e.params)
	}
	if e.post.Limiter != nil {
		e.post.Limiter(e.out, e.params)
	}
	e.Last.PostMS = float64(time.Since(postStart).Microseconds()) / 1000.0
	e.Last.EstMA = EstimateMA(e.out, e.params.ChanMA)
	e.frames++
	e.publish()

	if e.OnFrame != nil {
		e.OnFrame(append([]pixel.RGB(nil), e.out...))
	}
	if e.Drv != nil {
		if err := e.Drv.Write(e.out); err != nil {
			return fmt.Errorf("driver write: %w", err)
		}
	}
	return nil
}

func (e *Engine) publish() {
	name := e.id.String()
	if e.overlay != "" {
		name = e.overlay
	}
	st := Status{
		Effect:     name,
		Index:      int(e.id),
		Hue:        e.Ctx.Hue,
		Brightness: e.params.Brightness,
		AutoCycle:  e.auto,
		DelayMS:    e.Ctx.Delay.Milliseconds(),
		Frames:     e.frames,
		RenderMS:   e.Last.RenderMS,
		PostMS:     e.Last.PostMS,
		EstMA:      e.Last.EstMA,
	}
	e.mu.Lock()
	e.status = st
	e.mu.Unlock()
}

// Status is safe to call from any goroutine.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Post queues cmd for the engine goroutine. It reports false when the queue
// is full.
func (e *Engine) Post(cmd Command) bool {
	select {
	case e.cmds <- cmd:
		return true
	default:
		log.Warn().Msg("engine command queue full; dropping command")
		return false
	}
}

// Run drives Step on a ticker until ctx is done. Driver errors are logged,
// not fatal.
func (e *Engine) Run(ctx context.Context) error {
	tick := time.NewTicker(e.timing.Tick)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-e.cmds:
			cmd(e)
		case now := <-tick.C:
			if _, err := e.Step(now); err != nil {
				log.Error().Err(err).Str("effect", e.id.String()).Msg("frame write failed")
			}
		}
	}
}
