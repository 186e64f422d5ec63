package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/coreman2200/funtimes-shades/internal/config"
	"github.com/coreman2200/funtimes-shades/internal/effect"
	"github.com/coreman2200/funtimes-shades/internal/font"
	"github.com/coreman2200/funtimes-shades/internal/frame"
	"github.com/coreman2200/funtimes-shades/internal/layout"
	"github.com/coreman2200/funtimes-shades/internal/palette"
	"github.com/coreman2200/funtimes-shades/internal/render"
	"github.com/coreman2200/funtimes-shades/internal/rng"
	"github.com/coreman2200/funtimes-shades/internal/sequence"
)

type Core struct {
	Cfg    *config.Config
	Mapper layout.Mapper
	Eng    *render.Engine
	Seq    *sequence.Player // nil unless the config carries a program
}

// Build wires layout, effects, engine and sequencer from cfg. drv may be nil
// for headless runs.
func Build(cfg *config.Config, drv render.Driver) (*Core, error) {
	m, err := layout.ByName(cfg.Layout.Kind, cfg.Layout.Width, cfg.Layout.Height, cfg.FlipEveryRow())
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rng.DefaultSeed
	}
	msgs := font.DefaultMessages
	if len(cfg.Messages) > 0 {
		msgs = font.Messages(cfg.Messages)
	}
	text, err := cfg.TextStyles()
	if err != nil {
		return nil, err
	}
	for i, st := range text {
		if st.Message < 0 || st.Message >= len(msgs) {
			return nil, fmt.Errorf("text %d: message %d out of range (have %d)", i, st.Message, len(msgs))
		}
	}

	cat := effect.NewCatalog(text)
	ctx := effect.NewContext(frame.New(m), rng.New(seed), msgs)
	if cfg.Palette != "" {
		p, ok := palette.ByName(cfg.Palette)
		if !ok {
			return nil, fmt.Errorf("unknown palette %q", cfg.Palette)
		}
		ctx.Palette = p
	}

	start := effect.ThreeSine
	if cfg.Effect != "" {
		e, ok := cat.Get(cfg.Effect)
		if !ok {
			return nil, fmt.Errorf("unknown effect %q", cfg.Effect)
		}
		start = e.ID
	}

	eng, err := render.NewEngine(cat, ctx, drv, start)
	if err != nil {
		return nil, err
	}
	eng.SetParams(paramsFrom(cfg))
	eng.SetTiming(timingFrom(cfg))
	eng.SetAutoCycle(cfg.AutoCycle())

	core := &Core{Cfg: cfg, Mapper: m, Eng: eng}
	if cfg.Program != nil {
		core.Seq = sequence.NewPlayer(sequence.Hooks{
			SetEffect: eng.SelectName,
			SetParam:  eng.SetParam,
		})
		if err := core.Seq.Load(*cfg.Program); err != nil {
			return nil, fmt.Errorf("program: %w", err)
		}
		// the program owns effect selection
		eng.SetAutoCycle(false)
		core.Seq.Start()
	}
	log.Info().
		Str("effect", start.String()).
		Int("leds", m.Visible()).
		Bool("program", core.Seq != nil).
		Msg("core ready")
	return core, nil
}

func paramsFrom(cfg *config.Config) render.Params {
	p := render.DefaultParams()
	if cfg.Brightness != nil {
		p.Brightness = render.ClampU8(float64(*cfg.Brightness))
	}
	if cfg.Power.WhiteCap > 0 {
		p.WhiteCap = cfg.Power.WhiteCap
	}
	if cfg.Power.ChanMA > 0 {
		p.ChanMA = cfg.Power.ChanMA
	}
	if cfg.Power.Knee > 0 {
		p.Knee = cfg.Power.Knee
	}
	p.BudgetMA = cfg.Power.BudgetMA
	return p
}

func timingFrom(cfg *config.Config) render.Timing {
	t := render.DefaultTiming()
	if cfg.Cycle.HueMS > 0 {
		t.HueCycle = time.Duration(cfg.Cycle.HueMS) * time.Millisecond
	}
	if cfg.Cycle.IntervalS > 0 {
		t.AutoCycle = time.Duration(cfg.Cycle.IntervalS * float64(time.Second))
	}
	return t
}

// Run drives the engine and, when a program is loaded, the conductor until
// ctx is done.
func (c *Core) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.Eng.Run(ctx) })
	if c.Seq != nil {
		cond := &Conductor{Eng: c.Eng, Seq: c.Seq}
		g.Go(func() error { return cond.Run(ctx, 60) })
	}
	return g.Wait()
}
