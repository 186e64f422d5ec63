// fxsim runs effects on a simulated clock, without hardware or real time,
// and reports frame counts and current estimates. With -program it plays a
// sequence file instead.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/coreman2200/funtimes-shades/internal/app"
	"github.com/coreman2200/funtimes-shades/internal/config"
	"github.com/coreman2200/funtimes-shades/internal/led"
	"github.com/coreman2200/funtimes-shades/internal/sequence"
)

func main() {
	var (
		effectName  = flag.String("effect", "all", "effect name, or all")
		seconds     = flag.Float64("seconds", 5, "simulated seconds per effect")
		programPath = flag.String("program", "", "sequence program (YAML or JSON)")
		console     = flag.Bool("console", false, "draw the last frame to the terminal")
		budget      = flag.Float64("budget-ma", 0, "power budget in mA, 0 = none")
	)
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg := &config.Config{Power: config.PowerCfg{BudgetMA: *budget}}
	off := false
	cfg.Cycle.Auto = &off
	if *programPath != "" {
		b, err := os.ReadFile(*programPath)
		if err != nil {
			log.Fatal().Err(err).Msg("read program")
		}
		var prog sequence.Program
		if err := yaml.Unmarshal(b, &prog); err != nil {
			log.Fatal().Err(err).Msg("parse program")
		}
		cfg.Program = &prog
	}

	core, err := app.Build(cfg, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("build")
	}
	sim := led.NewSim()
	sim.LogEvery = 0
	core.Eng.Drv = sim

	dur := time.Duration(*seconds * float64(time.Second))
	fx := newSimulator(core)
	var names []string
	switch {
	case core.Seq != nil:
		logStats("program", fx.program(dur))
	case *effectName == "all":
		names = core.Eng.Cat.List()
	default:
		names = []string{*effectName}
	}
	for _, name := range names {
		st, err := fx.effect(name, dur)
		if err != nil {
			log.Fatal().Err(err).Msg("simulate")
		}
		logStats(name, st)
	}

	if *console {
		c := led.NewConsole(core.Mapper.Visible())
		_ = c.Write(sim.Last())
		_ = c.Close()
	}
}

type stats struct {
	Frames int
	PeakMA float64
	SumMA  float64
}

func (s stats) AvgMA() float64 {
	if s.Frames == 0 {
		return 0
	}
	return s.SumMA / float64(s.Frames)
}

// simulator owns one synthetic clock shared by every run, so the engine's
// hue and decay deadlines keep moving from effect to effect.
type simulator struct {
	core *app.Core
	now  time.Time
}

func newSimulator(core *app.Core) *simulator {
	return &simulator{core: core, now: time.Unix(0, 0)}
}

func (s *simulator) effect(name string, dur time.Duration) (stats, error) {
	if err := s.core.Eng.SelectName(name); err != nil {
		return stats{}, err
	}
	return s.run(dur, nil)
}

func (s *simulator) program(dur time.Duration) stats {
	tick := func(dt float64) bool {
		s.core.Seq.Tick(dt)
		return s.core.Seq.State != sequence.Idle
	}
	st, err := s.run(dur, tick)
	if err != nil {
		log.Error().Err(err).Msg("program")
	}
	return st
}

// run steps the engine on a 1ms clock. tick, if set, runs every 1/60s and
// ends the run early by returning false.
func (s *simulator) run(dur time.Duration, tick func(dt float64) bool) (stats, error) {
	const step = time.Millisecond
	seqEvery := time.Second / 60
	var st stats
	end := s.now.Add(dur)
	nextSeq := s.now
	for ; s.now.Before(end); s.now = s.now.Add(step) {
		if tick != nil && !s.now.Before(nextSeq) {
			if !tick(seqEvery.Seconds()) {
				break
			}
			nextSeq = s.now.Add(seqEvery)
		}
		wrote, err := s.core.Eng.Step(s.now)
		if err != nil {
			return st, err
		}
		if wrote {
			ma := s.core.Eng.Last.EstMA
			st.Frames++
			st.SumMA += ma
			if ma > st.PeakMA {
				st.PeakMA = ma
			}
		}
	}
	return st, nil
}

func logStats(name string, st stats) {
	log.Info().
		Str("effect", name).
		Int("frames", st.Frames).
		Float64("avg_ma", st.AvgMA()).
		Float64("peak_ma", st.PeakMA).
		Msg("simulated")
}
