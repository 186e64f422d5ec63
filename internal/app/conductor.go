package app

import (
	"context"
	"time"

	"github.com/coreman2200/funtimes-shades/internal/render"
	"github.com/coreman2200/funtimes-shades/internal/sequence"
)

// Conductor advances the sequencer on a fixed tick. The player runs on the
// engine goroutine, so each tick is posted as a command.
type Conductor struct {
	Eng *render.Engine
	Seq *sequence.Player
}

func (c *Conductor) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = 60
	}
	dt := time.Second / time.Duration(fps)
	ticker := time.NewTicker(dt)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			step := now.Sub(last).Seconds()
			last = now
			c.Eng.Post(func(*render.Engine) { c.Seq.Tick(step) })
		}
	}
}
