package led

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

// Sim swallows frames, keeping the last one and a running count. It logs a
// compact summary every LogEvery frames at debug level.
type Sim struct {
	LogEvery int

	mu    sync.Mutex
	count int
	last  []pixel.RGB
}

func NewSim() *Sim { return &Sim{LogEvery: 100} }

func (s *Sim) Write(px []pixel.RGB) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	s.last = append(s.last[:0], px...)

	if s.LogEvery > 0 && s.count%s.LogEvery == 0 && len(px) > 0 {
		var r, g, b int
		for _, c := range px {
			r += int(c.R)
			g += int(c.G)
			b += int(c.B)
		}
		n := len(px)
		log.Debug().
			Int("frame", s.count).
			Ints("avg", []int{r / n, g / n, b / n}).
			Stringer("first", px[0]).
			Msg("sim frame")
	}
	return nil
}

// Count is the number of frames written so far.
func (s *Sim) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Last returns a copy of the most recent frame.
func (s *Sim) Last() []pixel.RGB {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]pixel.RGB(nil), s.last...)
}

func (s *Sim) Close() error { return nil }
