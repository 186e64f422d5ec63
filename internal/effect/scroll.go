package effect

import (
	"time"

	"github.com/coreman2200/funtimes-shades/internal/font"
	"github.com/coreman2200/funtimes-shades/internal/palette"
	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

const (
	scrollDelay = 55 * time.Millisecond
	charSpacing = 2
	rainbowStep = 15
)

type Style uint8

const (
	Normal Style = iota
	Rainbow
)

func (s Style) String() string {
	if s == Rainbow {
		return "rainbow"
	}
	return "normal"
}

// TextStyle picks a message and how it is drawn. FG is ignored in Rainbow
// style.
type TextStyle struct {
	Message int
	Style   Style
	FG, BG  pixel.RGB
}

var DefaultText = [7]TextStyle{
	{Message: 0, Style: Normal, FG: pixel.Red, BG: pixel.Black},
	{Message: 1, Style: Rainbow, BG: pixel.Black},
	{Message: 2, Style: Normal, FG: pixel.Green, BG: pixel.RGB{B: 8}},
	{Message: 3, Style: Normal, FG: pixel.Red, BG: pixel.Black},
	{Message: 4, Style: Rainbow, BG: pixel.Black},
	{Message: 5, Style: Normal, FG: pixel.RGB{R: 100, G: 100}, BG: pixel.Black},
	{Message: 6, Style: Normal, FG: pixel.Green, BG: pixel.Black},
}

// Scroller moves a message right to left one column per frame. It keeps a
// circular buffer of glyph columns, one per frame column, and injects the
// next column at the trailing edge.
type Scroller struct {
	TextStyle

	char  int
	col   int
	glyph font.Glyph
	phase uint8
	buf   []uint8
	ptr   int
}

func NewScroller(st TextStyle) *Scroller { return &Scroller{TextStyle: st} }

func (s *Scroller) Render(c *Context) {
	f := c.Frame
	w, h := f.Width(), f.Height()
	if c.setup(scrollDelay) {
		s.char, s.col = 0, 0
		s.glyph = c.Messages.Glyph(c.Messages.Char(s.Message, 0))
		c.Palette = palette.Rainbow
		s.buf = make([]uint8, w)
		s.ptr = 0
	}
	s.phase += rainbowStep

	tail := (s.ptr + w - 1) % w
	if s.col < font.Width {
		s.buf[tail] = s.glyph[s.col]
	} else {
		s.buf[tail] = 0
	}

	rows := font.Height
	if h < rows {
		rows = h
	}
	for x := 0; x < w; x++ {
		bits := s.buf[(s.ptr+x)%w]
		for y := 0; y < rows; y++ {
			col := s.BG
			if bits&(1<<y) != 0 {
				col = s.FG
				if s.Style == Rainbow {
					col = palette.ColorFrom(&c.Palette, s.phase+uint8(y*16), 255)
				}
			}
			f.Set(x, y, col)
		}
	}

	s.col++
	if s.col > font.Width-1+charSpacing {
		s.col = 0
		s.char++
		ch := c.Messages.Char(s.Message, s.char)
		if ch == 0 {
			s.char = 0
			ch = c.Messages.Char(s.Message, 0)
		}
		s.glyph = c.Messages.Glyph(ch)
	}

	s.ptr = (s.ptr + 1) % w
}

// Window is the column buffer as last drawn, leftmost first.
func (s *Scroller) Window() []uint8 {
	w := len(s.buf)
	if w == 0 {
		return nil
	}
	out := make([]uint8, w)
	start := (s.ptr + w - 1) % w
	for x := range out {
		out[x] = s.buf[(start+x)%w]
	}
	return out
}
