// Package frame is the shared framebuffer the effects draw into. It has a
// single writer; callers that hand frames to other goroutines take a Copy.
package frame

import (
	"image"

	"github.com/coreman2200/funtimes-shades/internal/layout"
	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

type Buffer struct {
	m  layout.Mapper
	px []pixel.RGB
}

func New(m layout.Mapper) *Buffer {
	return &Buffer{m: m, px: make([]pixel.RGB, m.Len())}
}

func (b *Buffer) Width() int            { return b.m.Width() }
func (b *Buffer) Height() int           { return b.m.Height() }
func (b *Buffer) Mapper() layout.Mapper { return b.m }

// In reports whether (x, y) lies on the grid.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.m.Width() && y < b.m.Height()
}

// Set writes one grid cell. Out-of-bounds writes are dropped (and panic in
// fxdebug builds).
func (b *Buffer) Set(x, y int, c pixel.RGB) {
	assertInBounds(b, x, y)
	if !b.In(x, y) {
		return
	}
	b.px[b.m.Index(x, y)] = c
}

func (b *Buffer) At(x, y int) pixel.RGB {
	assertInBounds(b, x, y)
	if !b.In(x, y) {
		return pixel.Black
	}
	return b.px[b.m.Index(x, y)]
}

func (b *Buffer) Fill(c pixel.RGB) {
	for i := range b.px {
		b.px[i] = c
	}
}

func (b *Buffer) Clear() { b.Fill(pixel.Black) }

// FadeAll dims every cell toward black by amount/256.
func (b *Buffer) FadeAll(amount uint8) {
	for i := range b.px {
		b.px[i] = b.px[i].FadeToBlackBy(amount)
	}
}

// ScrollRight moves every column one step right; column 0 keeps its old
// content until the caller overwrites it.
func (b *Buffer) ScrollRight() {
	w, h := b.m.Width(), b.m.Height()
	for x := w - 1; x >= 1; x-- {
		for y := 0; y < h; y++ {
			b.px[b.m.Index(x, y)] = b.px[b.m.Index(x-1, y)]
		}
	}
}

// ScrollLeft is the mirror of ScrollRight.
func (b *Buffer) ScrollLeft() {
	w, h := b.m.Width(), b.m.Height()
	for x := 0; x < w-1; x++ {
		for y := 0; y < h; y++ {
			b.px[b.m.Index(x, y)] = b.px[b.m.Index(x+1, y)]
		}
	}
}

// Pixels is the raw buffer in wiring order, hidden cells included.
func (b *Buffer) Pixels() []pixel.RGB { return b.px }

// Visible is the prefix of Pixels that has physical LEDs.
func (b *Buffer) Visible() []pixel.RGB { return b.px[:b.m.Visible()] }

// Copy returns a detached snapshot of the visible LEDs.
func (b *Buffer) Copy() []pixel.RGB {
	out := make([]pixel.RGB, b.m.Visible())
	copy(out, b.Visible())
	return out
}

// Grid renders the logical grid, hidden cells included, as an image.
func (b *Buffer) Grid() *image.NRGBA {
	w, h := b.m.Width(), b.m.Height()
	im := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.SetNRGBA(x, y, b.px[b.m.Index(x, y)].NRGBA())
		}
	}
	return im
}

// Strip lays out a frame of LEDs in wiring order as a 1-pixel-high image,
// the shape strip drawers expect.
func Strip(px []pixel.RGB) *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, len(px), 1))
	for x := range px {
		im.SetNRGBA(x, 0, px[x].NRGBA())
	}
	return im
}

// Bytes serializes LEDs in wiring order with the given channel order.
func Bytes(px []pixel.RGB, o pixel.Order) []byte {
	buf := make([]byte, 0, len(px)*3)
	for _, c := range px {
		buf = c.Serialize(buf, o)
	}
	return buf
}
