// Package pixel holds the 8-bit color types written into the framebuffer.
package pixel

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/coreman2200/funtimes-shades/internal/fx8"
)

const (
	redShift   = 16
	greenShift = 8
	blueShift  = 0
)

type RGB struct {
	R, G, B uint8
}

// HSV uses the full byte range for every channel; H 0..255 covers one turn.
type HSV struct {
	H, S, V uint8
}

var (
	Black  = RGB{}
	White  = RGB{255, 255, 255}
	Red    = RGB{R: 255}
	Green  = RGB{G: 128}
	Lime   = RGB{G: 255}
	Blue   = RGB{B: 255}
	Yellow = RGB{R: 255, G: 255}
)

// Hex unpacks 0xRRGGBB.
func Hex(v uint32) RGB {
	return RGB{
		R: uint8(v >> redShift),
		G: uint8(v >> greenShift),
		B: uint8(v >> blueShift),
	}
}

func (c RGB) Uint32() uint32 {
	return uint32(c.R)<<redShift | uint32(c.G)<<greenShift | uint32(c.B)<<blueShift
}

func (c RGB) String() string { return fmt.Sprintf("#%06X", c.Uint32()) }

// Scale dims every channel by scale/256.
func (c RGB) Scale(scale uint8) RGB {
	return RGB{fx8.Scale8(c.R, scale), fx8.Scale8(c.G, scale), fx8.Scale8(c.B, scale)}
}

// FadeToBlackBy dims by amount/256 of the current value.
func (c RGB) FadeToBlackBy(amount uint8) RGB { return c.Scale(255 - amount) }

func (c RGB) NRGBA() color.NRGBA { return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255} }

func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Blend mixes a toward b by amount/255 in RGB space.
func Blend(a, b RGB, amount uint8) RGB {
	if amount == 0 {
		return a
	}
	if amount == 255 {
		return b
	}
	return FromColorful(a.Colorful().BlendRgb(b.Colorful(), float64(amount)/255))
}

func (h HSV) RGB() RGB {
	c := colorful.Hsv(float64(h.H)*360/256, float64(h.S)/255, float64(h.V)/255)
	return FromColorful(c)
}

// ParseHex accepts "#rrggbb" strings.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, err
	}
	return FromColorful(c), nil
}

// Order names the channel order a strip expects on the wire.
type Order string

const (
	OrderRGB Order = "RGB"
	OrderGRB Order = "GRB"
	OrderBRG Order = "BRG"
)

// Serialize appends c to buf in the given channel order.
func (c RGB) Serialize(buf []byte, o Order) []byte {
	switch o {
	case OrderGRB:
		return append(buf, c.G, c.R, c.B)
	case OrderBRG:
		return append(buf, c.B, c.R, c.G)
	default:
		return append(buf, c.R, c.G, c.B)
	}
}
