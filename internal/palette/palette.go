// Package palette holds 16-entry gradient palettes and the sampler that
// interpolates between entries.
package palette

import (
	"github.com/coreman2200/funtimes-shades/internal/pixel"
	"github.com/coreman2200/funtimes-shades/internal/rng"
)

type Palette16 [16]pixel.RGB

func hex16(v ...uint32) Palette16 {
	var p Palette16
	for i := range p {
		p[i] = pixel.Hex(v[i])
	}
	return p
}

// named web colors used by the presets
const (
	black          = 0x000000
	white          = 0xFFFFFF
	red            = 0xFF0000
	blue           = 0x0000FF
	green          = 0x008000
	maroon         = 0x800000
	darkRed        = 0x8B0000
	orange         = 0xFFA500
	darkBlue       = 0x00008B
	skyBlue        = 0x87CEEB
	lightBlue      = 0xADD8E6
	midnightBlue   = 0x191970
	navy           = 0x000080
	mediumBlue     = 0x0000CD
	seaGreen       = 0x2E8B57
	teal           = 0x008080
	cadetBlue      = 0x5F9EA0
	darkCyan       = 0x008B8B
	cornflowerBlue = 0x6495ED
	aquamarine     = 0x7FFFD4
	aqua           = 0x00FFFF
	lightSkyBlue   = 0x87CEFA
	darkGreen      = 0x006400
	darkOliveGreen = 0x556B2F
	forestGreen    = 0x228B22
	oliveDrab      = 0x6B8E23
	mediumAqua     = 0x66CDAA
	limeGreen      = 0x32CD32
	yellowGreen    = 0x9ACD32
	lightGreen     = 0x90EE90
	lawnGreen      = 0x7CFC00
)

var (
	Rainbow = hex16(
		0xFF0000, 0xD52A00, 0xAB5500, 0xAB7F00,
		0xABAB00, 0x56D500, 0x00FF00, 0x00D52A,
		0x00AB55, 0x0056AA, 0x0000FF, 0x2A00D5,
		0x5500AB, 0x7F0081, 0xAB0055, 0xD5002B,
	)
	Party = hex16(
		0x5500AB, 0x84007C, 0xB5004B, 0xE5001B,
		0xE81700, 0xB84700, 0xAB7700, 0xABAB00,
		0xAB5500, 0xDD2200, 0xF2000E, 0xC2003E,
		0x8F0071, 0x5F00A1, 0x2F00D0, 0x0007F9,
	)
	Cloud = hex16(
		blue, darkBlue, darkBlue, darkBlue,
		darkBlue, darkBlue, darkBlue, darkBlue,
		blue, darkBlue, skyBlue, skyBlue,
		lightBlue, white, lightBlue, skyBlue,
	)
	Lava = hex16(
		black, maroon, black, maroon,
		darkRed, darkRed, maroon, darkRed,
		darkRed, darkRed, red, orange,
		white, orange, red, darkRed,
	)
	Ocean = hex16(
		midnightBlue, darkBlue, midnightBlue, navy,
		darkBlue, mediumBlue, seaGreen, teal,
		cadetBlue, blue, darkCyan, cornflowerBlue,
		aquamarine, seaGreen, aqua, lightSkyBlue,
	)
	Forest = hex16(
		darkGreen, darkGreen, darkOliveGreen, darkGreen,
		green, forestGreen, oliveDrab, green,
		seaGreen, mediumAqua, limeGreen, yellowGreen,
		lightGreen, lawnGreen, mediumAqua, forestGreen,
	)
)

// randomChoices is the pool Random draws from.
var randomChoices = []Palette16{Cloud, Lava, Ocean, Forest, Rainbow, Party}

// Random picks one of the preset palettes.
func Random(r *rng.Rand) Palette16 {
	return randomChoices[r.Uint8n(uint8(len(randomChoices)))]
}

var byName = map[string]Palette16{
	"rainbow": Rainbow,
	"party":   Party,
	"cloud":   Cloud,
	"lava":    Lava,
	"ocean":   Ocean,
	"forest":  Forest,
}

func ByName(name string) (Palette16, bool) {
	p, ok := byName[name]
	return p, ok
}

// ColorFrom samples the palette at index: the high nibble selects an entry,
// the low nibble blends toward the next one (wrapping 15 -> 0). The result
// is scaled by brightness.
func ColorFrom(p *Palette16, index, brightness uint8) pixel.RGB {
	hi := index >> 4
	lo := index & 0x0F
	c := p[hi]
	if lo != 0 {
		c = pixel.Blend(c, p[(hi+1)&0x0F], lo<<4)
	}
	if brightness != 255 {
		c = c.Scale(brightness)
	}
	return c
}
