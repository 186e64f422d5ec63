package layout

import "fmt"

// Mapper turns a logical (x, y) grid position into a linear framebuffer index.
// Every in-bounds position maps to a distinct index in 0..Len()-1. Indices at
// or above Visible() exist in the framebuffer but have no physical LED.
type Mapper interface {
	Width() int
	Height() int
	Len() int
	Visible() int
	Index(x, y int) int
}

// Serpentine is a plain grid wired row by row, optionally reversing
// direction on every odd row.
type Serpentine struct {
	W, H         int
	FlipEveryRow bool
}

func (l Serpentine) Width() int   { return l.W }
func (l Serpentine) Height() int  { return l.H }
func (l Serpentine) Len() int     { return l.W * l.H }
func (l Serpentine) Visible() int { return l.Len() }

// Index maps x,y -> linear LED index (0..N-1)
func (l Serpentine) Index(x, y int) int {
	xx := x
	if (y%2 == 1) && l.FlipEveryRow {
		xx = l.W - 1 - x
	}
	return y*l.W + xx
}

// Table is a lookup-table mapping for irregular wiring, row-major over the
// grid.
type Table struct {
	W, H  int
	Cells []int
	Lit   int // cells below Lit have an LED
}

func (t Table) Width() int         { return t.W }
func (t Table) Height() int        { return t.H }
func (t Table) Len() int           { return len(t.Cells) }
func (t Table) Visible() int       { return t.Lit }
func (t Table) Index(x, y int) int { return t.Cells[y*t.W+x] }

// Shades is the 16x5 RGB Shades wiring: 68 LEDs around the lenses and
// bridge, with the 12 empty grid cells parked at indices 68..79.
//
//	    0  1  2  3  4  5  6  7  8  9 10 11 12 13 14 15
//	0 |  .  0  1  2  3  4  5  6  7  8  9 10 11 12 13  .
//	1 | 29 28 27 26 25 24 23 22 21 20 19 18 17 16 15 14
//	2 | 30 31 32 33 34 35 36  .  . 37 38 39 40 41 42 43
//	3 | 57 56 55 54 53 52 51  .  . 50 49 48 47 46 45 44
//	4 |  . 58 59 60 61 62  .  .  .  . 63 64 65 66 67  .
var Shades = Table{
	W:   16,
	H:   5,
	Lit: 68,
	Cells: []int{
		68, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 69,
		29, 28, 27, 26, 25, 24, 23, 22, 21, 20, 19, 18, 17, 16, 15, 14,
		30, 31, 32, 33, 34, 35, 36, 70, 71, 37, 38, 39, 40, 41, 42, 43,
		57, 56, 55, 54, 53, 52, 51, 72, 73, 50, 49, 48, 47, 46, 45, 44,
		74, 58, 59, 60, 61, 62, 75, 76, 77, 78, 63, 64, 65, 66, 67, 79,
	},
}

// ByName resolves the layout named in config. w and h only apply to the
// generic grids; flip only to "serpentine".
func ByName(name string, w, h int, flip bool) (Mapper, error) {
	switch name {
	case "", "shades":
		return Shades, nil
	case "serpentine":
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("serpentine layout needs positive size, got %dx%d", w, h)
		}
		return Serpentine{W: w, H: h, FlipEveryRow: flip}, nil
	case "raster":
		if w <= 0 || h <= 0 {
			return nil, fmt.Errorf("raster layout needs positive size, got %dx%d", w, h)
		}
		return Serpentine{W: w, H: h}, nil
	default:
		return nil, fmt.Errorf("unknown layout %q", name)
	}
}
