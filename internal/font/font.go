// Package font is a 5x5 column-encoded font and the message table the text
// scroller reads from.
//
// Each glyph is five column bytes; bit y of a column is row y (top = bit 0).
package font

const (
	Width  = 5
	Height = 5
)

type Glyph [Width]uint8

// glyph rows as drawn; '#' is lit
var rows = map[byte][Height]string{
	' ': {".....", ".....", ".....", ".....", "....."},
	'A': {".###.", "#...#", "#####", "#...#", "#...#"},
	'B': {"####.", "#...#", "####.", "#...#", "####."},
	'C': {".####", "#....", "#....", "#....", ".####"},
	'D': {"####.", "#...#", "#...#", "#...#", "####."},
	'E': {"#####", "#....", "####.", "#....", "#####"},
	'F': {"#####", "#....", "####.", "#....", "#...."},
	'G': {".####", "#....", "#..##", "#...#", ".###."},
	'H': {"#...#", "#...#", "#####", "#...#", "#...#"},
	'I': {"#####", "..#..", "..#..", "..#..", "#####"},
	'J': {"..###", "...#.", "...#.", "#..#.", ".##.."},
	'K': {"#...#", "#..#.", "###..", "#..#.", "#...#"},
	'L': {"#....", "#....", "#....", "#....", "#####"},
	'M': {"#...#", "##.##", "#.#.#", "#...#", "#...#"},
	'N': {"#...#", "##..#", "#.#.#", "#..##", "#...#"},
	'O': {".###.", "#...#", "#...#", "#...#", ".###."},
	'P': {"####.", "#...#", "####.", "#....", "#...."},
	'Q': {".###.", "#...#", "#.#.#", "#..#.", ".##.#"},
	'R': {"####.", "#...#", "####.", "#..#.", "#...#"},
	'S': {".####", "#....", ".###.", "....#", "####."},
	'T': {"#####", "..#..", "..#..", "..#..", "..#.."},
	'U': {"#...#", "#...#", "#...#", "#...#", ".###."},
	'V': {"#...#", "#...#", "#...#", ".#.#.", "..#.."},
	'W': {"#...#", "#...#", "#.#.#", "##.##", "#...#"},
	'X': {"#...#", ".#.#.", "..#..", ".#.#.", "#...#"},
	'Y': {"#...#", ".#.#.", "..#..", "..#..", "..#.."},
	'Z': {"#####", "...#.", "..#..", ".#...", "#####"},
	'0': {".###.", "#..##", "#.#.#", "##..#", ".###."},
	'1': {"..#..", ".##..", "..#..", "..#..", ".###."},
	'2': {"####.", "....#", ".###.", "#....", "#####"},
	'3': {"####.", "....#", ".###.", "....#", "####."},
	'4': {"#..#.", "#..#.", "#####", "...#.", "...#."},
	'5': {"#####", "#....", "####.", "....#", "####."},
	'6': {".###.", "#....", "####.", "#...#", ".###."},
	'7': {"#####", "...#.", "..#..", ".#...", ".#..."},
	'8': {".###.", "#...#", ".###.", "#...#", ".###."},
	'9': {".###.", "#...#", ".####", "....#", ".###."},
	'!': {"..#..", "..#..", "..#..", ".....", "..#.."},
	'?': {".###.", "#...#", "..##.", ".....", "..#.."},
	'.': {".....", ".....", ".....", ".....", "..#.."},
	',': {".....", ".....", ".....", "..#..", ".#..."},
	'-': {".....", ".....", ".###.", ".....", "....."},
	'+': {".....", "..#..", ".###.", "..#..", "....."},
	':': {".....", "..#..", ".....", "..#..", "....."},
	'\'': {"..#..", "..#..", ".....", ".....", "....."},
	'*': {".#.#.", "#####", "#####", ".###.", "..#.."}, // heart
}

var glyphs = func() map[byte]Glyph {
	out := make(map[byte]Glyph, len(rows))
	for ch, r := range rows {
		out[ch] = encode(r)
	}
	return out
}()

func encode(r [Height]string) Glyph {
	var g Glyph
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if r[y][x] == '#' {
				g[x] |= 1 << y
			}
		}
	}
	return g
}

// Lookup returns the glyph for ch. Lower case folds to upper case and
// unknown characters render as '?'.
func Lookup(ch byte) Glyph {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	if g, ok := glyphs[ch]; ok {
		return g
	}
	return glyphs['?']
}

// Has reports whether ch has its own glyph.
func Has(ch byte) bool {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	_, ok := glyphs[ch]
	return ok
}
