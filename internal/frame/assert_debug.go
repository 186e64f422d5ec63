//go:build fxdebug

package frame

import "fmt"

func assertInBounds(b *Buffer, x, y int) {
	if !b.In(x, y) {
		panic(fmt.Sprintf("frame: (%d,%d) outside %dx%d grid", x, y, b.Width(), b.Height()))
	}
}
