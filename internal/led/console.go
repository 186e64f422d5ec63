package led

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/display"
	"periph.io/x/extra/devices/screen"

	"github.com/coreman2200/funtimes-shades/internal/frame"
	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

// Console paints frames as a row of ANSI color cells on the terminal.
type Console struct {
	drawer display.Drawer
}

func NewConsole(n int) *Console {
	return &Console{drawer: screen.New(n)}
}

func (c *Console) Write(px []pixel.RGB) error {
	if err := c.drawer.Draw(c.drawer.Bounds(), frame.Strip(px), image.Point{}); err != nil {
		return fmt.Errorf("console draw: %w", err)
	}
	return nil
}

func (c *Console) Close() error { return c.drawer.Halt() }
