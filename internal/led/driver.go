// Package led holds the LED output sinks: NRZ strips over SPI, a terminal
// preview and a headless simulator.
package led

import "github.com/coreman2200/funtimes-shades/internal/pixel"

// Driver abstracts an LED output sink.
type Driver interface {
	// Write pushes one frame in wiring order. Drivers must not keep px.
	Write(px []pixel.RGB) error
	// Close releases resources.
	Close() error
}
