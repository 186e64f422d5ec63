package led

import (
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"

	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

// Options selects and configures a driver by name.
type Options struct {
	Kind    string // "spi" | "console" | "sim"
	Port    string // SPI port name, "" for the first
	SpeedHz int
	Order   pixel.Order
	Count   int
}

// Open returns the requested driver. A failed SPI open falls back to the
// simulator with a warning, so the rest of the program keeps running.
func Open(o Options) (Driver, string) {
	switch o.Kind {
	case "spi":
		freq := DefaultFreq
		if o.SpeedHz > 0 {
			freq = physic.Frequency(o.SpeedHz) * physic.Hertz
		}
		d, err := OpenNRZ(o.Port, NRZOpts{NumPixels: o.Count, Freq: freq, Order: o.Order})
		if err != nil {
			log.Warn().Err(err).
				Str("driver", "spi").
				Str("port", o.Port).
				Int("speed_hz", o.SpeedHz).
				Msg("SPI init failed; falling back to SIM")
			return NewSim(), "sim"
		}
		return d, "spi"
	case "console":
		return NewConsole(o.Count), "console"
	case "sim", "":
		return NewSim(), "sim"
	default:
		log.Warn().Str("driver", o.Kind).Msg("unknown driver; using SIM")
		return NewSim(), "sim"
	}
}
