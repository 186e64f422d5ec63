package led

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

// DefaultFreq drives WS2812-class strips: three SPI bits per data bit.
const DefaultFreq = 2500 * physic.KiloHertz

type NRZOpts struct {
	NumPixels int
	Freq      physic.Frequency
	// Order remaps channels for strips that are not wired GRB internally.
	Order pixel.Order
}

// NRZ writes frames to a WS2812-style strip through an SPI port.
type NRZ struct {
	dev   *nrzled.Dev
	port  spi.PortCloser
	n     int
	order pixel.Order
	buf   []byte
}

// NewNRZ wraps an already-open SPI port.
func NewNRZ(p spi.Port, o NRZOpts) (*NRZ, error) {
	if o.NumPixels <= 0 {
		return nil, fmt.Errorf("invalid LED count: %d", o.NumPixels)
	}
	if o.Freq == 0 {
		o.Freq = DefaultFreq
	}
	if o.Order == "" {
		o.Order = pixel.OrderRGB
	}
	d, err := nrzled.NewSPI(p, &nrzled.Opts{
		NumPixels: o.NumPixels,
		Channels:  3,
		Freq:      o.Freq,
	})
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	return &NRZ{dev: d, n: o.NumPixels, order: o.Order, buf: make([]byte, 0, 3*o.NumPixels)}, nil
}

// OpenNRZ initialises the host drivers and opens the named SPI port ("" for
// the first one).
func OpenNRZ(name string, o NRZOpts) (*NRZ, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	p, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open spi %q: %w", name, err)
	}
	d, err := NewNRZ(p, o)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	d.port = p
	log.Info().Str("port", d.dev.String()).Int("leds", o.NumPixels).Stringer("freq", o.Freq).Msg("nrz strip ready")
	return d, nil
}

func (d *NRZ) String() string { return d.dev.String() }

// Write sends px; short frames are padded with black, long ones truncated.
func (d *NRZ) Write(px []pixel.RGB) error {
	if len(px) > d.n {
		px = px[:d.n]
	}
	d.buf = d.buf[:0]
	for _, c := range px {
		d.buf = c.Serialize(d.buf, d.order)
	}
	for len(d.buf) < 3*d.n {
		d.buf = append(d.buf, 0)
	}
	if _, err := d.dev.Write(d.buf); err != nil {
		return fmt.Errorf("nrz write: %w", err)
	}
	return nil
}

// Close blanks the strip and releases the port.
func (d *NRZ) Close() error {
	err := d.dev.Halt()
	if d.port != nil {
		if cerr := d.port.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
