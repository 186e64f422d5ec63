package led

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spitest"

	"github.com/coreman2200/funtimes-shades/internal/pixel"
)

func TestNRZWritesThroughSPI(t *testing.T) {
	buf := bytes.Buffer{}
	d, err := NewNRZ(spitest.NewRecordRaw(&buf), NRZOpts{NumPixels: 4, Freq: 2500 * physic.KiloHertz})
	require.NoError(t, err)
	assert.Equal(t, "nrzled{recordraw}", d.String())

	require.NoError(t, d.Write([]pixel.RGB{pixel.Red, pixel.Lime}))
	first := append([]byte(nil), buf.Bytes()...)
	// each data bit becomes three SPI bits
	assert.GreaterOrEqual(t, len(first), 4*3*3)

	buf.Reset()
	require.NoError(t, d.Write([]pixel.RGB{pixel.Blue, pixel.Lime, pixel.White, pixel.Red, pixel.Red}))
	assert.NotEqual(t, first, buf.Bytes())
	assert.Equal(t, 3*4, len(d.buf), "frame is clipped to the strip")
}

func TestNRZRejectsEmptyStrip(t *testing.T) {
	_, err := NewNRZ(spitest.NewRecordRaw(&bytes.Buffer{}), NRZOpts{})
	assert.Error(t, err)
}

func TestSimKeepsLastFrame(t *testing.T) {
	s := NewSim()
	s.LogEvery = 1
	require.NoError(t, s.Write([]pixel.RGB{pixel.Red}))
	px := []pixel.RGB{pixel.Blue, pixel.White}
	require.NoError(t, s.Write(px))
	px[0] = pixel.Black

	assert.Equal(t, 2, s.Count())
	assert.Equal(t, []pixel.RGB{pixel.Blue, pixel.White}, s.Last())
	assert.NoError(t, s.Close())
}

func TestOpenFallsBackToSim(t *testing.T) {
	d, kind := Open(Options{Kind: "bogus", Count: 4})
	assert.Equal(t, "sim", kind)
	assert.IsType(t, &Sim{}, d)

	d, kind = Open(Options{})
	assert.Equal(t, "sim", kind)
	assert.IsType(t, &Sim{}, d)
}
