package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/funtimes-shades/internal/pixel"
	"github.com/coreman2200/funtimes-shades/internal/rng"
)

func TestColorFromOnEntries(t *testing.T) {
	for i := 0; i < 16; i++ {
		assert.Equal(t, Rainbow[i], ColorFrom(&Rainbow, uint8(i<<4), 255), "entry %d", i)
	}
}

func TestColorFromBlendsAndWraps(t *testing.T) {
	// halfway between the last entry and the first
	c := ColorFrom(&Rainbow, 0xF8, 255)
	last, first := Rainbow[15], Rainbow[0]
	assert.InDelta(t, (int(last.R)+int(first.R))/2, int(c.R), 2)
	assert.InDelta(t, (int(last.B)+int(first.B))/2, int(c.B), 2)
}

func TestColorFromBrightness(t *testing.T) {
	assert.Equal(t, pixel.Black, ColorFrom(&Rainbow, 0, 0))
	assert.Equal(t, pixel.Red.Scale(128), ColorFrom(&Rainbow, 0, 128))
}

func TestRandomIsAPreset(t *testing.T) {
	r := rng.New(rng.DefaultSeed)
	for i := 0; i < 20; i++ {
		p := Random(r)
		assert.Contains(t, randomChoices, p)
	}
}

func TestByName(t *testing.T) {
	p, ok := ByName("lava")
	assert.True(t, ok)
	assert.Equal(t, Lava, p)
	_, ok = ByName("plaid")
	assert.False(t, ok)
}
