package pixel_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/coreman2200/funtimes-shades/internal/pixel"
)

var TestHexIsExpectedColor = []struct {
	Hex    uint32
	Expect RGB
}{
	{0xFF1122, RGB{0xFF, 0x11, 0x22}},
	{0x2A4434, RGB{0x2A, 0x44, 0x34}},
	{0x000000, Black},
	{0xFFFFFF, White},
}

func TestHexRoundTrip(t *testing.T) {
	for k, v := range TestHexIsExpectedColor {
		t.Run("Given hex"+strconv.Itoa(k), func(t *testing.T) {
			c := Hex(v.Hex)
			assert.Equal(t, v.Expect, c)
			assert.Equal(t, v.Hex, c.Uint32())
		})
	}
}

func TestHSVPrimaryHues(t *testing.T) {
	assert.Equal(t, RGB{R: 255}, HSV{0, 255, 255}.RGB())
	assert.Equal(t, RGB{R: 100}, HSV{0, 255, 100}.RGB())
	assert.Equal(t, Black, HSV{77, 255, 0}.RGB())
	assert.Equal(t, White, HSV{12, 0, 255}.RGB())
}

func TestScaleAndFade(t *testing.T) {
	assert.Equal(t, White, White.Scale(255))
	assert.Equal(t, Black, White.Scale(0))
	assert.Equal(t, RGB{254, 254, 254}, White.FadeToBlackBy(1))
	assert.Equal(t, Black, RGB{1, 1, 1}.FadeToBlackBy(1))
}

func TestBlendEndpoints(t *testing.T) {
	a, b := Red, Blue
	assert.Equal(t, a, Blend(a, b, 0))
	assert.Equal(t, b, Blend(a, b, 255))
	mid := Blend(a, b, 128)
	assert.InDelta(t, 127, int(mid.R), 2)
	assert.InDelta(t, 128, int(mid.B), 2)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#00ff00")
	require.NoError(t, err)
	assert.Equal(t, Lime, c)

	_, err = ParseHex("nope")
	assert.Error(t, err)
}

func TestSerializeOrder(t *testing.T) {
	c := RGB{1, 2, 3}
	assert.Equal(t, []byte{1, 2, 3}, c.Serialize(nil, OrderRGB))
	assert.Equal(t, []byte{2, 1, 3}, c.Serialize(nil, OrderGRB))
	assert.Equal(t, []byte{3, 1, 2}, c.Serialize(nil, OrderBRG))
}
