package fx8_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	. "github.com/coreman2200/funtimes-shades/internal/fx8"
)

var qmul8Cases = []struct {
	A, B   uint8
	Expect uint8
}{
	{0, 255, 0},
	{1, 255, 255},
	{15, 17, 255}, // 255 exactly
	{16, 16, 255}, // 256 clamps
	{128, 2, 255}, // 256 clamps
	{127, 2, 254},
	{51, 5, 255},
	{10, 20, 200},
}

func TestQmul8(t *testing.T) {
	for _, v := range qmul8Cases {
		assert.Equal(t, v.Expect, Qmul8(v.A, v.B), "qmul8(%d,%d)", v.A, v.B)
	}
}

func TestQmul8Saturates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Uint8().Draw(t, "a")
		b := rapid.Uint8().Draw(t, "b")
		want := int(a) * int(b)
		if want > 255 {
			want = 255
		}
		if got := Qmul8(a, b); int(got) != want {
			t.Fatalf("Qmul8(%d,%d)=%d want %d", a, b, got, want)
		}
	})
}

func TestSin8Landmarks(t *testing.T) {
	assert.Equal(t, uint8(128), Sin8(0))
	assert.Equal(t, uint8(255), Sin8(64))
	assert.Equal(t, uint8(128), Sin8(128))
	assert.Equal(t, uint8(1), Sin8(192))
	assert.Equal(t, Sin8(64), Cos8(0))
}

func TestSin8Symmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		th := rapid.Uint8().Draw(t, "theta")
		// second half mirrors the first around 128
		a := int(Sin8(th&0x7F)) - 128
		b := int(Sin8(th|0x80)) - 128
		if a != -b {
			t.Fatalf("Sin8 not antisymmetric at %d: %d vs %d", th, a, b)
		}
	})
}

func TestTriwave8(t *testing.T) {
	assert.Equal(t, uint8(0), Triwave8(0))
	assert.Equal(t, uint8(254), Triwave8(127))
	assert.Equal(t, uint8(254), Triwave8(128))
	assert.Equal(t, uint8(0), Triwave8(255))
	assert.Equal(t, uint8(128), Triwave8(64))
}

func TestQuadwave8Endpoints(t *testing.T) {
	assert.Equal(t, uint8(0), Quadwave8(0))
	assert.Equal(t, uint8(255), Quadwave8(127))
	assert.True(t, Quadwave8(64) > 100 && Quadwave8(64) < 160, "midpoint %d", Quadwave8(64))
}

func TestScale8(t *testing.T) {
	assert.Equal(t, uint8(255), Scale8(255, 255))
	assert.Equal(t, uint8(0), Scale8(255, 0))
	assert.Equal(t, uint8(127), Scale8(255, 127))
	assert.Equal(t, uint8(1), Scale8Video(1, 1))
	assert.Equal(t, uint8(0), Scale8(1, 1))
}

func TestSaturatingAddSub(t *testing.T) {
	assert.Equal(t, uint8(255), Qadd8(200, 100))
	assert.Equal(t, uint8(0), Qsub8(10, 20))
	assert.Equal(t, uint8(3), Abs8(-3))
	assert.Equal(t, uint8(255), Abs8(400))
}
