package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDeterministic(t *testing.T) {
	a, b := New(DefaultSeed), New(DefaultSeed)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint8(), b.Uint8())
	}
}

func TestEntropyChangesSequence(t *testing.T) {
	a, b := New(42), New(42)
	b.AddEntropy(1)
	assert.NotEqual(t, a.Seed(), b.Seed())
	assert.NotEqual(t, a.Uint16(), b.Uint16())
}

func TestBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := New(rapid.Uint16().Draw(t, "seed"))
		lim := rapid.Uint8Range(1, 255).Draw(t, "lim")
		if v := r.Uint8n(lim); v >= lim {
			t.Fatalf("Uint8n(%d)=%d", lim, v)
		}
		lo := rapid.Uint8Range(0, lim-1).Draw(t, "lo")
		if v := r.Uint8Range(lo, lim); v < lo || v >= lim {
			t.Fatalf("Uint8Range(%d,%d)=%d", lo, lim, v)
		}
		lim16 := rapid.Uint16Range(1, 65535).Draw(t, "lim16")
		if v := r.Uint16n(lim16); v >= lim16 {
			t.Fatalf("Uint16n(%d)=%d", lim16, v)
		}
	})
}
