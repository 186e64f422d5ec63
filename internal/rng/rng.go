// Package rng is a small 16-bit linear congruential generator with an
// entropy hook. Sequences are reproducible from the seed, which is what the
// effect tests rely on.
package rng

const DefaultSeed uint16 = 1337

type Rand struct {
	seed uint16
}

func New(seed uint16) *Rand { return &Rand{seed: seed} }

func (r *Rand) step() uint16 {
	r.seed = r.seed*2053 + 13849
	return r.seed
}

// Uint8 returns 0..255.
func (r *Rand) Uint8() uint8 {
	s := r.step()
	return uint8(s) + uint8(s>>8)
}

// Uint8n returns 0..lim-1 (0 when lim is 0).
func (r *Rand) Uint8n(lim uint8) uint8 {
	return uint8((uint16(r.Uint8()) * uint16(lim)) >> 8)
}

// Uint8Range returns lo..lim-1.
func (r *Rand) Uint8Range(lo, lim uint8) uint8 {
	return r.Uint8n(lim-lo) + lo
}

func (r *Rand) Uint16() uint16 { return r.step() }

// Uint16n returns 0..lim-1.
func (r *Rand) Uint16n(lim uint16) uint16 {
	return uint16((uint32(r.step()) * uint32(lim)) >> 16)
}

// AddEntropy perturbs the seed.
func (r *Rand) AddEntropy(e uint16) { r.seed += e }

func (r *Rand) Seed() uint16 { return r.seed }
