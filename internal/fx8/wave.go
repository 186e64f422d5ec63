// Package fx8 holds the 8-bit wave and saturating math used by the effects.
// Every function takes a phase or value in 0..255 and returns 0..255; waves
// have period 256.
package fx8

// slope/offset pairs for the four 16-step sections of a quarter sine
var sinSections = [8]uint8{0, 49, 49, 41, 90, 27, 117, 10}

// Sin8 approximates 128 + 127*sin(theta/256 * 2pi) with a piecewise linear
// quarter wave.
func Sin8(theta uint8) uint8 {
	offset := theta
	if theta&0x40 != 0 {
		offset = 255 - offset
	}
	offset &= 0x3F

	sec := offset & 0x0F
	if theta&0x40 != 0 {
		sec++
	}

	s := (offset >> 4) * 2
	b := sinSections[s]
	m16 := sinSections[s+1]
	mx := uint8((uint16(m16) * uint16(sec)) >> 4)

	y := int(int8(mx + b))
	if theta&0x80 != 0 {
		y = -y
	}
	return uint8(y + 128)
}

// Cos8 is Sin8 shifted by a quarter period.
func Cos8(theta uint8) uint8 { return Sin8(theta + 64) }

// Triwave8 rises 0..254 over the first half period and falls back over the second.
func Triwave8(in uint8) uint8 {
	if in&0x80 != 0 {
		in = 255 - in
	}
	return in << 1
}

// Quadwave8 is a triangle wave eased with a quadratic in/out curve, close to a sine.
func Quadwave8(in uint8) uint8 { return Ease8InOutQuad(Triwave8(in)) }

// Cubicwave8 is a triangle wave eased with a cubic in/out curve.
func Cubicwave8(in uint8) uint8 { return Ease8InOutCubic(Triwave8(in)) }

func Ease8InOutQuad(i uint8) uint8 {
	j := i
	if j&0x80 != 0 {
		j = 255 - j
	}
	jj := Scale8(j, j)
	jj2 := jj << 1
	if i&0x80 != 0 {
		jj2 = 255 - jj2
	}
	return jj2
}

func Ease8InOutCubic(i uint8) uint8 {
	ii := Scale8(i, i)
	iii := Scale8(ii, i)
	r1 := 3*uint16(ii) - 2*uint16(iii)
	if r1&0x100 != 0 {
		return 255
	}
	return uint8(r1)
}
